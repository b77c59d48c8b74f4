package world

// LightLevel packs two 4-bit channels: block light in the low nibble and
// sky light in the high nibble.
type LightLevel uint8

const (
	// Dark has no block light and no sky light.
	Dark LightLevel = 0x00
	// FullSky is unobstructed sky with no block light.
	FullSky LightLevel = 0xF0
)

// NewLightLevel packs the two channels. Values above 15 are not rejected,
// they alias under the nibble mask.
func NewLightLevel(block, sky uint8) LightLevel {
	return LightLevel(block&0xF | sky<<4)
}

// BlockLight returns the block light channel (0-15).
func (l LightLevel) BlockLight() uint8 {
	return uint8(l) & 0xF
}

// SkyLight returns the sky light channel (0-15).
func (l LightLevel) SkyLight() uint8 {
	return uint8(l) >> 4
}
