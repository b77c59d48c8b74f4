package profiling

import (
	"strings"
	"testing"
)

func TestTrackAccumulates(t *testing.T) {
	ResetFrame()
	for i := 0; i < 3; i++ {
		Track("test.Op")()
	}
	Track("test.Other")()

	ss := Snapshot()
	if ss["test.Op"].Calls != 3 {
		t.Fatalf("calls = %d, want 3", ss["test.Op"].Calls)
	}
	if len(ss) != 2 {
		t.Fatalf("snapshot has %d names, want 2", len(ss))
	}

	top := TopN(10)
	if !strings.Contains(top, "test.Op:") || !strings.Contains(top, "(3)") {
		t.Fatalf("TopN = %q", top)
	}

	ResetFrame()
	if len(Snapshot()) != 0 {
		t.Fatal("ResetFrame should clear totals")
	}
}
