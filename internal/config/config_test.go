package config

import (
	"testing"
	"time"
)

func TestTraversalWorkersClamped(t *testing.T) {
	defer SetTraversalWorkers(GetTraversalWorkers())

	SetTraversalWorkers(0)
	if got := GetTraversalWorkers(); got != 1 {
		t.Errorf("workers = %d, want 1", got)
	}
	SetTraversalWorkers(1000)
	if got := GetTraversalWorkers(); got != 64 {
		t.Errorf("workers = %d, want 64", got)
	}
}

func TestBelowWorldPolicyFallsBackToSky(t *testing.T) {
	defer SetBelowWorldPolicy(GetBelowWorldPolicy())

	SetBelowWorldPolicy(BelowWorldDark)
	if GetBelowWorldPolicy() != BelowWorldDark {
		t.Fatal("dark policy not stored")
	}
	SetBelowWorldPolicy("lava")
	if GetBelowWorldPolicy() != BelowWorldSky {
		t.Fatalf("unknown policy stored as %q, want sky", GetBelowWorldPolicy())
	}
}

func TestParseAndApply(t *testing.T) {
	defer SetBelowWorldPolicy(GetBelowWorldPolicy())
	defer SetTraversalWorkers(GetTraversalWorkers())
	defer SetSlowTraversal(GetSlowTraversal())

	f, err := Parse([]byte("below_world: dark\ntraversal_workers: 6\nslow_traversal_ms: 20\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	f.Apply()
	if GetBelowWorldPolicy() != BelowWorldDark {
		t.Error("below_world not applied")
	}
	if GetTraversalWorkers() != 6 {
		t.Errorf("workers = %d, want 6", GetTraversalWorkers())
	}
	if GetSlowTraversal() != 20*time.Millisecond {
		t.Errorf("slow traversal = %v, want 20ms", GetSlowTraversal())
	}

	// Zero fields leave settings alone.
	File{}.Apply()
	if GetTraversalWorkers() != 6 {
		t.Error("empty file changed the worker count")
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("traversal_workers: [")); err == nil {
		t.Fatal("expected error")
	}
}
