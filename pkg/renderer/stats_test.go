package renderer

import (
	"testing"
	"time"
)

func TestRenderStats_Merge(t *testing.T) {
	a := RenderStats{RaysTraced: 100, PixelsRendered: 10, Elapsed: 2 * time.Second}
	b := RenderStats{RaysTraced: 50, PixelsRendered: 5, Elapsed: 3 * time.Second}

	a.Merge(b)

	if a.RaysTraced != 150 {
		t.Errorf("RaysTraced = %d, want 150", a.RaysTraced)
	}
	if a.PixelsRendered != 15 {
		t.Errorf("PixelsRendered = %d, want 15", a.PixelsRendered)
	}
	// Workers run concurrently, so merged elapsed is the slowest worker,
	// not the sum
	if a.Elapsed != 3*time.Second {
		t.Errorf("Elapsed = %v, want 3s", a.Elapsed)
	}
}

func TestRenderStats_MergeKeepsLargerElapsed(t *testing.T) {
	a := RenderStats{Elapsed: 5 * time.Second}
	a.Merge(RenderStats{Elapsed: time.Second})
	if a.Elapsed != 5*time.Second {
		t.Errorf("Elapsed = %v, want 5s", a.Elapsed)
	}
}

func TestRenderStats_ElapsedMs(t *testing.T) {
	s := RenderStats{Elapsed: 1500 * time.Millisecond}
	if got := s.ElapsedMs(); got != 1500 {
		t.Errorf("ElapsedMs = %v, want 1500", got)
	}
}
