package geometry

import (
	"math"
	"testing"

	"github.com/kmorris/pathtracer/pkg/core"
)

func TestPlane_Hit(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), testMaterial)

	tests := []struct {
		name          string
		ray           core.Ray
		wantHit       bool
		wantT         float64
		wantFrontFace bool
	}{
		{
			name:          "hit from above",
			ray:           core.NewRay(core.NewVec3(0, 2, 0), core.NewVec3(0, -1, 0)),
			wantHit:       true,
			wantT:         2.0,
			wantFrontFace: true,
		},
		{
			name:          "hit from below",
			ray:           core.NewRay(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)),
			wantHit:       true,
			wantT:         3.0,
			wantFrontFace: false,
		},
		{
			name:    "parallel ray misses",
			ray:     core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "pointing away misses",
			ray:     core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(tt.ray, hitRange())
			if isHit != tt.wantHit {
				t.Fatalf("Hit = %v, want %v", isHit, tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if math.Abs(hit.T-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", hit.T, tt.wantT)
			}
			if hit.FrontFace != tt.wantFrontFace {
				t.Errorf("FrontFace = %v, want %v", hit.FrontFace, tt.wantFrontFace)
			}
			// Normal always faces against the incoming ray
			if hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("normal %v does not oppose ray %v", hit.Normal, tt.ray.Direction)
			}
		})
	}
}

func TestPlane_NormalizedOnConstruction(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 5, 0), testMaterial)
	if math.Abs(plane.Normal.Length()-1) > 1e-12 {
		t.Errorf("normal length = %v, want 1", plane.Normal.Length())
	}
}
