package geometry

import (
	"math"
	"testing"

	"github.com/kmorris/pathtracer/pkg/core"
)

// The list must return the globally closest hit no matter the child order
func TestList_Hit_ClosestWins(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial)
	mid := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial)
	far := NewSphere(core.NewVec3(0, 0, -9), 0.5, testMaterial)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	orders := [][]core.Hittable{
		{near, mid, far},
		{far, mid, near},
		{mid, far, near},
	}

	for _, objects := range orders {
		list := NewList(objects...)
		hit, isHit := list.Hit(ray, hitRange())
		if !isHit {
			t.Fatal("expected a hit")
		}
		if math.Abs(hit.T-1.5) > 1e-9 {
			t.Errorf("t = %v, want 1.5 (nearest sphere)", hit.T)
		}
	}
}

func TestList_Hit_Empty(t *testing.T) {
	list := NewList()
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, hitRange()); isHit {
		t.Error("empty list must never hit")
	}
}

func TestList_Hit_RespectsInterval(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -5), 0.5, testMaterial)
	list := NewList(sphere)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Sphere sits at t in [4.5, 5.5]; an interval ending before it must miss
	if _, isHit := list.Hit(ray, core.NewInterval(0.001, 4.0)); isHit {
		t.Error("expected miss for interval ending before the sphere")
	}
}

func TestList_Add(t *testing.T) {
	list := NewList()
	list.Add(NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial))
	list.Add(
		NewSphere(core.NewVec3(0, 0, -4), 0.5, testMaterial),
		NewSphere(core.NewVec3(0, 0, -6), 0.5, testMaterial),
	)

	if len(list.Objects) != 3 {
		t.Errorf("len = %d, want 3", len(list.Objects))
	}
}
