package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	lo := points[0]
	hi := points[0]
	for _, p := range points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		lo.Z = math.Min(lo.Z, p.Z)

		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
		hi.Z = math.Max(hi.Z, p.Z)
	}
	return AABB{Min: lo, Max: hi}
}

// Hit tests if a ray intersects this AABB within tValid using the slab method
func (aabb AABB) Hit(ray Ray, tValid Interval) bool {
	tMin, tMax := tValid.Min, tValid.Max

	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, direction float64
		switch axis {
		case 0:
			lo, hi = aabb.Min.X, aabb.Max.X
			origin, direction = ray.Origin.X, ray.Direction.X
		case 1:
			lo, hi = aabb.Min.Y, aabb.Max.Y
			origin, direction = ray.Origin.Y, ray.Direction.Y
		case 2:
			lo, hi = aabb.Min.Z, aabb.Max.Z
			origin, direction = ray.Origin.Z, ray.Direction.Z
		}

		// Ray parallel to this axis: inside the slab or not at all
		if math.Abs(direction) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	lo := Vec3{
		X: math.Min(aabb.Min.X, other.Min.X),
		Y: math.Min(aabb.Min.Y, other.Min.Y),
		Z: math.Min(aabb.Min.Z, other.Min.Z),
	}
	hi := Vec3{
		X: math.Max(aabb.Max.X, other.Max.X),
		Y: math.Max(aabb.Max.Y, other.Max.Y),
		Z: math.Max(aabb.Max.Z, other.Max.Z),
	}
	return AABB{Min: lo, Max: hi}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent
func (aabb AABB) LongestAxis() int {
	extent := aabb.Max.Subtract(aabb.Min)
	if extent.X >= extent.Y && extent.X >= extent.Z {
		return 0
	}
	if extent.Y >= extent.Z {
		return 1
	}
	return 2
}
