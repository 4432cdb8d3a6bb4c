package geometry

import "github.com/kmorris/pathtracer/pkg/core"

// List aggregates any number of hittables and resolves the closest hit
type List struct {
	Objects []core.Hittable
}

// NewList creates a list from the given objects
func NewList(objects ...core.Hittable) *List {
	return &List{Objects: objects}
}

// Add appends an object to the list
func (l *List) Add(objects ...core.Hittable) {
	l.Objects = append(l.Objects, objects...)
}

// Hit tests the ray against every child, narrowing the search interval's
// upper bound to the closest t found so far, so a single pass returns the
// globally closest hit regardless of child order.
func (l *List) Hit(ray core.Ray, tValid core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	searchRange := tValid

	for _, obj := range l.Objects {
		if hit, isHit := obj.Hit(ray, searchRange); isHit {
			closest = hit
			searchRange.Max = hit.T
		}
	}

	return closest, closest != nil
}
