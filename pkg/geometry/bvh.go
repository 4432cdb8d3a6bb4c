package geometry

import (
	"sort"

	"github.com/kmorris/pathtracer/pkg/core"
)

// Bounded is a hittable with a finite axis-aligned bounding box
type Bounded interface {
	core.Hittable
	BoundingBox() core.AABB
}

// If a node holds this many shapes or fewer it becomes a leaf; linear
// search beats further splitting at this size.
const leafThreshold = 8

// bvhNode is a node in the bounding volume hierarchy
type bvhNode struct {
	box    core.AABB
	left   *bvhNode
	right  *bvhNode
	shapes []Bounded // Populated for leaf nodes only
}

// BVH accelerates ray intersection over a set of bounded shapes.
// It satisfies core.Hittable and can stand in for a List as the scene root.
type BVH struct {
	root *bvhNode
}

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Bounded) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Copy so sorting during the build never mutates the caller's slice
	shapesCopy := make([]Bounded, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{root: buildBVH(shapesCopy)}
}

// buildBVH recursively builds the hierarchy by median split along the longest axis
func buildBVH(shapes []Bounded) *bvhNode {
	box := shapes[0].BoundingBox()
	for _, s := range shapes[1:] {
		box = box.Union(s.BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{box: box, shapes: shapes}
	}

	sortShapesByAxis(shapes, box.LongestAxis())
	mid := len(shapes) / 2

	return &bvhNode{
		box:   box,
		left:  buildBVH(shapes[:mid]),
		right: buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis sorts shapes by bounding box center along the given axis
func sortShapesByAxis(shapes []Bounded, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		ci := shapes[i].BoundingBox().Center()
		cj := shapes[j].BoundingBox().Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})
}

// Hit tests the ray against the hierarchy, returning the closest hit
func (b *BVH) Hit(ray core.Ray, tValid core.Interval) (*core.HitRecord, bool) {
	if b.root == nil {
		return nil, false
	}
	return hitNode(b.root, ray, tValid)
}

func hitNode(node *bvhNode, ray core.Ray, tValid core.Interval) (*core.HitRecord, bool) {
	if !node.box.Hit(ray, tValid) {
		return nil, false
	}

	var closest *core.HitRecord
	searchRange := tValid

	if node.shapes != nil {
		for _, shape := range node.shapes {
			if hit, isHit := shape.Hit(ray, searchRange); isHit {
				closest = hit
				searchRange.Max = hit.T
			}
		}
		return closest, closest != nil
	}

	if hit, isHit := hitNode(node.left, ray, searchRange); isHit {
		closest = hit
		searchRange.Max = hit.T
	}
	if hit, isHit := hitNode(node.right, ray, searchRange); isHit {
		closest = hit
	}

	return closest, closest != nil
}
