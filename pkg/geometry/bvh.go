package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy. A leaf holds exactly
// one primitive in Leaf; an interior node holds two children and the union of their boxes.
type BVHNode struct {
	Box   core.AABB
	Left  *BVHNode
	Right *BVHNode
	Leaf  Hittable
}

// boxedObject pairs a primitive with its precomputed bounding box
type boxedObject struct {
	object Hittable
	box    core.AABB
}

// NewBVH builds a hierarchy over objects for the shutter interval [time0, time1].
// Each level splits at the median along a randomly chosen axis. The input slice is not modified.
func NewBVH(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	boxed := make([]boxedObject, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok || !box.IsValid() {
			return nil, fmt.Errorf("object %d (%T): %w", i, object, ErrUnboundedPrimitive)
		}
		boxed[i] = boxedObject{object: object, box: box}
	}

	return buildBVH(boxed, sampler), nil
}

// buildBVH recursively partitions a non-empty slice
func buildBVH(objects []boxedObject, sampler core.Sampler) *BVHNode {
	if len(objects) == 1 {
		return &BVHNode{
			Box:  objects[0].box,
			Leaf: objects[0].object,
		}
	}

	axis := core.RandomInt(sampler, 3)
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].box.Min.Axis(axis) < objects[j].box.Min.Axis(axis)
	})

	mid := len(objects) / 2
	left := buildBVH(objects[:mid], sampler)
	right := buildBVH(objects[mid:], sampler)

	return &BVHNode{
		Box:   left.Box.Union(right.Box),
		Left:  left,
		Right: right,
	}
}

// Hit tests if a ray intersects any primitive in the hierarchy
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if n.Leaf != nil {
		return n.Leaf.Hit(ray, tMin, tMax, sampler)
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	// The right subtree is searched with the tighter interval, so a right hit is never farther
	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the cached box of this subtree
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes int
	leafNodes  int
	maxDepth   int
}

// getStats walks the tree and returns its shape
func (n *BVHNode) getStats() bvhStats {
	stats := bvhStats{}
	n.collectStats(0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *bvhStats) {
	stats.totalNodes++
	if depth > stats.maxDepth {
		stats.maxDepth = depth
	}

	if n.Leaf != nil {
		stats.leafNodes++
		return
	}
	n.Left.collectStats(depth+1, stats)
	n.Right.collectStats(depth+1, stats)
}
