package geometry

import "github.com/df07/go-pathtracer/pkg/core"

// HittableList is an ordered collection of shapes hit as a single shape
type HittableList struct {
	Objects []core.Shape
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(objects ...core.Shape) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends a shape to the list
func (h *HittableList) Add(object core.Shape) {
	h.Objects = append(h.Objects, object)
}

// Clear removes all shapes from the list
func (h *HittableList) Clear() {
	h.Objects = nil
}

// Len returns the number of shapes in the list
func (h *HittableList) Len() int {
	return len(h.Objects)
}

// Hit returns the nearest intersection across all shapes.
// The upper bound narrows to the closest t found so far, so a later shape
// at exactly the same t does not replace an earlier one.
func (h *HittableList) Hit(ray core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	closestSoFar := rayT.Max
	hitAnything := false

	for _, object := range h.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
