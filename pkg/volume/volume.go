// Package volume provides the dense voxel-grid container the morphology
// kernels operate on, plus statistics over label distributions and a
// compressed on-disk format.
//
// Voxels are stored in a flat slice in x-fastest order: the element at
// (x,y,z) lives at index x + Sx*(y + Sy*z). A 2D image is a volume with
// Sz = 1.
package volume

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Volume is a dense 3D grid of integer voxels.
type Volume[T constraints.Integer] struct {
	// Data holds the voxels in x-fastest linear order.
	Data []T

	// Sx, Sy, Sz are the grid dimensions; all are >= 1.
	Sx, Sy, Sz int
}

// New allocates a zeroed volume with the given dimensions.
func New[T constraints.Integer](sx, sy, sz int) *Volume[T] {
	return &Volume[T]{
		Data: make([]T, sx*sy*sz),
		Sx:   sx,
		Sy:   sy,
		Sz:   sz,
	}
}

// Index returns the linear index of (x,y,z).
func (v *Volume[T]) Index(x, y, z int) int {
	return x + v.Sx*(y+v.Sy*z)
}

// At returns the voxel at (x,y,z).
func (v *Volume[T]) At(x, y, z int) T {
	return v.Data[v.Index(x, y, z)]
}

// Set stores val at (x,y,z).
func (v *Volume[T]) Set(x, y, z int, val T) {
	v.Data[v.Index(x, y, z)] = val
}

// NumVoxels returns the total voxel count.
func (v *Volume[T]) NumVoxels() int {
	return v.Sx * v.Sy * v.Sz
}

// Clone returns a deep copy of the volume.
func (v *Volume[T]) Clone() *Volume[T] {
	out := New[T](v.Sx, v.Sy, v.Sz)
	copy(out.Data, v.Data)
	return out
}

// CountDifferences returns the number of positions at which a and b differ.
func CountDifferences[T comparable](a, b []T) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("count differences: length mismatch %d vs %d", len(a), len(b))
	}
	ct := 0
	for i := range a {
		if a[i] != b[i] {
			ct++
		}
	}
	return ct, nil
}
