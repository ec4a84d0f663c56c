package morph

import "golang.org/x/exp/constraints"

// typeLimits computes the extrema of the integer element type. The grayscale
// kernels use these as reduction identities and trivial-voxel sentinels.
func typeLimits[T constraints.Integer]() (tmin, tmax T) {
	var zero T
	ones := ^zero
	if ones > zero {
		// unsigned
		return zero, ones
	}
	bits := 0
	for v := T(1); v != 0; v <<= 1 {
		bits++
	}
	tmin = T(1) << (bits - 1)
	tmax = ^tmin
	return tmin, tmax
}
