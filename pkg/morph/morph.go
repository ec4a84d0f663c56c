// Package morph implements 3D (and 2D) mathematical morphology primitives
// over dense voxel grids under a 3x3x3 (or 3x3) structuring element with all
// positions active: multilabel dilation (neighborhood mode), multilabel
// erosion (neighborhood agreement), and grayscale dilation/erosion
// (neighborhood max/min).
//
// Volumes are flat slices in x-fastest order: the element at (x,y,z) lives at
// index x + sx*(y + sy*z). A 2D image is a volume with sz = 1 and uses the
// 3x3 structuring element; the convenience 2D wrappers do exactly that.
//
// The input and output buffers must be distinct and the output must be
// zeroed: the multilabel kernels rely on output-is-zero meaning "not written"
// both as the result encoding and internally for layer-skip decisions.
// Kernels partition the output into blocks processed by a fixed worker pool;
// results are independent of the thread count.
package morph

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MultilabelDilate writes the mode of each voxel's 3x3x3 neighborhood
// (nonzero labels only) to output. With backgroundOnly set, voxels that
// already carry a label keep it and only background voxels are filled in;
// otherwise labels may overwrite each other as they grow. Ties between
// equally frequent labels break toward the earlier label in sorted order;
// callers must not rely on which of the tied maxima wins. threads == 0 runs
// synchronously on the calling goroutine.
func MultilabelDilate[T constraints.Integer](labels, output []T, sx, sy, sz int, backgroundOnly bool, threads int) error {
	if err := validate(labels, output, sx, sy, sz, threads); err != nil {
		return fmt.Errorf("multilabel dilate: %w", err)
	}
	v := newVol(labels, output, sx, sy, sz)
	forEachBlock(sx, sy, sz, 0, threads, func(r blockRange) {
		v.dilateBlock(r.xs, r.xe, r.ys, r.ye, r.zs, r.ze, backgroundOnly)
	})
	return nil
}

// MultilabelErode writes each voxel's own label iff its entire 3x3x3
// neighborhood carries that label; every other output voxel stays 0. With
// erodeBorder set, positions outside the volume count as background, so no
// voxel on the volume rim survives; otherwise out-of-range neighbors are
// treated as agreeing and the rim is eroded only by its in-range neighbors.
func MultilabelErode[T constraints.Integer](labels, output []T, sx, sy, sz int, erodeBorder bool, threads int) error {
	if err := validate(labels, output, sx, sy, sz, threads); err != nil {
		return fmt.Errorf("multilabel erode: %w", err)
	}
	ofs := 0
	if erodeBorder {
		ofs = 1
	}
	v := newVol(labels, output, sx, sy, sz)
	forEachBlock(sx, sy, sz, ofs, threads, func(r blockRange) {
		v.erodeBlock(r.xs, r.xe, r.ys, r.ye, r.zs, r.ze, !erodeBorder)
	})
	return nil
}

// GreyDilate writes the maximum of each voxel's 3x3x3 neighborhood to
// output. Every in-range voxel is written; positions outside the volume
// contribute the type minimum, i.e. nothing.
func GreyDilate[T constraints.Integer](labels, output []T, sx, sy, sz int, threads int) error {
	if err := validate(labels, output, sx, sy, sz, threads); err != nil {
		return fmt.Errorf("grey dilate: %w", err)
	}
	v := newVol(labels, output, sx, sy, sz)
	forEachBlock(sx, sy, sz, 0, threads, func(r blockRange) {
		v.greyDilateBlock(r.xs, r.xe, r.ys, r.ye, r.zs, r.ze)
	})
	return nil
}

// GreyErode writes the minimum of each voxel's 3x3x3 neighborhood to output.
// Every in-range voxel is written; positions outside the volume contribute
// the type maximum, i.e. nothing.
func GreyErode[T constraints.Integer](labels, output []T, sx, sy, sz int, threads int) error {
	if err := validate(labels, output, sx, sy, sz, threads); err != nil {
		return fmt.Errorf("grey erode: %w", err)
	}
	v := newVol(labels, output, sx, sy, sz)
	forEachBlock(sx, sy, sz, 0, threads, func(r blockRange) {
		v.greyErodeBlock(r.xs, r.xe, r.ys, r.ye, r.zs, r.ze)
	})
	return nil
}

// MultilabelDilate2D is MultilabelDilate over a single-slice volume.
func MultilabelDilate2D[T constraints.Integer](labels, output []T, sx, sy int, backgroundOnly bool, threads int) error {
	return MultilabelDilate(labels, output, sx, sy, 1, backgroundOnly, threads)
}

// MultilabelErode2D is MultilabelErode over a single-slice volume.
func MultilabelErode2D[T constraints.Integer](labels, output []T, sx, sy int, erodeBorder bool, threads int) error {
	return MultilabelErode(labels, output, sx, sy, 1, erodeBorder, threads)
}

// GreyDilate2D is GreyDilate over a single-slice volume.
func GreyDilate2D[T constraints.Integer](labels, output []T, sx, sy int, threads int) error {
	return GreyDilate(labels, output, sx, sy, 1, threads)
}

// GreyErode2D is GreyErode over a single-slice volume.
func GreyErode2D[T constraints.Integer](labels, output []T, sx, sy int, threads int) error {
	return GreyErode(labels, output, sx, sy, 1, threads)
}

func validate[T constraints.Integer](labels, output []T, sx, sy, sz, threads int) error {
	if sx < 1 || sy < 1 || sz < 1 {
		return fmt.Errorf("dimensions must be >= 1, got %dx%dx%d", sx, sy, sz)
	}
	n := sx * sy * sz
	if len(labels) != n {
		return fmt.Errorf("input length %d does not match %dx%dx%d = %d voxels", len(labels), sx, sy, sz, n)
	}
	if len(output) != n {
		return fmt.Errorf("output length %d does not match %dx%dx%d = %d voxels", len(output), sx, sy, sz, n)
	}
	if &labels[0] == &output[0] {
		return fmt.Errorf("input and output buffers must not alias")
	}
	if threads < 0 {
		return fmt.Errorf("threads must be >= 0, got %d", threads)
	}
	return nil
}
