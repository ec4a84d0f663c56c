package morph

import (
	"testing"
)

// mustDilate runs MultilabelDilate into a fresh zeroed output.
func mustDilate(t *testing.T, labels []uint8, sx, sy, sz int, backgroundOnly bool, threads int) []uint8 {
	t.Helper()
	out := make([]uint8, len(labels))
	if err := MultilabelDilate(labels, out, sx, sy, sz, backgroundOnly, threads); err != nil {
		t.Fatalf("MultilabelDilate failed: %v", err)
	}
	return out
}

func mustErode(t *testing.T, labels []uint8, sx, sy, sz int, erodeBorder bool, threads int) []uint8 {
	t.Helper()
	out := make([]uint8, len(labels))
	if err := MultilabelErode(labels, out, sx, sy, sz, erodeBorder, threads); err != nil {
		t.Fatalf("MultilabelErode failed: %v", err)
	}
	return out
}

// TestDilateSingleVoxel dilates a lone labeled voxel at the center of a
// 3x3x3 volume; the label must flood the whole volume.
func TestDilateSingleVoxel(t *testing.T) {
	labels := make([]uint8, 27)
	labels[1+3*(1+3*1)] = 5

	for _, backgroundOnly := range []bool{false, true} {
		out := mustDilate(t, labels, 3, 3, 3, backgroundOnly, 1)
		for i, v := range out {
			if v != 5 {
				t.Fatalf("backgroundOnly=%v: voxel %d = %d, want 5", backgroundOnly, i, v)
			}
		}
	}
}

// TestErodeUniformVolume erodes an all-7 3x3x3 volume; only the center voxel
// has a fully interior neighborhood.
func TestErodeUniformVolume(t *testing.T) {
	labels := make([]uint8, 27)
	for i := range labels {
		labels[i] = 7
	}

	out := mustErode(t, labels, 3, 3, 3, true, 1)
	for i, v := range out {
		if i == 1+3*(1+3*1) {
			if v != 7 {
				t.Fatalf("center voxel = %d, want 7", v)
			}
		} else if v != 0 {
			t.Fatalf("voxel %d = %d, want 0", i, v)
		}
	}
}

// TestErodePreservedBorder erodes the same all-7 volume with the rim treated
// as agreeing; every voxel must survive.
func TestErodePreservedBorder(t *testing.T) {
	labels := make([]uint8, 27)
	for i := range labels {
		labels[i] = 7
	}

	out := mustErode(t, labels, 3, 3, 3, false, 1)
	for i, v := range out {
		if v != 7 {
			t.Fatalf("voxel %d = %d, want 7", i, v)
		}
	}
}

// TestErodeUniformSlice erodes an all-7 single-slice volume; the 2D kernel
// has no z extent, so the in-plane center survives.
func TestErodeUniformSlice(t *testing.T) {
	labels := make([]uint8, 9)
	for i := range labels {
		labels[i] = 7
	}

	out := mustErode(t, labels, 3, 3, 1, true, 1)
	for i, v := range out {
		if i == 1+3*1 {
			if v != 7 {
				t.Fatalf("center voxel = %d, want 7", v)
			}
		} else if v != 0 {
			t.Fatalf("voxel %d = %d, want 0", i, v)
		}
	}
}

// TestDilateModeWins places label 2 on the six face-neighbors of a center
// labeled 9; the mode must take the center.
func TestDilateModeWins(t *testing.T) {
	labels := make([]uint8, 27)
	idx := func(x, y, z int) int { return x + 3*(y+3*z) }
	labels[idx(1, 1, 1)] = 9
	labels[idx(0, 1, 1)] = 2
	labels[idx(2, 1, 1)] = 2
	labels[idx(1, 0, 1)] = 2
	labels[idx(1, 2, 1)] = 2
	labels[idx(1, 1, 0)] = 2
	labels[idx(1, 1, 2)] = 2

	out := mustDilate(t, labels, 3, 3, 3, false, 1)
	if out[idx(1, 1, 1)] != 2 {
		t.Fatalf("center = %d, want mode 2", out[idx(1, 1, 1)])
	}
}

// TestDilateTieBreak puts one voxel each of labels 2 and 5 adjacent to a
// background voxel; the tie goes to the label that sorts first.
func TestDilateTieBreak(t *testing.T) {
	labels := make([]uint8, 9)
	idx := func(x, y int) int { return x + 3*y }
	labels[idx(0, 1)] = 5
	labels[idx(2, 1)] = 2

	out := mustDilate(t, labels, 3, 3, 1, false, 1)
	if out[idx(1, 1)] != 2 {
		t.Fatalf("tie broke to %d, want 2", out[idx(1, 1)])
	}
}

// TestDilateBackgroundOnlyPreserves checks that existing labels survive a
// background-only dilation even when outnumbered.
func TestDilateBackgroundOnlyPreserves(t *testing.T) {
	labels := make([]uint8, 27)
	idx := func(x, y, z int) int { return x + 3*(y+3*z) }
	labels[idx(1, 1, 1)] = 9
	labels[idx(0, 1, 1)] = 2
	labels[idx(2, 1, 1)] = 2
	labels[idx(1, 0, 1)] = 2
	labels[idx(1, 2, 1)] = 2

	out := mustDilate(t, labels, 3, 3, 3, true, 1)
	if out[idx(1, 1, 1)] != 9 {
		t.Fatalf("center = %d, want preserved 9", out[idx(1, 1, 1)])
	}
}

// TestGreyDilateSlice is the 5x5 single-peak scenario: the peak spreads to
// its 3x3 neighborhood and nowhere else.
func TestGreyDilateSlice(t *testing.T) {
	labels := make([]uint8, 25)
	idx := func(x, y int) int { return x + 5*y }
	labels[idx(2, 2)] = 9

	out := make([]uint8, 25)
	if err := GreyDilate(labels, out, 5, 5, 1, 2); err != nil {
		t.Fatalf("GreyDilate failed: %v", err)
	}

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := uint8(0)
			if x >= 1 && x <= 3 && y >= 1 && y <= 3 {
				want = 9
			}
			if out[idx(x, y)] != want {
				t.Fatalf("out[%d,%d] = %d, want %d", x, y, out[idx(x, y)], want)
			}
		}
	}
}

// TestGreyErodeSlice erodes the same input; every neighborhood contains a 0.
func TestGreyErodeSlice(t *testing.T) {
	labels := make([]uint8, 25)
	labels[2+5*2] = 9

	out := make([]uint8, 25)
	if err := GreyErode(labels, out, 5, 5, 1, 2); err != nil {
		t.Fatalf("GreyErode failed: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("voxel %d = %d, want 0", i, v)
		}
	}
}

// TestSingleVoxelVolume checks the degenerate 1x1x1 volume for all kernels.
func TestSingleVoxelVolume(t *testing.T) {
	labels := []uint8{5}

	if out := mustDilate(t, labels, 1, 1, 1, false, 1); out[0] != 5 {
		t.Errorf("dilate = %d, want 5", out[0])
	}
	if out := mustErode(t, labels, 1, 1, 1, true, 1); out[0] != 0 {
		t.Errorf("erode (erode border) = %d, want 0", out[0])
	}
	if out := mustErode(t, labels, 1, 1, 1, false, 1); out[0] != 5 {
		t.Errorf("erode (preserve border) = %d, want 5", out[0])
	}

	out := make([]uint8, 1)
	if err := GreyDilate(labels, out, 1, 1, 1, 1); err != nil || out[0] != 5 {
		t.Errorf("grey dilate = %d (err %v), want 5", out[0], err)
	}
	out[0] = 0
	if err := GreyErode(labels, out, 1, 1, 1, 1); err != nil || out[0] != 5 {
		t.Errorf("grey erode = %d (err %v), want 5", out[0], err)
	}
}

// TestUniformSkipAhead dilates a volume carrying one label everywhere, which
// drives the uniform-column pair-write (|middle|+|right| >= 14) on every
// interior voxel and the uniform-window shortcut on the y and z faces.
func TestUniformSkipAhead(t *testing.T) {
	const sx, sy, sz = 10, 9, 8
	labels := make([]uint8, sx*sy*sz)
	for i := range labels {
		labels[i] = 3
	}

	out := mustDilate(t, labels, sx, sy, sz, false, 1)
	for i, v := range out {
		if v != 3 {
			t.Fatalf("voxel %d = %d, want 3", i, v)
		}
	}
}

// TestUniformColumnSkipAhead builds dense uniform middle+right columns next
// to a competing column, exercising the |middle|+|right| >= 14 pair-write at
// and just below the threshold.
func TestUniformColumnSkipAhead(t *testing.T) {
	const sx, sy, sz = 6, 3, 3
	idx := func(x, y, z int) int { return x + sx*(y+sy*z) }

	build := func(rightCount int) []uint8 {
		labels := make([]uint8, sx*sy*sz)
		for z := 0; z < sz; z++ {
			for y := 0; y < sy; y++ {
				// Column x=0 pulls toward label 9, columns x=1,2 are label 4.
				labels[idx(0, y, z)] = 9
				labels[idx(1, y, z)] = 4
			}
		}
		// rightCount voxels of the x=2 column carry label 4, the rest stay 0
		// so |middle|+|right| lands exactly where the test wants it.
		ct := 0
		for z := 0; z < sz && ct < rightCount; z++ {
			for y := 0; y < sy && ct < rightCount; y++ {
				labels[idx(2, y, z)] = 4
				ct++
			}
		}
		return labels
	}

	for _, rightCount := range []int{4, 5, 9} {
		labels := build(rightCount)
		got := mustDilate(t, labels, sx, sy, sz, false, 1)
		want := naiveMultilabelDilate(labels, sx, sy, sz, false)
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("rightCount=%d: voxel %d = %d, want %d", rightCount, i, got[i], want[i])
			}
		}
	}
}

// TestValidation covers the precondition checks on the exported surface.
func TestValidation(t *testing.T) {
	labels := make([]uint8, 8)
	out := make([]uint8, 8)

	if err := MultilabelDilate(labels, out, 0, 2, 2, false, 1); err == nil {
		t.Error("expected error for zero dimension")
	}
	if err := MultilabelDilate(labels, out, 3, 2, 2, false, 1); err == nil {
		t.Error("expected error for length mismatch")
	}
	if err := MultilabelDilate(labels, out[:4], 2, 2, 2, false, 1); err == nil {
		t.Error("expected error for short output")
	}
	if err := MultilabelDilate(labels, labels, 2, 2, 2, false, 1); err == nil {
		t.Error("expected error for aliasing buffers")
	}
	if err := MultilabelDilate(labels, out, 2, 2, 2, false, -1); err == nil {
		t.Error("expected error for negative threads")
	}
	if err := MultilabelDilate(labels, out, 2, 2, 2, false, 0); err != nil {
		t.Errorf("threads=0 must run synchronously, got %v", err)
	}
}
