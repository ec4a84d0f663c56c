package visualization

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/seung-lab/fastmorph/pkg/volume"
)

func testVolume() *volume.Volume[uint8] {
	v := volume.New[uint8](4, 3, 2)
	for z := 0; z < v.Sz; z++ {
		for y := 0; y < v.Sy; y++ {
			for x := 0; x < v.Sx; x++ {
				v.Set(x, y, z, uint8(x+y+z))
			}
		}
	}
	return v
}

func TestExtractSliceZ(t *testing.T) {
	v := testVolume()
	viewer := NewViewer(v)

	img, err := viewer.ExtractSlice("z", 1)
	if err != nil {
		t.Fatalf("ExtractSlice failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != v.Sx || bounds.Dy() != v.Sy {
		t.Fatalf("slice bounds %v, want %dx%d", bounds, v.Sx, v.Sy)
	}

	// The maximum voxel value (3+2+1=6) must map to full white.
	maxGray := img.At(3, 2).(color.Gray16)
	if maxGray.Y != 65535 {
		t.Fatalf("max voxel rendered as %d, want 65535", maxGray.Y)
	}
	zeroGray := img.At(0, 0).(color.Gray16)
	if zeroGray.Y == 65535 {
		t.Fatal("minimum voxel rendered as full white")
	}
}

func TestExtractSliceBounds(t *testing.T) {
	viewer := NewViewer(testVolume())

	if _, err := viewer.ExtractSlice("z", 2); err == nil {
		t.Error("expected error for out-of-range position")
	}
	if _, err := viewer.ExtractSlice("w", 0); err == nil {
		t.Error("expected error for invalid axis")
	}
	if _, err := viewer.ExtractSlice("x", -1); err == nil {
		t.Error("expected error for negative position")
	}
}

func TestSaveSliceSequence(t *testing.T) {
	dir := t.TempDir()
	viewer := NewViewer(testVolume())

	for _, axis := range []string{"x", "y", "z"} {
		if err := viewer.SaveSliceSequence(axis, dir); err != nil {
			t.Fatalf("SaveSliceSequence(%s) failed: %v", axis, err)
		}
	}

	matches, err := filepath.Glob(filepath.Join(dir, "slice_*.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	// 4 x-slices + 3 y-slices + 2 z-slices.
	if len(matches) != 9 {
		t.Fatalf("saved %d slices, want 9", len(matches))
	}
}
