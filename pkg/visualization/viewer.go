// Package visualization renders slices of integer voxel volumes as grayscale
// images, for inspecting morphology inputs and results.
package visualization

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"

	"golang.org/x/exp/constraints"

	"github.com/seung-lab/fastmorph/pkg/volume"
)

// Viewer extracts 2D slices from a volume. Voxel values are mapped linearly
// onto the 16-bit grayscale range using the volume's maximum value, so label
// volumes render with distinguishable (if arbitrary) intensities.
type Viewer[T constraints.Integer] struct {
	vol *volume.Volume[T]

	// scale maps a voxel value onto [0, 65535].
	scale float64
}

// NewViewer creates a viewer for the given volume.
func NewViewer[T constraints.Integer](v *volume.Volume[T]) *Viewer[T] {
	var maxVal T
	for _, val := range v.Data {
		if val > maxVal {
			maxVal = val
		}
	}
	scale := 0.0
	if maxVal > 0 {
		scale = 65535.0 / float64(maxVal)
	}
	return &Viewer[T]{vol: v, scale: scale}
}

func (v *Viewer[T]) gray(val T) color.Gray16 {
	if val < 0 {
		return color.Gray16{}
	}
	return color.Gray16{Y: uint16(float64(val) * v.scale)}
}

// ExtractSlice extracts a 2D slice from the volume along the specified axis.
func (v *Viewer[T]) ExtractSlice(axis string, position int) (image.Image, error) {
	if position < 0 {
		return nil, fmt.Errorf("position must be non-negative")
	}

	vol := v.vol

	switch axis {
	case "x", "X":
		if position >= vol.Sx {
			return nil, fmt.Errorf("position %d exceeds width %d", position, vol.Sx)
		}
		img := image.NewGray16(image.Rect(0, 0, vol.Sz, vol.Sy))
		for y := 0; y < vol.Sy; y++ {
			for z := 0; z < vol.Sz; z++ {
				img.SetGray16(z, y, v.gray(vol.At(position, y, z)))
			}
		}
		return img, nil

	case "y", "Y":
		if position >= vol.Sy {
			return nil, fmt.Errorf("position %d exceeds height %d", position, vol.Sy)
		}
		img := image.NewGray16(image.Rect(0, 0, vol.Sx, vol.Sz))
		for z := 0; z < vol.Sz; z++ {
			for x := 0; x < vol.Sx; x++ {
				img.SetGray16(x, z, v.gray(vol.At(x, position, z)))
			}
		}
		return img, nil

	case "z", "Z":
		if position >= vol.Sz {
			return nil, fmt.Errorf("position %d exceeds depth %d", position, vol.Sz)
		}
		img := image.NewGray16(image.Rect(0, 0, vol.Sx, vol.Sy))
		for y := 0; y < vol.Sy; y++ {
			for x := 0; x < vol.Sx; x++ {
				img.SetGray16(x, y, v.gray(vol.At(x, y, position)))
			}
		}
		return img, nil

	default:
		return nil, fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}
}

// SaveSlice saves an extracted slice as a JPEG image.
func (v *Viewer[T]) SaveSlice(img image.Image, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
}

// SaveSliceSequence extracts and saves every slice along the specified axis.
func (v *Viewer[T]) SaveSliceSequence(axis string, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return err
	}

	var maxPos int
	switch axis {
	case "x", "X":
		maxPos = v.vol.Sx
	case "y", "Y":
		maxPos = v.vol.Sy
	case "z", "Z":
		maxPos = v.vol.Sz
	default:
		return fmt.Errorf("invalid axis: %s (must be x, y, or z)", axis)
	}

	for pos := 0; pos < maxPos; pos++ {
		img, err := v.ExtractSlice(axis, pos)
		if err != nil {
			return err
		}

		filename := filepath.Join(outputDir, fmt.Sprintf("slice_%s_%03d.jpg", axis, pos))
		if err := v.SaveSlice(img, filename); err != nil {
			return err
		}
	}

	return nil
}
