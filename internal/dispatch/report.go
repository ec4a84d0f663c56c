package dispatch

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/seung-lab/fastmorph/pkg/visualization"
	"github.com/seung-lab/fastmorph/pkg/volume"
)

// LoadVolume reads a volume file of any supported element type.
func LoadVolume(path string) (any, volume.Dtype, error) {
	return volume.LoadFile(path)
}

// Summarize computes the value-distribution summary of a loaded volume.
func Summarize(v any) (volume.Summary, error) {
	switch vol := v.(type) {
	case *volume.Volume[uint8]:
		return volume.Summarize(vol), nil
	case *volume.Volume[uint16]:
		return volume.Summarize(vol), nil
	case *volume.Volume[uint32]:
		return volume.Summarize(vol), nil
	case *volume.Volume[uint64]:
		return volume.Summarize(vol), nil
	case *volume.Volume[int8]:
		return volume.Summarize(vol), nil
	case *volume.Volume[int16]:
		return volume.Summarize(vol), nil
	case *volume.Volume[int32]:
		return volume.Summarize(vol), nil
	case *volume.Volume[int64]:
		return volume.Summarize(vol), nil
	default:
		return volume.Summary{}, fmt.Errorf("summarize: unsupported volume type %T", v)
	}
}

// SaveVolume writes a loaded volume back to a file.
func SaveVolume(path string, v any) error {
	switch vol := v.(type) {
	case *volume.Volume[uint8]:
		return volume.SaveFile(path, vol)
	case *volume.Volume[uint16]:
		return volume.SaveFile(path, vol)
	case *volume.Volume[uint32]:
		return volume.SaveFile(path, vol)
	case *volume.Volume[uint64]:
		return volume.SaveFile(path, vol)
	case *volume.Volume[int8]:
		return volume.SaveFile(path, vol)
	case *volume.Volume[int16]:
		return volume.SaveFile(path, vol)
	case *volume.Volume[int32]:
		return volume.SaveFile(path, vol)
	case *volume.Volume[int64]:
		return volume.SaveFile(path, vol)
	default:
		return fmt.Errorf("save: unsupported volume type %T", v)
	}
}

// ExportSlices renders every slice of the volume along the given axis into
// outputDir as grayscale images.
func ExportSlices(v any, axis, outputDir string) error {
	switch vol := v.(type) {
	case *volume.Volume[uint8]:
		return exportSlices(vol, axis, outputDir)
	case *volume.Volume[uint16]:
		return exportSlices(vol, axis, outputDir)
	case *volume.Volume[uint32]:
		return exportSlices(vol, axis, outputDir)
	case *volume.Volume[uint64]:
		return exportSlices(vol, axis, outputDir)
	case *volume.Volume[int8]:
		return exportSlices(vol, axis, outputDir)
	case *volume.Volume[int16]:
		return exportSlices(vol, axis, outputDir)
	case *volume.Volume[int32]:
		return exportSlices(vol, axis, outputDir)
	case *volume.Volume[int64]:
		return exportSlices(vol, axis, outputDir)
	default:
		return fmt.Errorf("export slices: unsupported volume type %T", v)
	}
}

func exportSlices[T constraints.Integer](v *volume.Volume[T], axis, outputDir string) error {
	return visualization.NewViewer(v).SaveSliceSequence(axis, outputDir)
}
