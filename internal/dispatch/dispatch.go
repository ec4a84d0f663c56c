// Package dispatch maps a stored element-type tag to the matching
// monomorphic kernel invocation. It is the boundary between untyped volume
// files and the generic morphology core: it allocates the (zeroed) output
// buffer, runs the kernel, and hands the result back.
package dispatch

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/seung-lab/fastmorph/pkg/morph"
	"github.com/seung-lab/fastmorph/pkg/volume"
)

// Op names one of the four morphology primitives.
type Op string

const (
	OpDilate     Op = "dilate"
	OpErode      Op = "erode"
	OpGreyDilate Op = "greydilate"
	OpGreyErode  Op = "greyerode"
)

// ParseOp validates an operation name.
func ParseOp(name string) (Op, error) {
	switch Op(name) {
	case OpDilate, OpErode, OpGreyDilate, OpGreyErode:
		return Op(name), nil
	default:
		return "", fmt.Errorf("unknown operation %q (want dilate, erode, greydilate or greyerode)", name)
	}
}

// Options carries the kernel parameters shared across element types.
type Options struct {
	// BackgroundOnly applies to dilate only.
	BackgroundOnly bool

	// ErodeBorder applies to erode only.
	ErodeBorder bool

	// Threads is the worker count; 0 runs synchronously.
	Threads int
}

// Apply runs op over the volume held in v, which must be a *volume.Volume[T]
// as returned by volume.Load. It returns a freshly allocated volume of the
// same element type.
func Apply(v any, op Op, opts Options) (any, error) {
	switch vol := v.(type) {
	case *volume.Volume[uint8]:
		return apply(vol, op, opts)
	case *volume.Volume[uint16]:
		return apply(vol, op, opts)
	case *volume.Volume[uint32]:
		return apply(vol, op, opts)
	case *volume.Volume[uint64]:
		return apply(vol, op, opts)
	case *volume.Volume[int8]:
		return apply(vol, op, opts)
	case *volume.Volume[int16]:
		return apply(vol, op, opts)
	case *volume.Volume[int32]:
		return apply(vol, op, opts)
	case *volume.Volume[int64]:
		return apply(vol, op, opts)
	default:
		return nil, fmt.Errorf("apply %s: unsupported volume type %T", op, v)
	}
}

func apply[T constraints.Integer](in *volume.Volume[T], op Op, opts Options) (*volume.Volume[T], error) {
	out := volume.New[T](in.Sx, in.Sy, in.Sz)

	var err error
	switch op {
	case OpDilate:
		err = morph.MultilabelDilate(in.Data, out.Data, in.Sx, in.Sy, in.Sz, opts.BackgroundOnly, opts.Threads)
	case OpErode:
		err = morph.MultilabelErode(in.Data, out.Data, in.Sx, in.Sy, in.Sz, opts.ErodeBorder, opts.Threads)
	case OpGreyDilate:
		err = morph.GreyDilate(in.Data, out.Data, in.Sx, in.Sy, in.Sz, opts.Threads)
	case OpGreyErode:
		err = morph.GreyErode(in.Data, out.Data, in.Sx, in.Sy, in.Sz, opts.Threads)
	default:
		err = fmt.Errorf("unknown operation %q", op)
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
