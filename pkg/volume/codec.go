package volume

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"

	"golang.org/x/exp/constraints"
)

// File format: the magic string, one dtype byte, three little-endian uint64
// dimensions, then the voxel payload (little-endian, x-fastest) as a single
// zstd stream.
const fileMagic = "FMVOL1\n"

// Dtype tags the element type of a stored volume.
type Dtype uint8

const (
	DtypeInvalid Dtype = iota
	DtypeUint8
	DtypeUint16
	DtypeUint32
	DtypeUint64
	DtypeInt8
	DtypeInt16
	DtypeInt32
	DtypeInt64
)

// String returns the numpy-style name of the dtype.
func (d Dtype) String() string {
	switch d {
	case DtypeUint8:
		return "uint8"
	case DtypeUint16:
		return "uint16"
	case DtypeUint32:
		return "uint32"
	case DtypeUint64:
		return "uint64"
	case DtypeInt8:
		return "int8"
	case DtypeInt16:
		return "int16"
	case DtypeInt32:
		return "int32"
	case DtypeInt64:
		return "int64"
	default:
		return "invalid"
	}
}

// Width returns the element size in bytes.
func (d Dtype) Width() int {
	switch d {
	case DtypeUint8, DtypeInt8:
		return 1
	case DtypeUint16, DtypeInt16:
		return 2
	case DtypeUint32, DtypeInt32:
		return 4
	case DtypeUint64, DtypeInt64:
		return 8
	default:
		return 0
	}
}

// DtypeOf returns the tag for the volume element type T.
func DtypeOf[T constraints.Integer]() Dtype {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return DtypeUint8
	case uint16:
		return DtypeUint16
	case uint32:
		return DtypeUint32
	case uint64:
		return DtypeUint64
	case int8:
		return DtypeInt8
	case int16:
		return DtypeInt16
	case int32:
		return DtypeInt32
	case int64:
		return DtypeInt64
	default:
		return DtypeInvalid
	}
}

// Save writes v to w in the compressed volume format.
func Save[T constraints.Integer](w io.Writer, v *Volume[T]) error {
	dt := DtypeOf[T]()
	if dt == DtypeInvalid {
		return fmt.Errorf("save volume: unsupported element type")
	}

	if _, err := w.Write([]byte(fileMagic)); err != nil {
		return fmt.Errorf("save volume: writing magic: %w", err)
	}

	header := []any{uint8(dt), uint64(v.Sx), uint64(v.Sy), uint64(v.Sz)}
	for _, field := range header {
		if err := binary.Write(w, binary.LittleEndian, field); err != nil {
			return fmt.Errorf("save volume: writing header: %w", err)
		}
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("save volume: creating compressor: %w", err)
	}
	if err := binary.Write(zw, binary.LittleEndian, v.Data); err != nil {
		zw.Close()
		return fmt.Errorf("save volume: writing voxels: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("save volume: flushing compressor: %w", err)
	}
	return nil
}

// Load reads a volume from r. The concrete return type is *Volume[T] for the
// element type named by the returned Dtype; callers dispatch on the tag.
func Load(r io.Reader) (any, Dtype, error) {
	magic := make([]byte, len(fileMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return nil, DtypeInvalid, fmt.Errorf("load volume: reading magic: %w", err)
	}
	if string(magic) != fileMagic {
		return nil, DtypeInvalid, fmt.Errorf("load volume: bad magic %q", magic)
	}

	var dtByte uint8
	var dims [3]uint64
	if err := binary.Read(r, binary.LittleEndian, &dtByte); err != nil {
		return nil, DtypeInvalid, fmt.Errorf("load volume: reading dtype: %w", err)
	}
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return nil, DtypeInvalid, fmt.Errorf("load volume: reading dimensions: %w", err)
	}

	dt := Dtype(dtByte)
	if dt.Width() == 0 {
		return nil, DtypeInvalid, fmt.Errorf("load volume: unknown dtype tag %d", dtByte)
	}
	sx, sy, sz := int(dims[0]), int(dims[1]), int(dims[2])
	if sx < 1 || sy < 1 || sz < 1 {
		return nil, DtypeInvalid, fmt.Errorf("load volume: bad dimensions %dx%dx%d", sx, sy, sz)
	}

	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, DtypeInvalid, fmt.Errorf("load volume: creating decompressor: %w", err)
	}
	defer zr.Close()

	switch dt {
	case DtypeUint8:
		return loadTyped[uint8](zr, dt, sx, sy, sz)
	case DtypeUint16:
		return loadTyped[uint16](zr, dt, sx, sy, sz)
	case DtypeUint32:
		return loadTyped[uint32](zr, dt, sx, sy, sz)
	case DtypeUint64:
		return loadTyped[uint64](zr, dt, sx, sy, sz)
	case DtypeInt8:
		return loadTyped[int8](zr, dt, sx, sy, sz)
	case DtypeInt16:
		return loadTyped[int16](zr, dt, sx, sy, sz)
	case DtypeInt32:
		return loadTyped[int32](zr, dt, sx, sy, sz)
	default:
		return loadTyped[int64](zr, dt, sx, sy, sz)
	}
}

func loadTyped[T constraints.Integer](r io.Reader, dt Dtype, sx, sy, sz int) (any, Dtype, error) {
	v := New[T](sx, sy, sz)
	if err := binary.Read(r, binary.LittleEndian, v.Data); err != nil {
		return nil, DtypeInvalid, fmt.Errorf("load volume: reading voxels: %w", err)
	}
	return v, dt, nil
}

// SaveFile writes v to path in the compressed volume format.
func SaveFile[T constraints.Integer](path string, v *Volume[T]) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save volume: %w", err)
	}
	if err := Save(f, v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// LoadFile reads a volume from path.
func LoadFile(path string) (any, Dtype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, DtypeInvalid, fmt.Errorf("load volume: %w", err)
	}
	defer f.Close()
	return Load(f)
}
