// Package structs provides small generic serializable containers,
// following the teacher's utils/structs pattern: value types over a
// plain slice, with binary (de)serialization and value equality.
package structs

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Vector is a serializable slice of integers, used here as a
// word-packed GF(2) bit row in the matrix package.
type Vector[T constraints.Integer] []T

// BinarySize returns the number of bytes MarshalBinary will produce.
func (v Vector[T]) BinarySize() int {
	var zero T
	return 8 + len(v)*sizeofInt(zero)
}

func (v Vector[T]) MarshalBinary() ([]byte, error) {
	var zero T
	width := sizeofInt(zero)
	b := make([]byte, v.BinarySize())
	binary.LittleEndian.PutUint64(b, uint64(len(v)))
	off := 8
	for _, x := range v {
		putUint(b[off:off+width], uint64(x), width)
		off += width
	}
	return b, nil
}

func (v *Vector[T]) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("structs: truncated vector header")
	}
	n := int(binary.LittleEndian.Uint64(data))
	var zero T
	width := sizeofInt(zero)
	if len(data) < 8+n*width {
		return fmt.Errorf("structs: truncated vector body")
	}
	out := make(Vector[T], n)
	off := 8
	for i := 0; i < n; i++ {
		out[i] = T(getUint(data[off:off+width], width))
		off += width
	}
	*v = out
	return nil
}

// Matrix is a serializable slice of rows, each an independently sized
// Vector.
type Matrix[T constraints.Integer] []Vector[T]

func (m Matrix[T]) MarshalBinary() ([]byte, error) {
	var out []byte
	header := make([]byte, 8)
	binary.LittleEndian.PutUint64(header, uint64(len(m)))
	out = append(out, header...)
	for _, row := range m {
		rb, err := row.MarshalBinary()
		if err != nil {
			return nil, err
		}
		out = append(out, rb...)
	}
	return out, nil
}

func (m *Matrix[T]) UnmarshalBinary(data []byte) error {
	if len(data) < 8 {
		return fmt.Errorf("structs: truncated matrix header")
	}
	rows := int(binary.LittleEndian.Uint64(data))
	off := 8
	out := make(Matrix[T], rows)
	for i := 0; i < rows; i++ {
		var v Vector[T]
		if err := v.UnmarshalBinary(data[off:]); err != nil {
			return err
		}
		out[i] = v
		off += v.BinarySize()
	}
	*m = out
	return nil
}

func sizeofInt(v any) int {
	switch v.(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	case uint64:
		return 8
	case int8:
		return 1
	case int16:
		return 2
	case int32:
		return 4
	case int64:
		return 8
	case int:
		return 8
	default:
		return 8
	}
}

func putUint(b []byte, v uint64, width int) {
	switch width {
	case 1:
		b[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(v))
	default:
		binary.LittleEndian.PutUint64(b, v)
	}
}

func getUint(b []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	default:
		return binary.LittleEndian.Uint64(b)
	}
}
