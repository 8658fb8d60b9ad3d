/*
Package deepcopy provides a deep-copy helper that round-trips values through
serialization.  It copies exactly what the codec sees: exported fields,
following json tags.  Unexported state, functions, and channels do not
survive the trip.
*/
package deepcopy

import (
	"errors"

	"github.com/ugorji/go/codec"
)

var (
	// ErrNilValue is returned when either the source or destination is nil.
	ErrNilValue = errors.New("the source and destination cannot be nil")

	// copyHandle is the canonical codec.Handle used for the round trip
	copyHandle codec.Handle = &codec.MsgpackHandle{
		BasicHandle: codec.BasicHandle{
			TypeInfos: codec.NewTypeInfos([]string{"json"}),
		},
	}
)

// Copy deep-copies src into dst, which must be a non-nil pointer.  The copied
// value shares no mutable state with the source.
func Copy(dst, src interface{}) error {
	if dst == nil || src == nil {
		return ErrNilValue
	}

	var raw []byte
	if err := codec.NewEncoderBytes(&raw, copyHandle).Encode(src); err != nil {
		return err
	}

	return codec.NewDecoderBytes(raw, copyHandle).Decode(dst)
}

// Of returns a deep copy of the given value.
func Of[T any](src T) (T, error) {
	var dst T
	err := Copy(&dst, &src)
	return dst, err
}
