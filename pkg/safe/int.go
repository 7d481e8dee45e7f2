// Package safe narrows integers between the widths used on the wire, in SQL
// and in Go, failing instead of silently wrapping.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("value out of range")

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Uint32 converts v to uint32, e.g. a slice index into an output index.
func Uint32[T Integer](v T) (uint32, error) {
	if v < 0 || uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%d to uint32: %w", v, ErrOutOfRange)
	}
	return uint32(v), nil
}

// Uint64 converts v to uint64, rejecting negatives such as SQL integers read back.
func Uint64[T Integer](v T) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%d to uint64: %w", v, ErrOutOfRange)
	}
	return uint64(v), nil
}

// Int64 converts v to int64, the widest integer database/sql accepts.
func Int64[T Integer](v T) (int64, error) {
	if v > 0 && uint64(v) > math.MaxInt64 {
		return 0, fmt.Errorf("%d to int64: %w", v, ErrOutOfRange)
	}
	return int64(v), nil
}
