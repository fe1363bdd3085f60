// Package safe converts between integer widths, refusing values the target type
// cannot represent.
package safe

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned when a value does not fit the target type.
var ErrOutOfRange = errors.New("integer out of range")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func Uint32[T Integer](v T) (uint32, error) {
	u, err := unsigned(v, math.MaxUint32, "uint32")
	return uint32(u), err
}

func Uint64[T Integer](v T) (uint64, error) {
	return unsigned(v, math.MaxUint64, "uint64")
}

func Int[T Integer](v T) (int, error) {
	if v < 0 {
		if int64(v) < math.MinInt {
			return 0, fmt.Errorf("%w: %d does not fit int", ErrOutOfRange, v)
		}
		return int(v), nil
	}
	u, err := unsigned(v, math.MaxInt, "int")
	return int(u), err
}

// unsigned widens a non-negative v to uint64 and checks it against max.
func unsigned[T Integer](v T, max uint64, target string) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v, target)
	}
	if uint64(v) > max {
		return 0, fmt.Errorf("%w: %d does not fit %s", ErrOutOfRange, v, target)
	}
	return uint64(v), nil
}
