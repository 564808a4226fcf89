package solo

import (
	"github.com/ib-77/result/pkg/result"
)

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Not negates a successful boolean. A failure passes through untouched.
func Not(input result.Result[bool]) result.Result[bool] {
	if input.IsSuccess() {
		return result.Success(!input.Result())
	}
	return input
}

// True asserts a successful boolean is true; Success(false) becomes a
// validation failure. Failures pass through untouched.
func True(input result.Result[bool]) result.Result[bool] {
	return AndValidate(input, "expected true", func(in bool) bool {
		return in
	})
}

// InRange reports whether input is a success whose value lies in
// [min, max]. Any failure yields false.
func InRange[T integer](input result.Result[T], min, max T) bool {
	return input.IsSuccess() && input.Result() >= min && input.Result() <= max
}
