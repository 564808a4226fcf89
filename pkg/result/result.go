package result

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailMsg wraps a plain message into a generic failure cause.
func FailMsg[T any](msg string) Result[T] {
	return Fail[T](errors.New(msg))
}

// Of runs op eagerly, exactly once, and lifts its outcome: a nil error
// becomes Success, a non-nil error becomes Fail. The error is captured,
// never propagated further. Panics are not caught.
func Of[T any](op func() (T, error)) Result[T] {
	r, err := op()
	if err != nil {
		return Fail[T](err)
	}
	return Success(r)
}

// FailFrom reinterprets a failed Result at a new value type. The cause,
// id and creation time carry over untouched. The source must not be a
// success; a failure carries no value, so nothing of type In is lost.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// GetOrElse returns the carried value, or fallback on failure.
func (r Result[T]) GetOrElse(fallback T) T {
	if r.isSuccess {
		return r.result
	}
	return fallback
}

// GetOrElseFn returns the carried value, or the supplier's value on
// failure. The supplier runs only on failure; if it panics, the panic
// propagates (there is no further Result to wrap it in).
func (r Result[T]) GetOrElseFn(fallback func() T) T {
	if r.isSuccess {
		return r.result
	}
	return fallback()
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Contains reports whether r is a success carrying exactly v.
// Any failure yields false.
func Contains[T comparable](r Result[T], v T) bool {
	return r.isSuccess && r.result == v
}
