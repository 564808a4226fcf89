package chain

import (
	"github.com/ib-77/result/pkg/result"
	"github.com/ib-77/result/pkg/result/solo"
)

// Chain wraps a result.Result to enable fluent chaining
type Chain[T any] struct {
	result result.Result[T]
}

// Start creates a new chain from a result.Result
func Start[T any](r result.Result[T]) Chain[T] {
	return Chain[T]{result: r}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](value T) Chain[T] {
	return Chain[T]{result: result.Success(value)}
}

// Result returns the underlying result.Result
func (c Chain[T]) Result() result.Result[T] {
	return c.result
}

// Then chains a function that returns result.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(T) result.Result[U]) Chain[U] {
	return Chain[U]{result: solo.Switch(c.result, onSuccess)}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{result: solo.Try(c.result, tryOnSuccess)}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{result: solo.Map(c.result, onSuccess)}
}

// Validate keeps a success only if valid accepts it; an invalid value
// turns into a failure carrying msg
func (c Chain[T]) Validate(msg string, valid func(T) bool) Chain[T] {
	return Chain[T]{result: solo.AndValidate(c.result, msg, valid)}
}

// Tee performs a side effect on success without changing the result
func (c Chain[T]) Tee(onSuccess func(T)) Chain[T] {
	return Chain[T]{result: solo.Tee(c.result, onSuccess)}
}

// TeeFail performs a side effect on failure without changing the result
func (c Chain[T]) TeeFail(onFailure func(error)) Chain[T] {
	return Chain[T]{result: solo.TeeFail(c.result, onFailure)}
}

// Recover replaces a failure with the Result supplied by onFailure
func (c Chain[T]) Recover(onFailure func(error) result.Result[T]) Chain[T] {
	return Chain[T]{result: solo.Recover(c.result, onFailure)}
}

// Or selects the first successful chain among c and alternatives; if none
// succeeded, c's own failure is kept
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.result.IsSuccess() {
		return c
	}
	for _, alt := range alternatives {
		if alt.result.IsSuccess() {
			return alt
		}
	}
	return c
}

// GetOrElse collapses the chain to the carried value or fallback
func (c Chain[T]) GetOrElse(fallback T) T {
	return c.result.GetOrElse(fallback)
}

// Finally collapses the chain into a final value via handlers
func Finally[T, U any](c Chain[T], onSuccess func(T) U, onFailure func(error) U) U {
	return solo.Finally(c.result, onSuccess, onFailure)
}
