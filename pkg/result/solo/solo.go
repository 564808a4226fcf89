package solo

import (
	"errors"

	"github.com/ib-77/result/pkg/result"
)

func Succeed[T any](input T) result.Result[T] {
	return result.Success(input)
}

func FailWith[T any](err error) result.Result[T] {
	return result.Fail[T](err)
}

func Validate[T any](input T, msg string,
	valid func(in T) bool) result.Result[T] {
	return AndValidate(Succeed(input), msg, valid)
}

func AndValidate[T any](input result.Result[T], msg string,
	valid func(in T) bool) result.Result[T] {

	if input.IsSuccess() {
		if valid(input.Result()) {
			return input
		}
		return result.FailMsg[T](msg)
	}
	return input
}

func ValidateAll[T any](
	input result.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(in result.Result[T]) result.Result[T]) result.Result[T] {

	var err error
	return Join(
		input,
		breakOnError,
		func(current result.Result[T]) result.Result[T] {

			if current.IsFailure() {
				e := result.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if result.IsNil(err) {
				return current
			}

			return result.Fail[T](err)
		},
		inputsF...,
	)
}

func Switch[In any, Out any](input result.Result[In],
	onSuccess func(r In) result.Result[Out]) result.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return result.FailFrom[In, Out](input)
}

// Check runs check as a validation gate: an inner success is discarded
// and the original input returned untouched; an inner failure replaces
// it. Only the failure branch crosses the Out -> In type boundary, so a
// Success[Out] can never leak back as Result[In].
func Check[In any, Out any](input result.Result[In],
	check func(r In) result.Result[Out]) result.Result[In] {

	if input.IsSuccess() {
		if inner := check(input.Result()); inner.IsFailure() {
			return result.FailFrom[Out, In](inner)
		}
		return input
	}
	return input
}

// Recover lets the caller replace a failure with a new Result.
// A success passes through untouched.
func Recover[T any](input result.Result[T],
	onFailure func(err error) result.Result[T]) result.Result[T] {

	if input.IsFailure() {
		return onFailure(input.Err())
	}
	return input
}

func Map[In any, Out any](input result.Result[In],
	onSuccess func(r In) Out) result.Result[Out] {

	if input.IsSuccess() {
		return result.Success(onSuccess(input.Result()))
	}
	return result.FailFrom[In, Out](input)
}

func Tee[T any](input result.Result[T],
	onSuccess func(r T)) result.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	}

	return input
}

func TeeFail[T any](input result.Result[T],
	onFailure func(err error)) result.Result[T] {

	if input.IsFailure() {
		onFailure(input.Err())
	}

	return input
}

func DoubleTee[T any](input result.Result[T],
	onSuccess func(r T),
	onError func(err error)) result.Result[T] {

	if input.IsSuccess() {
		onSuccess(input.Result())
	} else {
		onError(input.Err())
	}

	return input
}

func DoubleMap[In any, Out any](input result.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) result.Result[Out] {

	if input.IsSuccess() {
		return result.Success(onSuccess(input.Result()))
	}

	onError(input.Err())
	return result.FailFrom[In, Out](input)
}

func Try[In any, Out any](input result.Result[In],
	onTryExecute func(r In) (Out, error)) result.Result[Out] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Result())
		if err != nil {
			return result.Fail[Out](err)
		}

		return result.Success(out)
	}

	return result.FailFrom[In, Out](input)
}

func FailOnError[T any](input result.Result[T],
	maybeErr func(in T) error) result.Result[T] {
	if input.IsSuccess() {
		err := maybeErr(input.Result())
		if err != nil {
			return result.Fail[T](err)
		}
		return input
	}
	return input
}

func Finally[In, Out any](input result.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

func Join[T any](input result.Result[T],
	breakOnError bool, // exit on first error
	concat func(current result.Result[T]) result.Result[T],
	inputsF ...func(in result.Result[T]) result.Result[T]) result.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(inputsF[0](input))

	if finalResult.IsSuccess() || !breakOnError {
		for _, in := range inputsF[1:] {
			nextRes := concat(in(finalResult))
			if nextRes.IsFailure() && breakOnError {
				return nextRes
			}
			finalResult = nextRes
		}
	}
	return finalResult
}
