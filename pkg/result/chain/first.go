package chain

import (
	"errors"

	"github.com/ib-77/result/pkg/result"
)

// AllAttemptsFailedMsg is the fixed cause message First reports when no
// producer succeeds. It is stable regardless of the underlying causes.
const AllAttemptsFailedMsg = "all attempts failed"

// First invokes producers strictly in order, each at most once, and
// returns the first successful Result immediately; producers after it are
// never invoked. If every producer fails, or there are none, the
// individual causes are discarded and a generic failure with
// AllAttemptsFailedMsg is returned.
func First[T any](producers ...func() result.Result[T]) result.Result[T] {
	for _, produce := range producers {
		if r := produce(); r.IsSuccess() {
			return r
		}
	}
	return result.FailMsg[T](AllAttemptsFailedMsg)
}

// FirstJoin behaves like First but keeps the diagnostics: on the
// all-failed path the underlying causes are aggregated with errors.Join,
// in producer order, recoverable through result.GetErrors.
func FirstJoin[T any](producers ...func() result.Result[T]) result.Result[T] {
	var errs []error
	for _, produce := range producers {
		r := produce()
		if r.IsSuccess() {
			return r
		}
		errs = append(errs, r.Err())
	}
	if len(errs) == 0 {
		return result.FailMsg[T](AllAttemptsFailedMsg)
	}
	return result.Fail[T](errors.Join(errs...))
}
