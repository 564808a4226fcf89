// Package result defines Result[T], an immutable two-variant value that
// carries either a produced value or the error that prevented one.
//
// A Result is built through Success, Fail, FailMsg or Of; the variant is
// fixed at construction and never changes. Combinators (see solo and
// chain) always produce a new Result instead of mutating. Each Result
// records a uuid identity and UTC creation time, so pass-through
// guarantees are observable.
//
// Key operations:
// - Success/Fail/FailMsg: construct a Result from a value, cause or message
// - Of: run an (T, error) operation and capture its error as a failure
// - FailFrom: carry a failure across a value-type change, cause untouched
// - GetOrElse/GetOrElseFn: extract the value with a mandatory fallback
// - Contains: success-and-equals predicate
package result
