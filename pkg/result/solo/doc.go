// Package solo contains single-value, synchronous primitives that operate
// on result.Result[T]. These functions form the core building blocks for
// error-aware pipelines; every callback runs exactly once, eagerly, on the
// caller's goroutine, and a result in the wrong variant for a combinator
// passes through untouched (same id, same cause).
//
// Highlights:
// - Succeed/FailWith: lift a bare value or cause into a Result
// - Validate/AndValidate/ValidateAll: validation producing failure on invalid input
// - Switch: move from Result[In] to Result[Out]
// - Check/FailOnError: validation gates that can only turn success into failure
// - Recover: replace a failure via caller-supplied logic
// - Map/DoubleMap: transform successful values (with optional error map)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeFail/DoubleTee: side-effect helpers
// - Not/True/InRange: boolean and range adapters
// - Finally: reduce to a concrete value via success/error handlers
package solo
