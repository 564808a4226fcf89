// Package chain provides ordered-alternative selection and a fluent
// wrapper around Result[T] built on solo primitives.
//
// First tries a sequence of producers strictly in order and returns the
// first success, never invoking the producers after it; FirstJoin is the
// diagnostic variant that aggregates the causes when everything failed.
//
// Chain[T] composes functions like Switch, Map, Try, Tee, and Finally
// behind a convenient method set. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - First/FirstJoin: try producers until one succeeds
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: switch to a new Result[U] via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value (T -> U)
// - Validate/Tee/TeeFail/Recover: gate, observe or repair the result
// - Or: pick the first successful chain among alternatives
// - Finally/GetOrElse: collapse the chain into a final value
package chain
