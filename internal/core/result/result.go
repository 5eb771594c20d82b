// Package result holds the success/failure value returned by use cases for
// expected validation failures. Faults travel as ordinary errors instead.
package result

// Void is the value carried by results that only signal success.
type Void = struct{}

type Result[T any] struct {
	value T
	err   error
}

func Ok[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Err builds a failed result. A nil err is a programming error.
func Err[T any](err error) Result[T] {
	if err == nil {
		panic("result: Err called with a nil error")
	}
	return Result[T]{err: err}
}

// OkVoid is shorthand for Ok(Void{}).
func OkVoid() Result[Void] {
	return Ok(Void{})
}

func (r Result[T]) IsOk() bool  { return r.err == nil }
func (r Result[T]) IsErr() bool { return r.err != nil }

// Value is the zero value of T on a failed result.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the failure, or nil on success.
func (r Result[T]) Err() error {
	return r.err
}
