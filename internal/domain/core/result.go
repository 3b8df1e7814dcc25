package core

import "fmt"

// Result carries either a value or a human-readable failure message.
// Domain factories return it for expected validation outcomes instead of
// errors; system failures (storage, hashing) stay ordinary Go errors.
type Result[T any] struct {
	value T
	err   string
	ok    bool
}

// Unit is the value type for results that carry no payload.
type Unit struct{}

// Ok wraps a successful value.
func Ok[T any](value T) Result[T] {
	return Result[T]{value: value, ok: true}
}

// OkUnit is Ok for results without a payload.
func OkUnit() Result[Unit] {
	return Ok(Unit{})
}

// Fail wraps a failure message. The message must be non-empty; a failure
// without a reason is a programming error.
func Fail[T any](msg string) Result[T] {
	if msg == "" {
		panic("core: failure result requires a message")
	}
	return Result[T]{err: msg}
}

func (r Result[T]) IsOK() bool      { return r.ok }
func (r Result[T]) IsFailure() bool { return !r.ok }

// Value returns the carried value. Calling it on a failure is a programming
// error; callers must check IsOK first.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(fmt.Sprintf("core: Value called on failure result: %s", r.err))
	}
	return r.value
}

// Err returns the failure message, empty for success.
func (r Result[T]) Err() string {
	return r.err
}
