package iwant

import (
	"time"

	"github.com/google/uuid"
)

// Result is a success/failure/cancel carrier. Only success is wanted.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FromPair converts a Go (value, error) pair. Context cancellation and
// deadline errors become Cancel, any other error becomes Fail.
func FromPair[T any](r T, err error) Result[T] {
	if err == nil {
		return Success(r)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

func (r Result[T]) IsWanted() bool {
	return r.isSuccess
}

// Unwrap returns the successful value or panics with a *NotWantedError
// carrying the failure.
func (r Result[T]) Unwrap() T {
	if !r.isSuccess {
		panic(&NotWantedError{Cause: r.err})
	}
	return r.result
}

// Get returns the value and whether the result is a success
func (r Result[T]) Get() (T, bool) {
	return r.result, r.isSuccess
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
	return !r.isSuccess && !r.isCancel
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// IsEmpty reports a zero Result that was never constructed
func (r Result[T]) IsEmpty() bool {
	return r.id == uuid.Nil
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
