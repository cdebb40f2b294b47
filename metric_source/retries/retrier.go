package retries

import (
	"context"

	"github.com/cenkalti/backoff/v4"
)

// RetryableOperation is an action that can be retried after some time interval.
// Wrap errors which should not be retried into backoff.PermanentError.
type RetryableOperation[T any] interface {
	DoRetryableOperation() (T, error)
}

// OperationFunc adapts plain function to RetryableOperation.
type OperationFunc[T any] func() (T, error)

// DoRetryableOperation calls f.
func (f OperationFunc[T]) DoRetryableOperation() (T, error) {
	return f()
}

// Retrier retries the given operation with given backoff.
type Retrier[T any] interface {
	// Retry the given operation until it succeeds, returns backoff.PermanentError,
	// backoffPolicy returns backoff.Stop or ctx is done.
	Retry(ctx context.Context, op RetryableOperation[T], backoffPolicy backoff.BackOff) (T, error)
}

type standardRetrier[T any] struct{}

// NewStandardRetrier returns retrier which follows backoff policy provided by BackoffFactory.
func NewStandardRetrier[T any]() Retrier[T] {
	return standardRetrier[T]{}
}

func (r standardRetrier[T]) Retry(ctx context.Context, op RetryableOperation[T], backoffPolicy backoff.BackOff) (T, error) {
	return backoff.RetryWithData[T](op.DoRetryableOperation, backoff.WithContext(backoffPolicy, ctx))
}
