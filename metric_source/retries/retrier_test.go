package retries

import (
	"context"
	"errors"
	"testing"

	"github.com/cenkalti/backoff/v4"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStandardRetrier(t *testing.T) {
	var (
		maxRetriesCount    uint64 = 3
		testErr                   = errors.New("some test err")
		errInsidePermanent        = errors.New("test err inside permanent")
	)

	conf := Config{
		InitialInterval:     testInitialInterval,
		RandomizationFactor: testRandomizationFactor,
		Multiplier:          testMultiplier,
		MaxInterval:         testMaxInterval,
		MaxRetriesCount:     maxRetriesCount,
	}

	retrier := NewStandardRetrier[int]()
	newBackoff := Exponential(conf)

	Convey("Test retrier", t, func() {
		Convey("with successful operation", func() {
			calls := 0
			op := OperationFunc[int](func() (int, error) {
				calls++
				return 25, nil
			})

			res, err := retrier.Retry(context.Background(), op, newBackoff())

			So(err, ShouldBeNil)
			So(res, ShouldEqual, 25)
			So(calls, ShouldEqual, 1)
		})

		Convey("with successful operation after some retries", func() {
			calls := 0
			op := OperationFunc[int](func() (int, error) {
				calls++
				if calls < 3 {
					return 0, testErr
				}
				return 42, nil
			})

			res, err := retrier.Retry(context.Background(), op, newBackoff())

			So(err, ShouldBeNil)
			So(res, ShouldEqual, 42)
			So(calls, ShouldEqual, 3)
		})

		Convey("with permanent error", func() {
			calls := 0
			op := OperationFunc[int](func() (int, error) {
				calls++
				return 10, backoff.Permanent(errInsidePermanent)
			})

			res, err := retrier.Retry(context.Background(), op, newBackoff())

			So(err, ShouldResemble, errInsidePermanent)
			So(res, ShouldEqual, 10)
			So(calls, ShouldEqual, 1)
		})

		Convey("with operation failed on each retry", func() {
			calls := 0
			op := OperationFunc[int](func() (int, error) {
				calls++
				return 0, testErr
			})

			_, err := retrier.Retry(context.Background(), op, newBackoff())

			So(err, ShouldResemble, testErr)
			So(calls, ShouldEqual, maxRetriesCount+1)
		})

		Convey("with cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			calls := 0
			op := OperationFunc[int](func() (int, error) {
				calls++
				return 0, testErr
			})

			_, err := retrier.Retry(ctx, op, newBackoff())

			So(err, ShouldNotBeNil)
			So(calls, ShouldEqual, 1)
		})
	})
}
