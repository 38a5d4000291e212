// Package chflow holds small channel helpers shared by the watchers.
package chflow

import "context"

// Receive reads one value from ch. ok is false when ch is closed or ctx is
// done first.
func Receive[T any](ctx context.Context, ch <-chan T) (value T, ok bool) {
	select {
	case <-ctx.Done():
		return value, false
	case value, ok = <-ch:
		return value, ok
	}
}

// Send delivers data on ch unless ctx is done first. It reports whether the
// value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Last drains ch until it is closed and returns the final value. ok is false
// when nothing was received.
func Last[T any](ch <-chan T) (last T, ok bool) {
	for v := range ch {
		last, ok = v, true
	}
	return last, ok
}
