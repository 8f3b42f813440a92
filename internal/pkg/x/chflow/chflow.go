// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, so producers and consumers of asynchronous results
// stop blocking once their context is done.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done.
// It returns the value (zero value if canceled) and whether the receive succeeded;
// a closed channel also reports false.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch unless ctx is done first.
// It returns true if the value was delivered.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}
