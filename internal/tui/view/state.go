package view

import "github.com/Iron-Ham/pitwall/internal/tui/msg"

// LoadStatus is the lifecycle stage of one dashboard slice.
type LoadStatus int

const (
	StatusLoading LoadStatus = iota
	StatusLoaded
	StatusFailed
)

// String returns the status name.
func (s LoadStatus) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SliceState is the view-local state of one slice. Data is meaningful only
// when Loaded and Err only when Failed.
type SliceState[T any] struct {
	Status     LoadStatus
	Data       T
	Err        error
	Generation msg.Generation
}

// Restart returns a Loading state for the next generation. Any result still
// in flight for an earlier generation will be ignored by Resolve.
func (s SliceState[T]) Restart() SliceState[T] {
	return SliceState[T]{
		Status:     StatusLoading,
		Generation: s.Generation + 1,
	}
}

// Resolve applies a load result. It reports false, leaving the state
// unchanged, when gen is stale or the slice is not Loading.
func (s SliceState[T]) Resolve(gen msg.Generation, data T, err error) (SliceState[T], bool) {
	if gen != s.Generation || s.Status != StatusLoading {
		return s, false
	}
	if err != nil {
		return SliceState[T]{Status: StatusFailed, Err: err, Generation: gen}, true
	}
	return SliceState[T]{Status: StatusLoaded, Data: data, Generation: gen}, true
}

// IsLoading reports whether the slice is waiting for data.
func (s SliceState[T]) IsLoading() bool { return s.Status == StatusLoading }

// IsLoaded reports whether the slice holds data.
func (s SliceState[T]) IsLoaded() bool { return s.Status == StatusLoaded }

// IsFailed reports whether the last load failed.
func (s SliceState[T]) IsFailed() bool { return s.Status == StatusFailed }
