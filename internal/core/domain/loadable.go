package domain

// LoadState is the state of a remote read.
type LoadState string

const (
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// Loadable holds the outcome of a remote read. Data is only meaningful
// when State is StateReady and Err only when State is StateFailed.
type Loadable[T any] struct {
	State LoadState
	Data  T
	Err   error
}

// Loading returns a Loadable that has not resolved yet.
func Loading[T any]() Loadable[T] {
	return Loadable[T]{State: StateLoading}
}

// Ready returns a resolved Loadable holding v.
func Ready[T any](v T) Loadable[T] {
	return Loadable[T]{State: StateReady, Data: v}
}

// Failed returns a Loadable whose read failed with err.
func Failed[T any](err error) Loadable[T] {
	return Loadable[T]{State: StateFailed, Err: err}
}

// Ready reports whether the data is available.
func (l Loadable[T]) Ready() bool { return l.State == StateReady }

// Status is the type-erased view of a Loadable used to join sources of
// different types.
type Status struct {
	State LoadState
	Err   error
}

// Status returns the state and error of l.
func (l Loadable[T]) Status() Status {
	return Status{State: l.State, Err: l.Err}
}

// Join combines source states: any failure wins, then any pending source,
// otherwise everything is ready. The first failure in argument order is
// reported.
func Join(states ...Status) Status {
	loading := false
	for _, s := range states {
		switch s.State {
		case StateFailed:
			return s
		case StateLoading, "":
			loading = true
		}
	}
	if loading {
		return Status{State: StateLoading}
	}
	return Status{State: StateReady}
}
