// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

package lazy

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrNilInitializer is returned by New when no initializer is supplied.
	ErrNilInitializer = errors.New("the initializer cannot be nil")
)

// Lazy is a memoized value of type T.  Instances of this type must be created
// via New and shared by pointer.  The zero value is not usable.
//
// Consumers share the Lazy itself, not the computed value: one Lazy per
// distinct computation.
type Lazy[T any] struct {
	created     atomic.Bool
	lock        sync.Mutex
	initializer func() (T, error)
	value       T
}

// New constructs a Lazy around the given initializer.  The initializer is not
// invoked by this function.  ErrNilInitializer is returned if the initializer
// is nil.
func New[T any](initializer func() (T, error)) (*Lazy[T], error) {
	if initializer == nil {
		return nil, ErrNilInitializer
	}

	return &Lazy[T]{initializer: initializer}, nil
}

// Value returns the memoized value, running the initializer if no value has
// been produced yet.  The first caller to reach the critical section runs the
// initializer; concurrent callers block until that run finishes and then
// observe the same value.  After the first successful run, calls return on an
// uncontended fast path without acquiring the lock.
//
// An initializer error is returned to the caller that ran it and does not
// memoize anything: a subsequent Value call runs the initializer again.
func (l *Lazy[T]) Value() (T, error) {
	if l.created.Load() {
		return l.value, nil
	}

	l.lock.Lock()
	defer l.lock.Unlock()

	if l.created.Load() {
		return l.value, nil
	}

	value, err := l.initializer()
	if err != nil {
		var zero T
		return zero, err
	}

	l.value = value

	// the value write must be visible before the flag flips, since fast-path
	// readers never take the lock
	l.created.Store(true)
	l.initializer = nil
	return value, nil
}

// IsValueCreated returns whether a value has been produced.  It never blocks.
// A false result can race with an in-flight first evaluation and does not
// guarantee that evaluation has not started.
func (l *Lazy[T]) IsValueCreated() bool {
	return l.created.Load()
}
