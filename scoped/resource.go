// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

package scoped

import (
	"runtime"
	"sync/atomic"

	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	stateActive   int32 = 0
	stateReleased int32 = 1
)

// Resource represents ownership of exactly one externally managed resource.
//
// Release performs the host-specific teardown exactly once.  Implementations
// must be idempotent: subsequent calls are no-ops that return nil, from any
// goroutine, including a finalizer goroutine.  Once released, a Resource
// never becomes active again.
type Resource interface {
	Release() error
}

// ReleaseFunc is a function type that implements Resource.  A ReleaseFunc
// produced by application code is not idempotent by itself; wrap it with New
// to get release-once semantics.
type ReleaseFunc func() error

func (f ReleaseFunc) Release() error { return f() }

// Nop is a Resource whose release does nothing.  It is useful as a
// placeholder member and as a default for optional resource slots.
var Nop Resource = ReleaseFunc(func() error { return nil })

// defaultLogger is the process-wide diagnostic channel for release failures
// that have no caller to report to, i.e. the finalizer path.
var defaultLogger atomic.Pointer[zap.Logger]

// SetLogger replaces the package diagnostic logger.  Passing nil restores
// the default.
func SetLogger(l *zap.Logger) {
	defaultLogger.Store(l)
}

// Logger returns the package diagnostic logger, defaulting to sallust.Default().
func Logger() *zap.Logger {
	if l := defaultLogger.Load(); l != nil {
		return l
	}

	return sallust.Default()
}

// Option represents a configurable aspect of a wrapped Resource.
type Option func(*resource)

// WithLabel assigns a label used in diagnostics and in bundle aggregate
// errors.  If unset, a generated ksuid is used.
func WithLabel(label string) Option {
	return func(r *resource) {
		if len(label) > 0 {
			r.label = label
		}
	}
}

// WithLogger overrides the package diagnostic logger for this resource.
// A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(r *resource) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFinalizer arms the garbage-collection backstop: if the wrapper becomes
// unreachable while still active, a finalizer logs a leak warning and then
// performs the release.  The backstop is disarmed by an explicit Release.
//
// The backstop is diagnostics, not a release strategy.  It runs on the
// runtime's finalizer goroutine, holds no locks, and must only be armed for
// resources whose teardown is safe in that context.
func WithFinalizer() Option {
	return func(r *resource) {
		r.backstop = true
	}
}

// New wraps a teardown function in a Resource honoring release-once
// semantics.  A nil release function results in a panic.
func New(release ReleaseFunc, o ...Option) Resource {
	if release == nil {
		panic("scoped: the release function cannot be nil")
	}

	r := &resource{
		label:   ksuid.New().String(),
		release: release,
		logger:  Logger(),
	}

	for _, f := range o {
		f(r)
	}

	if r.backstop {
		runtime.SetFinalizer(r, (*resource).finalize)
	}

	return r
}

type resource struct {
	state    int32
	label    string
	release  ReleaseFunc
	logger   *zap.Logger
	backstop bool
}

func (r *resource) Label() string { return r.label }

func (r *resource) Release() error {
	if !atomic.CompareAndSwapInt32(&r.state, stateActive, stateReleased) {
		return nil
	}

	if r.backstop {
		runtime.SetFinalizer(r, nil)
	}

	return r.release()
}

// finalize is the GC-driven backstop.  No caller is waiting on this path, so
// failures are routed to the diagnostic logger instead of being raised.
func (r *resource) finalize() {
	if atomic.LoadInt32(&r.state) != stateActive {
		return
	}

	r.logger.Warn("resource leaked, releasing from finalizer", zap.String("resource", r.label))
	if err := r.Release(); err != nil {
		r.logger.Error("finalizer release failed", zap.String("resource", r.label), zap.Error(err))
	}
}
