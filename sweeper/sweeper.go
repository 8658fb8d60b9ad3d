// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package sweeper periodically forces garbage collection cycles so that the
finalizer backstops armed on neglected scoped resources actually run in
long-lived engine processes, and logs collection statistics for diagnostics.
*/
package sweeper

import (
	"runtime"
	"runtime/debug"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Sweeper drives the garbage collector on a fixed interval.
type Sweeper struct {
	interval time.Duration
	logger   *zap.Logger
}

// New creates a Sweeper from the given options and starts it.  The shutdown
// channel stops the sweep loop, and the WaitGroup is signaled when the loop
// has exited.
func New(o *Options, waitGroup *sync.WaitGroup, shutdown <-chan struct{}) *Sweeper {
	s := &Sweeper{
		interval: o.interval(),
		logger:   o.logger(),
	}

	s.Run(waitGroup, shutdown)
	return s
}

// Run spawns the sweep loop.  It is exported to satisfy the common
// runnable shape used by application bootstrapping, and always returns nil.
func (s *Sweeper) Run(waitGroup *sync.WaitGroup, shutdown <-chan struct{}) error {
	s.logger.Debug("sweeper started", zap.Duration("interval", s.interval))

	waitGroup.Add(1)
	go func() {
		ticker := time.NewTicker(s.interval)

		defer waitGroup.Done()
		defer s.logger.Debug("sweeper stopped")
		defer ticker.Stop()

		var stats debug.GCStats
		for {
			select {
			case <-shutdown:
				return
			case <-ticker.C:
				s.sweep(&stats)
			}
		}
	}()

	return nil
}

// sweep forces a collection cycle.  Finalizers queued by the cycle run on the
// runtime's finalizer goroutine, not here.
func (s *Sweeper) sweep(stats *debug.GCStats) {
	runtime.GC()
	debug.ReadGCStats(stats)
	s.logger.Debug("collection cycle",
		zap.Time("lastGC", stats.LastGC),
		zap.Int64("numGC", stats.NumGC),
		zap.Duration("pauseTotal", stats.PauseTotal),
	)
}
