// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

package scoped

import (
	"github.com/go-kit/kit/metrics/discard"
)

// Adder is the counter behavior required by resource instrumentation.  It is
// implemented by go-kit counters and gauges.
type Adder interface {
	Add(float64)
}

// InstrumentOption represents a configurable option for instrumenting a Resource.
type InstrumentOption func(*instrumentedResource)

// WithReleases establishes a metric counting release invocations that
// performed a teardown without error.  If a nil counter is supplied, counts
// are discarded.
func WithReleases(a Adder) InstrumentOption {
	return func(i *instrumentedResource) {
		if a != nil {
			i.releases = a
		} else {
			i.releases = discard.NewCounter()
		}
	}
}

// WithReleaseErrors establishes a metric counting release invocations that
// reported an error.  If a nil counter is supplied, counts are discarded.
func WithReleaseErrors(a Adder) InstrumentOption {
	return func(i *instrumentedResource) {
		if a != nil {
			i.errors = a
		} else {
			i.errors = discard.NewCounter()
		}
	}
}

// Instrument decorates an existing Resource with a set of options.  The
// returned Resource delegates to the original, so release-once semantics are
// those of the decorated instance.
func Instrument(r Resource, o ...InstrumentOption) Resource {
	ir := &instrumentedResource{
		Resource: r,
		releases: discard.NewCounter(),
		errors:   discard.NewCounter(),
	}

	for _, f := range o {
		f(ir)
	}

	return ir
}

type instrumentedResource struct {
	Resource
	releases Adder
	errors   Adder
}

func (ir *instrumentedResource) Release() (err error) {
	err = ir.Resource.Release()
	if err != nil {
		ir.errors.Add(1.0)
	} else {
		ir.releases.Add(1.0)
	}

	return
}
