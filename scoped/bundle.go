// SPDX-FileCopyrightText: 2026 Emberfall Interactive, LLC
// SPDX-License-Identifier: Apache-2.0

package scoped

import (
	"errors"
	"fmt"
	"sync/atomic"

	"go.uber.org/multierr"
)

var (
	// ErrBundleReleased is returned by Add when the bundle has already been
	// released.  A released bundle is inert.
	ErrBundleReleased = errors.New("the bundle has already been released")
)

// Bundle is an ordered collection of Resources released together.  Bundle
// itself implements Resource, so bundles nest.
//
// Add and Release are single-writer operations: concurrent mutation from
// multiple goroutines requires external synchronization.  The released flag
// itself is atomic, so a racing double Release still performs exactly one
// sweep.
type Bundle struct {
	state   int32
	members []Resource
}

// NewBundle constructs a Bundle with an optional set of initial members.
func NewBundle(members ...Resource) *Bundle {
	return &Bundle{
		members: append([]Resource{}, members...),
	}
}

// Add appends one or more members to this bundle.  Members are released in
// the order they were added.  Callers needing LIFO teardown must add in
// reverse order.
//
// Adding to a released bundle is a caller error: ErrBundleReleased is
// returned and no member is retained.
func (b *Bundle) Add(members ...Resource) error {
	if atomic.LoadInt32(&b.state) == stateReleased {
		return ErrBundleReleased
	}

	b.members = append(b.members, members...)
	return nil
}

// Len returns the current number of members.
func (b *Bundle) Len() int {
	return len(b.members)
}

// Release releases every member exactly once, in insertion order.  A member
// failure is recorded and does not stop the sweep; after all members have
// been attempted, the failures are returned as an aggregate identifying each
// failed member.  Releasing an already-released bundle returns nil.
func (b *Bundle) Release() error {
	if !atomic.CompareAndSwapInt32(&b.state, stateActive, stateReleased) {
		return nil
	}

	var err error
	for i, m := range b.members {
		if memberErr := m.Release(); memberErr != nil {
			err = multierr.Append(err, fmt.Errorf("releasing member %s: %w", memberName(i, m), memberErr))
		}
	}

	b.members = nil
	return err
}

// memberName produces the identifier used for a member in aggregate errors:
// the member's label when it has one, otherwise its insertion index.
func memberName(i int, m Resource) string {
	if labeled, ok := m.(interface{ Label() string }); ok {
		return labeled.Label()
	}

	return fmt.Sprintf("[%d]", i)
}
