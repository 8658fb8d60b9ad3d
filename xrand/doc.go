/*
Package xrand partitions pseudorandom state across logical workers.

A single shared math/rand generator serializes every draw behind a lock and
makes simulation runs sensitive to scheduling.  This package instead hands
each logical worker its own generator, seeded so that workers started within
the same clock tick still diverge.  This is a partitioning strategy, not a
locking strategy: no generator state is ever shared.
*/
package xrand
