package xrand

import (
	"math/rand"
	"sync"
	"time"
)

// Sources is a registry handing out one independently seeded pseudorandom
// generator per logical worker.  Generators are never shared: each worker
// draws only from its own, so no draw contends on another worker's state.
//
// Goroutines carry no ambient identity, so workers identify themselves with
// a caller-assigned id, typically the worker's index in its pool.
type Sources struct {
	lock    sync.Mutex
	workers map[uint64]*rand.Rand
}

// New constructs an empty Sources registry.
func New() *Sources {
	return &Sources{
		workers: make(map[uint64]*rand.Rand),
	}
}

// Get returns the generator owned by the given logical worker, creating and
// seeding it on first access.  The registry lock covers only the lookup; the
// returned generator is unsynchronized and must be used solely by its owning
// worker.
func (s *Sources) Get(worker uint64) *rand.Rand {
	s.lock.Lock()
	defer s.lock.Unlock()

	g, ok := s.workers[worker]
	if !ok {
		g = rand.New(rand.NewSource(Seed(worker)))
		s.workers[worker] = g
	}

	return g
}

// Seed produces a seed for the given worker by mixing a high-resolution clock
// reading with the worker identity.  The mix keeps workers seeded within the
// same clock tick from receiving correlated sequences.
func Seed(worker uint64) int64 {
	x := uint64(time.Now().UnixNano()) ^ (worker+1)*0x9e3779b97f4a7c15

	// splitmix64 finalizer
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// defaultSources is the process-wide registry used by Get.
var defaultSources = New()

// Get returns the given worker's generator from the process-wide registry.
func Get(worker uint64) *rand.Rand {
	return defaultSources.Get(worker)
}
