package internal

import (
	"runtime"
	"sync"
	"weak"
)

type propertyMap map[any]*DepSet

// Store maps targets to their per-key subscriber sets.
//
// The sets hang off the target itself; the store only indexes targets weakly. A target, its sets, the
// effects in them and whatever those effects capture form a cycle the store does not root, so an object
// nobody else references is collected along with the effects that read it.
type Store struct {
	// guards targets, eviction runs on the runtime's cleanup goroutine
	mu sync.Mutex

	targets map[weak.Pointer[Target]]struct{}
}

func NewStore() *Store {
	return &Store{
		targets: make(map[weak.Pointer[Target]]struct{}),
	}
}

// DepSet returns the subscriber set for (target, key), creating it when missing.
func (s *Store) DepSet(target *Target, key any) *DepSet {
	if target.props == nil {
		target.props = make(propertyMap)
		s.index(target)
	}

	dep, ok := target.props[key]
	if !ok {
		dep = NewDepSet()
		target.props[key] = dep
	}

	return dep
}

// Lookup returns the subscriber set for (target, key) or nil if nothing ever tracked it.
func (s *Store) Lookup(target *Target, key any) *DepSet {
	return target.props[key]
}

// Len returns the number of live targets the store holds subscriber sets for.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.targets)
}

func (s *Store) index(target *Target) {
	s.mu.Lock()
	defer s.mu.Unlock()

	wp := weak.Make(target)
	s.targets[wp] = struct{}{}
	runtime.AddCleanup(target, s.evict, wp)
}

func (s *Store) evict(wp weak.Pointer[Target]) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.targets, wp)
}
