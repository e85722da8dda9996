package sim

// Pool recycles entity instances so steady-state spawning allocates
// nothing. Acquire hands out a zeroed value by construction, so no
// field from a previous life can leak into the next one; there is no
// per-field reset list to keep in sync with the entity definition.
//
// An instance belongs to exactly one of the live world or the free
// list. Release detects a second release of the same instance and
// refuses it rather than corrupting the free list.
type Pool[T any] struct {
	free   []*T
	inPool map[*T]struct{}
}

// NewPool creates a pool with capacity preallocated for the free list.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		free:   make([]*T, 0, capacity),
		inPool: make(map[*T]struct{}, capacity),
	}
}

// Acquire returns a zeroed instance, reusing a free-list entry when one
// is available and allocating otherwise.
func (p *Pool[T]) Acquire() *T {
	n := len(p.free)
	if n == 0 {
		return new(T)
	}
	inst := p.free[n-1]
	p.free[n-1] = nil
	p.free = p.free[:n-1]
	delete(p.inPool, inst)

	var zero T
	*inst = zero
	return inst
}

// Release returns an instance to the free list. It reports false, and
// leaves the pool untouched, if the instance is already pooled: callers
// must not retain references past release, and a duplicate release is
// the loud symptom of exactly that bug.
func (p *Pool[T]) Release(inst *T) bool {
	if inst == nil {
		return false
	}
	if _, dup := p.inPool[inst]; dup {
		return false
	}
	p.inPool[inst] = struct{}{}
	p.free = append(p.free, inst)
	return true
}

// FreeLen returns the number of pooled instances.
func (p *Pool[T]) FreeLen() int {
	return len(p.free)
}
