package ctxstore

import "sync"

// Scope is the unit of isolation: everything that runs with a context
// carrying it, including goroutines and timers started from that context.
// Reads fall through to the parent scope; writes always land here.
type Scope struct {
	id     uint64
	parent *Scope

	mu     sync.RWMutex
	values map[string]any
}

func newScope(id uint64, parent *Scope) *Scope {
	return &Scope{id: id, parent: parent}
}

// ID returns the scope identifier, unique within its namespace.
func (s *Scope) ID() uint64 {
	return s.id
}

// Parent returns the enclosing scope or nil for a top-level scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Depth reports how many scopes enclose s.
func (s *Scope) Depth() int {
	depth := 0
	for p := s.parent; p != nil; p = p.parent {
		depth++
	}
	return depth
}

func (s *Scope) set(key string, value any) {
	s.mu.Lock()
	if s.values == nil {
		s.values = make(map[string]any, 1)
	}
	s.values[key] = value
	s.mu.Unlock()
}

func (s *Scope) get(key string) (any, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		cur.mu.RLock()
		v, ok := cur.values[key]
		cur.mu.RUnlock()
		if ok {
			return v, true
		}
	}
	return nil, false
}
