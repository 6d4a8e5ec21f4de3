// Package resource provides exclusive-ownership handles for acquired native
// resources and an explicit release list that tears them down in exact
// reverse acquisition order.
package resource

import (
	"sync"
)

// ReleaseFunc frees one resource. A returned error is reported but never
// stops the rest of the teardown.
type ReleaseFunc func() error

// Handle owns a single acquired resource.
type Handle struct {
	name     string
	release  ReleaseFunc
	released bool
}

// NewHandle wraps a release function under a name used in logs.
func NewHandle(name string, release ReleaseFunc) *Handle {
	return &Handle{name: name, release: release}
}

// Name returns the resource name.
func (h *Handle) Name() string {
	return h.name
}

// Released reports whether Release has already run.
func (h *Handle) Released() bool {
	return h.released
}

// Release frees the resource. Only the first call does anything.
func (h *Handle) Release() error {
	if h.released {
		return nil
	}
	h.released = true
	if h.release == nil {
		return nil
	}
	return h.release()
}

// Stack is an ordered release list. Entries are released last-in first-out.
type Stack struct {
	mu      sync.Mutex
	handles []*Handle
	onError func(name string, err error)
}

// NewStack creates an empty release list. onError, when non-nil, is called
// for every release that fails.
func NewStack(onError func(name string, err error)) *Stack {
	return &Stack{onError: onError}
}

// Push records a newly acquired resource and returns its handle.
func (s *Stack) Push(name string, release ReleaseFunc) *Handle {
	h := NewHandle(name, release)
	s.mu.Lock()
	s.handles = append(s.handles, h)
	s.mu.Unlock()
	return h
}

// Len returns the number of resources still owned by the stack.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Names returns resource names in acquisition order.
func (s *Stack) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, len(s.handles))
	for i, h := range s.handles {
		names[i] = h.name
	}
	return names
}

// ReleaseAll releases every resource in reverse acquisition order and
// empties the stack. Calling it again is a no-op. It returns the names in
// the order they were released.
func (s *Stack) ReleaseAll() []string {
	s.mu.Lock()
	handles := s.handles
	s.handles = nil
	s.mu.Unlock()

	order := make([]string, 0, len(handles))
	for i := len(handles) - 1; i >= 0; i-- {
		h := handles[i]
		if h.Released() {
			continue
		}
		if err := h.Release(); err != nil && s.onError != nil {
			s.onError(h.name, err)
		}
		order = append(order, h.name)
	}
	return order
}
