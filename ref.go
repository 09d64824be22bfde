package collapse

import "sync"

// StateRef is an indirection to a toolbar's current ToolbarState, set during
// construction and swappable later. The measurement engine reads through the
// ref on every pass, so swapping the state is observed without reconstructing
// the engine. Thread-safe.
type StateRef struct {
	mu    sync.RWMutex
	value *ToolbarState
}

// NewStateRef creates a ref pointing at state.
func NewStateRef(state *ToolbarState) *StateRef {
	return &StateRef{value: state}
}

// Set stores the state in this ref.
func (r *StateRef) Set(v *ToolbarState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

// Get returns the referenced state, or nil if not yet set.
func (r *StateRef) Get() *ToolbarState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value
}

// IsSet returns true if the ref has been set to a non-nil state.
func (r *StateRef) IsSet() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.value != nil
}
