package negotiation

import "sync"

// Manager holds the process-wide threshold set. Reads take a snapshot;
// updates replace the whole struct under the lock so a reader never observes
// a half-applied configuration.
type Manager struct {
	mu         sync.RWMutex
	thresholds Thresholds
}

func NewManager(initial Thresholds) *Manager {
	return &Manager{thresholds: initial}
}

// Get returns the current threshold set by value.
func (m *Manager) Get() Thresholds {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.thresholds
}

// Replace swaps in a complete new threshold set.
func (m *Manager) Replace(t Thresholds) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.thresholds = t
}
