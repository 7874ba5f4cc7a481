// Package surface tracks the display surfaces (windows) of the application
// by label.
//
// Callers resolve a surface on every use instead of holding on to it, so a
// window that was closed and recreated is never reached through a stale
// handle.
package surface

import (
	"errors"
	"sync"
)

// Label names a display surface.
type Label string

// Main is the label of the primary window.
const Main Label = "main"

// Common errors reported by surfaces.
var (
	ErrNotFound = errors.New("display surface not found")
	ErrNotReady = errors.New("display surface is not ready")
)

// Surface is a window whose developer tools panel can be queried and toggled.
// The open/closed state is owned by the surface itself.
type Surface interface {
	Label() Label
	DevtoolsOpen() (bool, error)
	OpenDevtools() error
	CloseDevtools() error
}

// Lookup resolves a surface by label.
type Lookup interface {
	Lookup(label Label) (Surface, bool)
}

// Manager is a concurrency-safe table of attached surfaces.
type Manager struct {
	mu       sync.RWMutex
	surfaces map[Label]Surface
}

// NewManager creates an empty Manager.
func NewManager() *Manager {
	return &Manager{surfaces: make(map[Label]Surface)}
}

// Attach registers s under its label, replacing any surface already attached
// under the same label.
func (m *Manager) Attach(s Surface) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.surfaces[s.Label()] = s
}

// Detach removes s if it is still the surface attached under its label.
// Returns false when another surface has replaced it or nothing is attached.
func (m *Manager) Detach(s Surface) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.surfaces[s.Label()]
	if !ok || current != s {
		return false
	}

	delete(m.surfaces, s.Label())

	return true
}

// Lookup returns the surface attached under label.
func (m *Manager) Lookup(label Label) (Surface, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.surfaces[label]

	return s, ok
}
