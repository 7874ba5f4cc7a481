// Package surfacetest provides an in-memory surface.Surface for tests.
package surfacetest

import (
	"sync"

	"github.com/mpyw/shellbridge/internal/surface"
)

// Fake is an in-memory surface.Surface.
// QueryErr, OpenErr and CloseErr, when set, are returned by the matching
// method and leave the devtools state untouched.
type Fake struct {
	mu sync.Mutex

	label    surface.Label
	open     bool
	opened   int
	closed   int
	QueryErr error
	OpenErr  error
	CloseErr error
}

// NewFake creates a Fake with the given label and devtools closed.
func NewFake(label surface.Label) *Fake {
	return &Fake{label: label}
}

// Label implements surface.Surface.
func (f *Fake) Label() surface.Label {
	return f.label
}

// DevtoolsOpen implements surface.Surface.
func (f *Fake) DevtoolsOpen() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.QueryErr != nil {
		return false, f.QueryErr
	}

	return f.open, nil
}

// OpenDevtools implements surface.Surface.
func (f *Fake) OpenDevtools() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.OpenErr != nil {
		return f.OpenErr
	}

	f.open = true
	f.opened++

	return nil
}

// CloseDevtools implements surface.Surface.
func (f *Fake) CloseDevtools() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.CloseErr != nil {
		return f.CloseErr
	}

	f.open = false
	f.closed++

	return nil
}

// SetOpen changes the devtools state behind the bridge's back, the way a
// keyboard shortcut inside the page would.
func (f *Fake) SetOpen(open bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.open = open
}

// IsOpen reports the current devtools state without error injection.
func (f *Fake) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.open
}

// Calls returns how many times OpenDevtools and CloseDevtools succeeded.
func (f *Fake) Calls() (opened, closed int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.opened, f.closed
}
