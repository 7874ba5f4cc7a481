//go:build production || dev

package gui

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/mpyw/shellbridge/internal/surface"
)

// Events exchanged with the page about its developer tools panel.
const (
	// EventDevtoolsSet asks the page to show (true) or hide (false) the panel.
	EventDevtoolsSet = "devtools:set"
	// EventDevtoolsState is sent by the page whenever the panel changes,
	// including changes made from inside the page.
	EventDevtoolsState = "devtools:state"
)

// events is the part of the wails event bus the surface uses.
type events interface {
	Emit(name string, data ...any)
	On(name string, callback func(data ...any)) func()
}

// webviewSurface is a surface.Surface backed by the main webview.
//
// The runtime offers no devtools API, so the panel lives in the page and
// the page reports its state. The surface mirrors the last report and never
// assumes a request succeeded.
type webviewSurface struct {
	label  surface.Label
	events events
	logger zerolog.Logger

	mu     sync.Mutex
	ready  bool
	open   bool
	cancel func()
}

func newWebviewSurface(label surface.Label, ev events, logger zerolog.Logger) *webviewSurface {
	s := &webviewSurface{
		label:  label,
		events: ev,
		logger: logger.With().Str("surface", string(label)).Logger(),
	}
	s.cancel = ev.On(EventDevtoolsState, s.onState)

	return s
}

func (s *webviewSurface) Label() surface.Label {
	return s.label
}

func (s *webviewSurface) DevtoolsOpen() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return false, surface.ErrNotReady
	}

	return s.open, nil
}

func (s *webviewSurface) OpenDevtools() error {
	return s.set(true)
}

func (s *webviewSurface) CloseDevtools() error {
	return s.set(false)
}

// set asks the page to change the panel. The mirrored state only changes
// when the page answers with EventDevtoolsState, so a request lost during a
// reload leaves the last confirmed state in place.
func (s *webviewSurface) set(open bool) error {
	s.mu.Lock()
	ready := s.ready
	s.mu.Unlock()

	if !ready {
		return surface.ErrNotReady
	}

	s.events.Emit(EventDevtoolsSet, open)

	return nil
}

// markReady is called for every freshly loaded document, whose panel starts
// closed.
func (s *webviewSurface) markReady() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = true
	s.open = false
}

func (s *webviewSurface) onState(data ...any) {
	if len(data) == 0 {
		s.logger.Warn().Msg("devtools state report without payload")

		return
	}

	open, ok := data[0].(bool)
	if !ok {
		s.logger.Warn().Interface("payload", data[0]).Msg("devtools state report is not a boolean")

		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = true
	s.open = open
}

func (s *webviewSurface) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = false

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
