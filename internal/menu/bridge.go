package menu

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/mpyw/shellbridge/internal/surface"
)

// Action is what the bridge does in response to a menu activation.
type Action int

const (
	// ActionIgnore means the item is not handled by this program.
	ActionIgnore Action = iota
	// ActionOpenDevtools opens the developer tools of the resolved surface.
	ActionOpenDevtools
	// ActionCloseDevtools closes the developer tools of the resolved surface.
	ActionCloseDevtools
	// ActionSkip means the item is handled but the surface could not be used.
	ActionSkip
)

func (a Action) String() string {
	switch a {
	case ActionIgnore:
		return "ignore"
	case ActionOpenDevtools:
		return "open-devtools"
	case ActionCloseDevtools:
		return "close-devtools"
	case ActionSkip:
		return "skip"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Decision is the outcome of Decide.
type Decision struct {
	Action  Action
	Surface surface.Surface // set for ActionOpenDevtools and ActionCloseDevtools
	Err     error           // set for ActionSkip
}

// Decide resolves what activating id should do without changing anything.
// The main surface is looked up and its devtools state queried afresh on
// every call.
func Decide(id string, lookup surface.Lookup) Decision {
	item, ok := ParseItemID(id)
	if !ok {
		return Decision{Action: ActionIgnore}
	}

	switch item {
	case ToggleDevtools:
		s, ok := lookup.Lookup(surface.Main)
		if !ok {
			return Decision{Action: ActionSkip, Err: fmt.Errorf("%w: %s", surface.ErrNotFound, surface.Main)}
		}

		open, err := s.DevtoolsOpen()
		if err != nil {
			return Decision{Action: ActionSkip, Err: fmt.Errorf("failed to query devtools state: %w", err)}
		}

		if open {
			return Decision{Action: ActionCloseDevtools, Surface: s}
		}

		return Decision{Action: ActionOpenDevtools, Surface: s}
	default:
		return Decision{Action: ActionIgnore}
	}
}

// Bridge applies menu activations to the surfaces resolved through Lookup.
type Bridge struct {
	lookup surface.Lookup
	logger zerolog.Logger
}

// NewBridge creates a Bridge. Failures are reported to logger.
func NewBridge(lookup surface.Lookup, logger zerolog.Logger) *Bridge {
	return &Bridge{
		lookup: lookup,
		logger: logger.With().Str("component", "menu").Logger(),
	}
}

// Handle processes the activation of the menu item id.
//
// Unknown ids are ignored and return nil. Any failure to resolve, query or
// toggle the main surface is logged and returned; the devtools state is left
// as it was.
func (b *Bridge) Handle(id string) error {
	d := Decide(id, b.lookup)
	log := b.logger.With().Str("item", id).Stringer("action", d.Action).Logger()

	var err error

	switch d.Action {
	case ActionIgnore:
		log.Debug().Msg("ignoring unhandled menu item")

		return nil
	case ActionSkip:
		err = d.Err
	case ActionOpenDevtools:
		if err = d.Surface.OpenDevtools(); err != nil {
			err = fmt.Errorf("failed to open devtools: %w", err)
		}
	case ActionCloseDevtools:
		if err = d.Surface.CloseDevtools(); err != nil {
			err = fmt.Errorf("failed to close devtools: %w", err)
		}
	}

	if err != nil {
		log.Error().Err(err).Msg("menu action failed")

		return err
	}

	log.Debug().Msg("menu action applied")

	return nil
}
