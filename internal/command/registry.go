package command

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Registry maps command names to handlers.
//
// Registration happens during startup wiring. Once Seal is called the
// registry is read-only and safe for concurrent dispatch.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Name]Handler
	sealed   bool
	logger   zerolog.Logger
}

// NewRegistry creates an empty registry that logs dispatches to logger.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		handlers: make(map[Name]Handler),
		logger:   logger.With().Str("component", "command").Logger(),
	}
}

// Register adds a handler under name.
func (r *Registry) Register(name Name, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("%w: %s", ErrNilHandler, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("%w: cannot register %s", ErrSealed, name)
	}

	if _, ok := r.handlers[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}

	r.handlers[name] = handler

	return nil
}

// MustRegister is like Register but panics on error.
// Intended for static wiring where a failure is a programming error.
func (r *Registry) MustRegister(name Name, handler Handler) {
	if err := r.Register(name, handler); err != nil {
		panic(err)
	}
}

// Seal freezes the registry. Subsequent Register calls fail with ErrSealed.
func (r *Registry) Seal() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sealed
}

// Names returns the registered command names in sorted order.
func (r *Registry) Names() []Name {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.handlers)
	slices.Sort(names)

	return names
}

// Dispatch invokes the command registered under name.
//
// Every failure is returned as a *DispatchError:
//   - name not registered: wraps ErrUnknownCommand
//   - arguments not decodable: wraps ErrInvalidArguments
//   - handler panicked: wraps ErrHandlerPanic
//   - handler returned an error: wraps that error
func (r *Registry) Dispatch(ctx context.Context, name string, args json.RawMessage) (any, error) {
	callID := uuid.NewString()
	log := r.logger.With().Str("call_id", callID).Str("command", name).Logger()

	r.mu.RLock()
	handler, ok := r.handlers[Name(name)]
	r.mu.RUnlock()

	if !ok {
		log.Warn().Msg("dispatch to unregistered command")

		return nil, &DispatchError{Command: name, Err: ErrUnknownCommand}
	}

	log.Debug().RawJSON("args", lo.Ternary(len(args) > 0 && json.Valid(args), []byte(args), []byte("null"))).Msg("dispatching command")

	result, err := invoke(ctx, handler, args)
	if err != nil {
		log.Warn().Err(err).Msg("command failed")

		return nil, &DispatchError{Command: name, Err: err}
	}

	log.Debug().Msg("command completed")

	return result, nil
}

func invoke(ctx context.Context, handler Handler, args json.RawMessage) (result any, err error) {
	defer func() {
		if v := recover(); v != nil {
			result = nil
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, v)
		}
	}()

	return handler(ctx, args)
}
