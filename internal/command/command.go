// Package command provides the registry of named operations the front end
// can invoke, and the dispatcher that routes calls into it.
//
// Command names are declared as Name constants so that wiring code cannot
// misspell them. Raw names arriving from the front end are only resolved at
// dispatch time; anything outside the registry is a dispatch error surfaced
// to the caller, never a crash.
package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Name identifies a command.
type Name string

const (
	// Greet formats a greeting for the given name.
	Greet Name = "greet"
)

// Handler executes a command with its raw JSON argument object.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Common errors for registration and dispatch.
var (
	ErrDuplicateCommand = errors.New("command already registered")
	ErrNilHandler       = errors.New("nil command handler")
	ErrSealed           = errors.New("command registry is sealed")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid command arguments")
	ErrHandlerPanic     = errors.New("command handler panicked")
)

// DispatchError reports a failed command call back to the caller.
type DispatchError struct {
	Command string
	Err     error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("command %q: %v", e.Command, e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}

// Typed adapts a function taking a decoded argument struct into a Handler.
// The argument object is decoded with encoding/json; an empty or "null"
// payload leaves A at its zero value.
func Typed[A, R any](fn func(ctx context.Context, args A) (R, error)) Handler {
	return func(ctx context.Context, raw json.RawMessage) (any, error) {
		var args A
		if len(raw) > 0 && string(raw) != "null" {
			if err := json.Unmarshal(raw, &args); err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
			}
		}

		return fn(ctx, args)
	}
}
