// Package greet provides the greet command.
package greet

import (
	"context"
	"fmt"

	"github.com/mpyw/shellbridge/internal/command"
)

// Runtime is the name of the language runtime reported in greetings.
const Runtime = "Go"

// Args is the argument object of the greet command.
type Args struct {
	Name string `json:"name"`
}

// Greet returns the greeting for name. The name is substituted verbatim.
func Greet(name string) string {
	return fmt.Sprintf("Hello, %s! You've been greeted from %s!", name, Runtime)
}

// Register adds the greet command to reg.
func Register(reg *command.Registry) error {
	return reg.Register(command.Greet, command.Typed(func(_ context.Context, args Args) (string, error) {
		return Greet(args.Name), nil
	}))
}
