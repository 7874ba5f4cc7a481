//go:build production || dev

package main

import (
	"context"
	"log"
	"os"

	"github.com/mpyw/shellbridge/internal/cli/commands"
)

// main launches the desktop shell directly. Global flags such as --config
// are still honored.
func main() {
	args := commands.WithDefaultCommand(os.Args, "gui")

	if err := commands.App.Run(context.Background(), args); err != nil {
		log.Fatal("Error: ", err.Error())
	}
}
