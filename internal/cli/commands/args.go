package commands

import (
	"slices"
	"strings"

	cliinternal "github.com/mpyw/shellbridge/internal/cli/commands/internal"
)

// valueFlags are the global flags that consume the following argument.
//
//nolint:gochecknoglobals // fixed flag table
var valueFlags = []string{cliinternal.FlagConfig, cliinternal.FlagLogLevel, cliinternal.FlagLogFormat}

// WithDefaultCommand inserts name right after the leading global flags of
// args (args[0] is the program name). Whatever follows is handed to name, so
// a stray positional argument is never mistaken for another subcommand.
func WithDefaultCommand(args []string, name string) []string {
	if len(args) == 0 {
		return []string{name}
	}

	out := []string{args[0]}
	i := 1

	for i < len(args) {
		arg := args[i]
		if arg == "--" || !strings.HasPrefix(arg, "-") {
			break
		}

		out = append(out, arg)
		i++

		flag := strings.TrimLeft(arg, "-")
		if !strings.Contains(flag, "=") && slices.Contains(valueFlags, flag) && i < len(args) {
			out = append(out, args[i])
			i++
		}
	}

	out = append(out, name)

	return append(out, args[i:]...)
}
