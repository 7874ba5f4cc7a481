// Package output renders CLI results: labeled fields, JSON documents and
// colored notices on stderr.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mpyw/shellbridge/internal/cli/colors"
)

// Format selects how a command prints its result.
type Format string

const (
	// FormatText is the default human-readable text format.
	FormatText Format = "text"
	// FormatJSON outputs structured JSON.
	FormatJSON Format = "json"
)

// ParseFormat maps the --output flag value to a Format.
// Anything other than "json" falls back to FormatText.
func ParseFormat(s string) Format {
	if Format(s) == FormatJSON {
		return FormatJSON
	}

	return FormatText
}

// Writer prints "Label: value" records.
type Writer struct {
	w io.Writer
}

// New creates a new output writer.
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Field prints a labeled field.
func (o *Writer) Field(label, value string) {
	Printf(o.w, "%s %s\n", colors.FieldLabel(label+":"), value)
}

// Warning prints a yellow "Warning:" notice.
//
//nolint:goprintffuncname // reads as a sentence at call sites
func Warning(w io.Writer, format string, args ...any) {
	notice(w, colors.Warning, "Warning", format, args...)
}

// Hint prints a cyan "Hint:" notice suggesting a next step.
//
//nolint:goprintffuncname // reads as a sentence at call sites
func Hint(w io.Writer, format string, args ...any) {
	notice(w, colors.Info, "Hint", format, args...)
}

// Error prints a red "Error:" notice. Used by main for the final error.
//
//nolint:goprintffuncname // reads as a sentence at call sites
func Error(w io.Writer, format string, args ...any) {
	notice(w, colors.Error, "Error", format, args...)
}

func notice(w io.Writer, paint func(a ...any) string, kind, format string, args ...any) {
	Println(w, paint(kind+": "+fmt.Sprintf(format, args...)))
}

// JSON writes v as indented JSON followed by a newline.
// HTML characters are kept as-is so greetings round-trip verbatim.
func JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	return enc.Encode(v)
}

// Println writes msg followed by a newline, ignoring write errors.
func Println(w io.Writer, msg string) {
	_, _ = fmt.Fprintln(w, msg)
}

// Printf writes a formatted message, ignoring write errors.
func Printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
