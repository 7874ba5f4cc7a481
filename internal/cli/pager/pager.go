// Package pager provides terminal pager functionality for long outputs.
package pager

import (
	"bytes"
	"io"
	"strings"

	"github.com/walles/moor/v2/pkg/moor"

	"github.com/mpyw/shellbridge/internal/cli/terminal"
)

// page is swapped out in tests.
//
//nolint:gochecknoglobals // Required for test mocking
var page = func(content string) error {
	return moor.PageFromString(content, moor.Options{})
}

// WithPagerWriter executes fn with pager support.
// Output goes straight to stdout when noPager is set, when stdout is not a
// terminal, or when the output fits on one screen. Otherwise it is shown
// through the moor pager.
func WithPagerWriter(stdout io.Writer, noPager bool, fn func(w io.Writer) error) error {
	if noPager {
		return fn(stdout)
	}

	height, ok := terminal.Height(stdout)
	if !ok {
		return fn(stdout)
	}

	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return err
	}

	if buf.Len() == 0 {
		return nil
	}

	if fits(buf.String(), height) {
		_, err := stdout.Write(buf.Bytes())

		return err
	}

	return page(buf.String())
}

// fits reports whether content fits in height rows, leaving one for the prompt.
func fits(content string, height int) bool {
	lines := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		lines++
	}

	return lines < height
}
