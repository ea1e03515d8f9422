// Package logging builds the zerolog logger used by the command layer.
//
// The crypto adapters never log. Everything logged here is metadata:
// algorithm names, sizes and outcomes.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"

	cerrors "cryptoshim/internal/errors"
)

// Options controls New.
type Options struct {
	// Level is a zerolog level name ("debug", "info", ...). Empty means info.
	Level string
	// Pretty selects the human-readable console writer.
	Pretty bool
}

// New returns a logger writing JSON (or console output when opts.Pretty) to
// w. Output passes through a FilteringWriter and every event carries the key
// material hook.
func New(w io.Writer, opts Options) (zerolog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	var out io.Writer = NewFilteringWriter(w)
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}
	}
	return zerolog.New(out).Level(level).Hook(NewKeyMaterialHook()).With().Timestamp().Logger(), nil
}

// ParseLevel maps a level name to a zerolog.Level. Empty means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, cerrors.Wrapf(cerrors.ErrUnsupported, "log level %q", name)
	}
	return level, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) && os.Getenv("NO_COLOR") == ""
}
