package app

import (
	"io"

	"github.com/spf13/pflag"
)

// Options holds runtime wiring options for building the app.
type Options struct {
	ConfigPath string         // optional YAML file
	Flags      *pflag.FlagSet // optional; set flags override config and env
	LogWriter  io.Writer      // optional; defaults to os.Stderr
	Rand       io.Reader      // optional; defaults to crypto/rand.Reader
}
