package app

import (
	"os"

	"cryptoshim/internal/config"
	"cryptoshim/internal/logging"
)

// NewWire loads configuration and builds the App from opts.
func NewWire(opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath, opts.Flags)
	if err != nil {
		return nil, err
	}

	// Logs go to stderr so stdout stays clean for command output
	w := opts.LogWriter
	if w == nil {
		w = os.Stderr
	}
	logger, err := logging.New(w, logging.Options{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty})
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("digest", cfg.Digest).
		Str("aead", cfg.AEAD).
		Str("scheme", string(cfg.Scheme)).
		Str("encoding", string(cfg.Encoding)).
		Msg("configuration loaded")

	return New(cfg, logger, opts.Rand), nil
}
