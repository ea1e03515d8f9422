package logging

import (
	"io"
	"regexp"

	"github.com/rs/zerolog"
)

// RedactedValue replaces key material in filtered output.
const RedactedValue = "[REDACTED]"

var keyMaterialPatterns = []*regexp.Regexp{
	// PEM private key blocks, header through footer.
	regexp.MustCompile(`-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?(-----END [A-Z ]*PRIVATE KEY-----|$)`),
	// Long hex runs: 32-byte seeds and scalars and up.
	regexp.MustCompile(`\b[0-9a-fA-F]{64,}\b`),
}

// ContainsKeyMaterial reports whether s looks like it carries key bytes.
func ContainsKeyMaterial(s string) bool {
	for _, p := range keyMaterialPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

// Redact replaces anything that looks like key material with RedactedValue.
func Redact(s string) string {
	for _, p := range keyMaterialPatterns {
		s = p.ReplaceAllString(s, RedactedValue)
	}
	return s
}

// KeyMaterialHook flags events whose message looks like key material.
// zerolog hooks cannot rewrite the message; wrap the writer with
// FilteringWriter to scrub it.
type KeyMaterialHook struct{}

// NewKeyMaterialHook returns the hook.
func NewKeyMaterialHook() KeyMaterialHook { return KeyMaterialHook{} }

func (KeyMaterialHook) Run(e *zerolog.Event, _ zerolog.Level, msg string) {
	if ContainsKeyMaterial(msg) {
		e.Bool("key_material_filtered", true)
	}
}

// FilteringWriter redacts key material from everything written through it.
type FilteringWriter struct {
	w io.Writer
}

// NewFilteringWriter wraps w.
func NewFilteringWriter(w io.Writer) *FilteringWriter {
	return &FilteringWriter{w: w}
}

// Write filters p and reports the original length.
func (fw *FilteringWriter) Write(p []byte) (int, error) {
	if _, err := fw.w.Write([]byte(Redact(string(p)))); err != nil {
		return 0, err
	}
	return len(p), nil
}
