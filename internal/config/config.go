// Package config loads cryptoshim settings from defaults, an optional YAML
// file, CRYPTOSHIM_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	stderrors "errors"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"cryptoshim/internal/aead"
	"cryptoshim/internal/digest"
	"cryptoshim/internal/encoding"
	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/logging"
	"cryptoshim/internal/signature"
)

// EnvPrefix prefixes every environment override, e.g. CRYPTOSHIM_LOG_LEVEL.
const EnvPrefix = "CRYPTOSHIM"

// Config is the resolved configuration.
type Config struct {
	// Digest is the default digest algorithm name.
	Digest string `mapstructure:"digest"`
	// AEAD is the default AEAD algorithm name.
	AEAD string `mapstructure:"aead"`
	// Scheme is the default signature scheme.
	Scheme signature.Scheme `mapstructure:"scheme"`
	// Encoding is the text encoding for binary output.
	Encoding encoding.Name `mapstructure:"encoding"`
	Log      LogConfig     `mapstructure:"log"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Defaults.
const (
	DefaultDigest   = "sha256"
	DefaultAEAD     = "chacha20-poly1305"
	DefaultScheme   = signature.Ed25519
	DefaultEncoding = encoding.Hex
	DefaultLogLevel = "info"
)

// flagKeys maps viper keys to the flag names bound to them.
var flagKeys = map[string]string{
	"digest":     "digest",
	"aead":       "aead",
	"scheme":     "scheme",
	"encoding":   "encoding",
	"log.level":  "log-level",
	"log.pretty": "log-pretty",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("digest", DefaultDigest)
	v.SetDefault("aead", DefaultAEAD)
	v.SetDefault("scheme", string(DefaultScheme))
	v.SetDefault("encoding", string(DefaultEncoding))
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.pretty", false)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

func decoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
}

// Load resolves the configuration. path names an optional YAML file; an
// empty path skips it, but a named file that cannot be read is an error.
// flags may be nil; only flags the user actually set override other sources.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, cerrors.Wrap(err, "failed to read config file")
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, cerrors.Wrapf(err, "failed to bind flag %q", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, decoderOption()); err != nil {
		return nil, cerrors.Wrap(err, "failed to unmarshal config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, cerrors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Digest:   DefaultDigest,
		AEAD:     DefaultAEAD,
		Scheme:   DefaultScheme,
		Encoding: DefaultEncoding,
		Log:      LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks every name against the adapter registries and reports all
// problems at once.
func Validate(cfg *Config) error {
	var errs []error
	if _, err := digest.Lookup(cfg.Digest); err != nil {
		errs = append(errs, err)
	}
	if _, err := aead.Lookup(cfg.AEAD); err != nil {
		errs = append(errs, err)
	}
	if _, err := signature.ParseScheme(string(cfg.Scheme)); err != nil {
		errs = append(errs, err)
	}
	if _, err := encoding.Parse(string(cfg.Encoding)); err != nil {
		errs = append(errs, err)
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, err)
	}
	return stderrors.Join(errs...)
}
