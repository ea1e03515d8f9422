package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cryptoshim/internal/encoding"
	cerrors "cryptoshim/internal/errors"
	"cryptoshim/internal/signature"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func testFlags(t *testing.T) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("digest", DefaultDigest, "")
	fs.String("aead", DefaultAEAD, "")
	fs.String("scheme", string(DefaultScheme), "")
	fs.String("encoding", string(DefaultEncoding), "")
	fs.String("log-level", DefaultLogLevel, "")
	fs.Bool("log-pretty", false, "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
digest: sha512
aead: aes-256-gcm
scheme: P-384
encoding: base58
log:
  level: debug
  pretty: true
`)
	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "sha512", cfg.Digest)
	assert.Equal(t, "aes-256-gcm", cfg.AEAD)
	assert.Equal(t, signature.P384, cfg.Scheme)
	assert.Equal(t, encoding.Base58, cfg.Encoding)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "digest: sha384\nlog:\n  level: warn\n")
	t.Setenv("CRYPTOSHIM_DIGEST", "sha1")
	t.Setenv("CRYPTOSHIM_LOG_LEVEL", "error")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "sha1", cfg.Digest)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("CRYPTOSHIM_AEAD", "aes-128-gcm")
	t.Setenv("CRYPTOSHIM_ENCODING", "base64")

	fs := testFlags(t)
	require.NoError(t, fs.Parse([]string{"--aead", "aes-256-gcm", "--scheme", "p256"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)
	assert.Equal(t, "aes-256-gcm", cfg.AEAD)
	assert.Equal(t, signature.P256, cfg.Scheme)
	// Unset flags do not shadow the environment.
	assert.Equal(t, encoding.Base64, cfg.Encoding)
}

func TestLoad_Invalid(t *testing.T) {
	path := writeConfig(t, "digest: md5\naead: aes-192-gcm\n")
	_, err := Load(path, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, cerrors.ErrUnsupported)
	assert.Contains(t, err.Error(), "md5")
	assert.Contains(t, err.Error(), "aes-192-gcm")
}

func TestLoad_InvalidScheme(t *testing.T) {
	t.Setenv("CRYPTOSHIM_SCHEME", "rsa")
	_, err := Load("", nil)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(Default()))

	cfg := Default()
	cfg.Log.Level = "loud"
	cfg.Encoding = "base32"
	err := Validate(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, cerrors.ErrUnsupported)
	assert.Contains(t, err.Error(), "loud")
	assert.Contains(t, err.Error(), "base32")
}
