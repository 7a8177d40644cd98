package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hdwallet-core/pkg/address"
	"hdwallet-core/pkg/errno"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hdwallet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(nil, "")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "secp256k1", cfg.Derivation.Curve)
	assert.Equal(t, "m", cfg.Derivation.Path)
	assert.Equal(t, "mainnet", cfg.Derivation.Network)
	assert.Equal(t, "text", cfg.Output.Format)
}

func TestFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
app:
  env: production
derivation:
  curve: ed25519
  path: "m/44'/501'/0'"
output:
  format: json
`)
	t.Setenv("HDWALLET_DERIVATION_NETWORK", "testnet3")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "ed25519", cfg.Derivation.Curve)
	assert.Equal(t, "m/44'/501'/0'", cfg.Derivation.Path)
	assert.Equal(t, "testnet3", cfg.Derivation.Network)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"curve", "derivation:\n  curve: ed448\n", errno.ErrUnknownCurve},
		{"path", "derivation:\n  path: m//1\n", errno.ErrMalformedPath},
		{"network", "derivation:\n  network: dogecoin\n", errno.ErrBadInput},
		{"format", "output:\n  format: xml\n", errno.ErrBadInput},
		{"env", "app:\n  env: staging\n", errno.ErrBadInput},
		{"log level", "app:\n  log_level: loud\n", errno.ErrBadInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(New(), writeConfig(t, tt.body))
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNetworks(t *testing.T) {
	for _, name := range []string{"mainnet", "testnet3", "testnet", "regtest", "signet"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := Load(New(), writeConfig(t, "derivation:\n  network: "+name+"\n"))
			require.NoError(t, err)

			_, err = address.NetworkParams(cfg.Derivation.Network)
			assert.NoError(t, err)
		})
	}
}

func TestMissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
