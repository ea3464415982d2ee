package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("STREAM_API_KEY", "key")
	t.Setenv("STREAM_USER_ID", "alice")
	t.Setenv("STREAM_USER_TOKEN", "token")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	require.Equal(t, "localhost:8080", cfg.Address())
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, DeviceBackendMemory, cfg.DeviceBackend)
	require.True(t, cfg.SimulationEnabled)
	require.False(t, cfg.CallNotify)
	require.False(t, cfg.WSAllowAnyOrigin)
	require.Equal(t, "alice", cfg.Credentials().UserID)
}

func TestLoad_MissingCredentials(t *testing.T) {
	t.Setenv("STREAM_API_KEY", "")
	t.Setenv("STREAM_USER_ID", "")
	t.Setenv("STREAM_USER_TOKEN", "")
	os.Unsetenv("STREAM_API_KEY")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "STREAM_API_KEY")
}

func TestLoad_EnvFile(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "9090")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7000\nCALL_NOTIFY=true\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("CALL_NOTIFY") })

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.True(t, cfg.CallNotify)
}

func TestLoad_RejectsUnknownDeviceBackend(t *testing.T) {
	setRequired(t)
	t.Setenv("DEVICE_BACKEND", "alsa")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.ErrorContains(t, err, "DEVICE_BACKEND")
}
