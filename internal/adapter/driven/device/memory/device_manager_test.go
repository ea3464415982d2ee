package memory

import (
	"testing"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestDeviceManager(t *testing.T) {
	mic := domain.DeviceInfo{ID: "mic-1", Name: "Built-in", IsDefault: true}
	m := NewDeviceManager(mic, domain.DeviceInfo{ID: "mic-2", Name: "USB"})

	require.Len(t, m.EnumerateDevices(), 2)

	_, _, ok := m.Selected()
	require.False(t, ok)

	require.NoError(t, m.SelectDevice(mic, true))
	got, enabled, ok := m.Selected()
	require.True(t, ok)
	require.True(t, enabled)
	require.Equal(t, mic, got)

	err := m.SelectDevice(domain.DeviceInfo{ID: "nope"}, true)
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
