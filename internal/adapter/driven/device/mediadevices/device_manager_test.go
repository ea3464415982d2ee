package mediadevices

import (
	"testing"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/pion/mediadevices"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestAudioInputs(t *testing.T) {
	t.Run("should keep only audio inputs", func(t *testing.T) {
		got := audioInputs([]mediadevices.MediaDeviceInfo{
			{DeviceID: "cam-0", Kind: mediadevices.VideoInput, Label: "Webcam"},
			{DeviceID: "mic-0", Kind: mediadevices.AudioInput, Label: "Built-in"},
			{DeviceID: "spk-0", Kind: mediadevices.AudioOutput, Label: "Speakers"},
			{DeviceID: "mic-1", Kind: mediadevices.AudioInput, Label: "USB Headset"},
		})

		require.Equal(t, []domain.DeviceInfo{
			{ID: "mic-0", Name: "Built-in", IsDefault: true},
			{ID: "mic-1", Name: "USB Headset"},
		}, got)
	})

	t.Run("should return nothing without devices", func(t *testing.T) {
		require.Empty(t, audioInputs(nil))
	})
}

func TestDeviceManager(t *testing.T) {
	req := require.New(t)
	m := NewDeviceManager(zerolog.Nop())
	defer m.Close()

	for i, d := range m.EnumerateDevices() {
		req.NotEmpty(d.ID)
		req.Equal(i == 0, d.IsDefault)
	}

	req.NoError(m.SelectDevice(domain.DeviceInfo{ID: "mic-0", Name: "Built-in"}, false))
	req.Empty(m.tracks)
}
