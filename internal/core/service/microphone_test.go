package service

import (
	"errors"
	"testing"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testMicrophones = []domain.DeviceInfo{
	{ID: "mic-0", Name: "Built-in", IsDefault: true},
	{ID: "mic-1", Name: "USB Headset"},
}

func TestMicrophoneSelector(t *testing.T) {
	t.Run("should select the device at the given index", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		devices := mocks.NewMockDeviceManager(ctrl)
		devices.EXPECT().EnumerateDevices().Return(testMicrophones)
		devices.EXPECT().SelectDevice(testMicrophones[1], true).Return(nil).Times(1)

		m := NewMicrophoneSelector(devices, zerolog.Nop())
		req.Len(m.Refresh(), 2)
		req.Equal([]string{"Built-in", "USB Headset"}, m.Labels())

		req.NoError(m.Select(1))
		dev, idx, ok := m.Selected()
		req.True(ok)
		req.Equal(1, idx)
		req.Equal(testMicrophones[1], dev)
	})

	t.Run("should reject an index out of range", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		devices := mocks.NewMockDeviceManager(ctrl)
		devices.EXPECT().EnumerateDevices().Return(testMicrophones)
		devices.EXPECT().SelectDevice(gomock.Any(), gomock.Any()).Times(0)

		m := NewMicrophoneSelector(devices, zerolog.Nop())
		m.Refresh()

		req.ErrorIs(m.Select(2), domain.ErrInvalidInput)
		req.ErrorIs(m.Select(-1), domain.ErrInvalidInput)
		_, _, ok := m.Selected()
		req.False(ok)
	})

	t.Run("should keep the previous selection when the device fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		devices := mocks.NewMockDeviceManager(ctrl)
		devices.EXPECT().EnumerateDevices().Return(testMicrophones)
		devices.EXPECT().SelectDevice(testMicrophones[0], true).Return(nil)
		devices.EXPECT().SelectDevice(testMicrophones[1], true).Return(errors.New("device busy"))

		m := NewMicrophoneSelector(devices, zerolog.Nop())
		m.Refresh()
		req.NoError(m.Select(0))
		req.Error(m.Select(1))

		_, idx, _ := m.Selected()
		req.Equal(0, idx)
	})

	t.Run("should drop the selection on refresh", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		devices := mocks.NewMockDeviceManager(ctrl)
		devices.EXPECT().EnumerateDevices().Return(testMicrophones).Times(2)
		devices.EXPECT().SelectDevice(testMicrophones[0], true).Return(nil)

		m := NewMicrophoneSelector(devices, zerolog.Nop())
		m.Refresh()
		req.NoError(m.Select(0))
		m.Refresh()

		_, _, ok := m.Selected()
		req.False(ok)
	})
}
