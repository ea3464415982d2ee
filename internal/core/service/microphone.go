package service

import (
	"fmt"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/Wyydra/audiorooms/internal/core/port"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// MicrophoneSelector caches the enumerated microphones so they can be picked
// by index, the way a dropdown does.
type MicrophoneSelector struct {
	devices port.DeviceManager
	log     zerolog.Logger

	mu       sync.Mutex
	list     []domain.DeviceInfo
	selected int
}

func NewMicrophoneSelector(devices port.DeviceManager, log zerolog.Logger) *MicrophoneSelector {
	return &MicrophoneSelector{
		devices:  devices,
		log:      log.With().Str("component", "microphone").Logger(),
		selected: -1,
	}
}

// Refresh re-enumerates the microphones. The previous selection is dropped.
func (m *MicrophoneSelector) Refresh() []domain.DeviceInfo {
	devices := m.devices.EnumerateDevices()

	m.mu.Lock()
	m.list = append([]domain.DeviceInfo(nil), devices...)
	m.selected = -1
	m.mu.Unlock()

	m.log.Debug().Int("count", len(devices)).Msg("Microphones enumerated")
	return devices
}

func (m *MicrophoneSelector) Devices() []domain.DeviceInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.DeviceInfo(nil), m.list...)
}

func (m *MicrophoneSelector) Labels() []string {
	return lo.Map(m.Devices(), func(d domain.DeviceInfo, _ int) string {
		return d.Name
	})
}

// Select makes the microphone at index the active one and starts capturing.
func (m *MicrophoneSelector) Select(index int) error {
	m.mu.Lock()
	if index < 0 || index >= len(m.list) {
		n := len(m.list)
		m.mu.Unlock()
		return fmt.Errorf("%w: microphone index %d out of range [0,%d)", domain.ErrInvalidInput, index, n)
	}
	device := m.list[index]
	m.mu.Unlock()

	if err := m.devices.SelectDevice(device, true); err != nil {
		m.log.Error().Err(err).Str("device", device.Name).Msg("Failed to select microphone")
		return fmt.Errorf("select microphone %q: %w", device.Name, err)
	}

	m.mu.Lock()
	m.selected = index
	m.mu.Unlock()

	m.log.Info().Str("device", device.Name).Int("index", index).Msg("Microphone selected")
	return nil
}

// Selected returns the active microphone, if one was selected since the last
// Refresh.
func (m *MicrophoneSelector) Selected() (domain.DeviceInfo, int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected < 0 {
		return domain.DeviceInfo{}, -1, false
	}
	return m.list[m.selected], m.selected, true
}
