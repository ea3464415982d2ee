// Package mediadevices exposes the host microphones through pion/mediadevices.
// Real capture needs the microphone driver, which is only linked on linux
// builds with cgo.
package mediadevices

import (
	"fmt"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/pion/mediadevices"
	"github.com/pion/mediadevices/pkg/prop"
	"github.com/pion/webrtc/v4"
	"github.com/rs/zerolog"
)

type DeviceManager struct {
	log zerolog.Logger

	mu     sync.Mutex
	tracks []mediadevices.Track
}

func NewDeviceManager(log zerolog.Logger) *DeviceManager {
	return &DeviceManager{log: log.With().Str("component", "mediadevices").Logger()}
}

func (m *DeviceManager) EnumerateDevices() []domain.DeviceInfo {
	return audioInputs(mediadevices.EnumerateDevices())
}

// audioInputs keeps the capture devices that record audio. The first one is
// reported as the default.
func audioInputs(devices []mediadevices.MediaDeviceInfo) []domain.DeviceInfo {
	var out []domain.DeviceInfo
	for _, d := range devices {
		if d.Kind != mediadevices.AudioInput {
			continue
		}
		out = append(out, domain.DeviceInfo{
			ID:        d.DeviceID,
			Name:      d.Label,
			IsDefault: len(out) == 0,
		})
	}
	return out
}

// SelectDevice stops the current capture and, with enable set, opens device.
func (m *DeviceManager) SelectDevice(device domain.DeviceInfo, enable bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopLocked()
	if !enable {
		return nil
	}

	stream, err := mediadevices.GetUserMedia(mediadevices.MediaStreamConstraints{
		Audio: func(c *mediadevices.MediaTrackConstraints) {
			c.DeviceID = prop.String(device.ID)
		},
	})
	if err != nil {
		return fmt.Errorf("capture %q: %w", device.Name, err)
	}

	for _, track := range stream.GetTracks() {
		if track.Kind() != webrtc.RTPCodecTypeAudio {
			_ = track.Close()
			continue
		}
		track.OnEnded(func(err error) {
			if err != nil {
				m.log.Warn().Err(err).Str("device", device.Name).Msg("Microphone track ended")
			}
		})
		m.tracks = append(m.tracks, track)
	}
	m.log.Info().Str("device", device.Name).Int("tracks", len(m.tracks)).Msg("Microphone capture started")
	return nil
}

// Close stops any running capture.
func (m *DeviceManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stopLocked()
}

func (m *DeviceManager) stopLocked() {
	for _, track := range m.tracks {
		if err := track.Close(); err != nil {
			m.log.Debug().Err(err).Msg("Closing microphone track")
		}
	}
	m.tracks = nil
}
