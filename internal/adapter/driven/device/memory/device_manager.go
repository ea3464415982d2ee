package memory

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
)

// DeviceManager serves a fixed list of microphones.
type DeviceManager struct {
	devices []domain.DeviceInfo

	mu       sync.Mutex
	selected *domain.DeviceInfo
	enabled  bool
}

func NewDeviceManager(devices ...domain.DeviceInfo) *DeviceManager {
	return &DeviceManager{devices: devices}
}

func (m *DeviceManager) EnumerateDevices() []domain.DeviceInfo {
	return slices.Clone(m.devices)
}

func (m *DeviceManager) SelectDevice(device domain.DeviceInfo, enable bool) error {
	if !slices.ContainsFunc(m.devices, func(d domain.DeviceInfo) bool { return d.ID == device.ID }) {
		return fmt.Errorf("%w: unknown device %q", domain.ErrInvalidInput, device.ID)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.selected = &device
	m.enabled = enable
	return nil
}

// Selected returns the current device and whether capture is enabled.
func (m *DeviceManager) Selected() (domain.DeviceInfo, bool, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.selected == nil {
		return domain.DeviceInfo{}, false, false
	}
	return *m.selected, m.enabled, true
}
