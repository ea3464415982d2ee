//go:generate go run go.uber.org/mock/mockgen -source=device.go -destination=../../mocks/mock_device_manager.go -package=mocks
package port

import "github.com/Wyydra/audiorooms/internal/core/domain"

// DeviceManager enumerates and selects the local microphone.
type DeviceManager interface {
	EnumerateDevices() []domain.DeviceInfo
	// SelectDevice makes device the capture source. With enable set, capture
	// starts immediately.
	SelectDevice(device domain.DeviceInfo, enable bool) error
}
