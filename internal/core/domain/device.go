package domain

// DeviceInfo describes a capture device as reported by the device manager.
type DeviceInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsDefault bool   `json:"is_default"`
}
