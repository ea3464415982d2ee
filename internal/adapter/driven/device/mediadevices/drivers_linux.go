//go:build linux && cgo

package mediadevices

import (
	_ "github.com/pion/mediadevices/pkg/driver/microphone"
)
