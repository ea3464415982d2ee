//go:build tools
// +build tools

// Package tools pins go-run tools (mockgen) as module dependencies.
package audiorooms

import (
	_ "go.uber.org/mock/mockgen"
)
