package ws

import "github.com/Wyydra/audiorooms/internal/core/domain"

type Client interface {
	ID() string
	SendEvent(ev domain.ViewEvent) error
	Close() error
}
