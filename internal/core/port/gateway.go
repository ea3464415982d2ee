package port

import (
	"context"

	"github.com/Wyydra/audiorooms/internal/core/domain"
)

// ViewGateway pushes view changes to connected UI clients.
type ViewGateway interface {
	BroadcastEvent(ctx context.Context, ev domain.ViewEvent) error
}
