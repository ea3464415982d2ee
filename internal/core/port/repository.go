package port

import (
	"context"

	"github.com/Wyydra/audiorooms/internal/core/domain"
)

type SessionRepository interface {
	Save(ctx context.Context, record domain.SessionRecord) error
	List(ctx context.Context) ([]domain.SessionRecord, error)
}
