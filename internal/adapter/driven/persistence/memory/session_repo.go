package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/Wyydra/audiorooms/internal/core/domain"
)

// SessionRepository keeps finished call sessions for the lifetime of the
// process.
type SessionRepository struct {
	mu      sync.Mutex
	records []domain.SessionRecord
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		records: make([]domain.SessionRecord, 0),
	}
}

func (r *SessionRepository) Save(ctx context.Context, record domain.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// List returns the records, most recent first.
func (r *SessionRepository) List(ctx context.Context) ([]domain.SessionRecord, error) {
	r.mu.Lock()
	out := slices.Clone(r.records)
	r.mu.Unlock()

	slices.Reverse(out)
	return out, nil
}
