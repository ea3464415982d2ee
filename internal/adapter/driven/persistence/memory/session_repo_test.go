package memory

import (
	"context"
	"testing"

	"github.com/Wyydra/audiorooms/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_ListsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository()

	records, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, records)

	require.NoError(t, repo.Save(ctx, domain.SessionRecord{CallID: "room-1"}))
	require.NoError(t, repo.Save(ctx, domain.SessionRecord{CallID: "room-2"}))

	records, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, domain.CallID("room-2"), records[0].CallID)
	require.Equal(t, domain.CallID("room-1"), records[1].CallID)
}
