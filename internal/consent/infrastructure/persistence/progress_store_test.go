package persistence

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/porticohq/portico/internal/consent/domain"
	"github.com/porticohq/portico/internal/shared/infrastructure/localstore"
)

func openTestStore(t *testing.T) *localstore.Store {
	t.Helper()
	store, err := localstore.Open(context.Background(), filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestLocalProgressStore_RoundTrip(t *testing.T) {
	store := NewLocalProgressStore(openTestStore(t))
	ctx := context.Background()
	userID := uuid.New()

	saved := domain.ReadProgress{Offset: 640, Viewport: 100, ContentHeight: 1000}
	require.NoError(t, store.Save(ctx, userID, "whatsapp", "v2", saved))

	got, err := store.Get(ctx, userID, "whatsapp", "v2")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestLocalProgressStore_UpsertKeepsLatest(t *testing.T) {
	store := NewLocalProgressStore(openTestStore(t))
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, store.Save(ctx, userID, "whatsapp", "v2", domain.ReadProgress{Offset: 100, Viewport: 100, ContentHeight: 1000}))
	require.NoError(t, store.Save(ctx, userID, "whatsapp", "v2", domain.ReadProgress{Offset: 900, Viewport: 100, ContentHeight: 1000}))

	got, err := store.Get(ctx, userID, "whatsapp", "v2")
	require.NoError(t, err)
	assert.Equal(t, 900.0, got.Offset)
}

func TestLocalProgressStore_MissingRowIsZeroProgress(t *testing.T) {
	store := NewLocalProgressStore(openTestStore(t))

	got, err := store.Get(context.Background(), uuid.New(), "whatsapp", "v2")
	require.NoError(t, err)
	assert.Equal(t, domain.ReadProgress{}, got)
	assert.False(t, got.Complete(24))
}
