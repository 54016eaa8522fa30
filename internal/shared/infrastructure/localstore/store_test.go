package localstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_CreatesSchemaAndDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.db")

	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.DB().Exec(
		`INSERT INTO wipe_journal (company_id, step, completed_at) VALUES (?, ?, ?)`,
		"c1", "messages", "2026-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	var step string
	err = store.DB().QueryRow(
		`SELECT step FROM wipe_journal WHERE company_id = ?`, "c1",
	).Scan(&step)
	require.NoError(t, err)
	assert.Equal(t, "messages", step)
}

func TestOpen_EmptyPathRejected(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.Error(t, err)
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	store, err := Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	// Second open must not fail on existing schema.
	store, err = Open(context.Background(), path)
	require.NoError(t, err)
	defer store.Close()
}
