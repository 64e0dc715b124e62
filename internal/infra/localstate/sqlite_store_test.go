package localstate

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"companion/internal/domain/entity"
	"companion/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqliteStore {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := newStore(filepath.Join(t.TempDir(), "companion.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.close() })

	return store
}

func TestSQLiteStore_LoadMissingKey(t *testing.T) {
	store := newTestStore(t)

	var dest string
	assert.False(t, store.Load("companion.missing", &dest))
	assert.Empty(t, dest)
}

func TestSQLiteStore_StoreAndLoad(t *testing.T) {
	store := newTestStore(t)

	profile := entity.Profile{Name: "Alex", Email: "alex@example.com"}
	store.Store(service.StateKeyProfile, profile)

	var loaded entity.Profile
	require.True(t, store.Load(service.StateKeyProfile, &loaded))
	assert.Equal(t, profile, loaded)
}

func TestSQLiteStore_OverwritesExistingKey(t *testing.T) {
	store := newTestStore(t)

	store.Store(service.StateKeyNotify, true)
	store.Store(service.StateKeyNotify, false)

	var enabled bool
	require.True(t, store.Load(service.StateKeyNotify, &enabled))
	assert.False(t, enabled)
}

func TestSQLiteStore_FavoriteIDsRoundTrip(t *testing.T) {
	store := newTestStore(t)

	ids := []uuid.UUID{uuid.New(), uuid.New()}
	store.Store(service.StateKeyFavorites, ids)

	var loaded []uuid.UUID
	require.True(t, store.Load(service.StateKeyFavorites, &loaded))
	assert.Equal(t, ids, loaded)
}

func TestSQLiteStore_UnparsableContentKeepsDefault(t *testing.T) {
	store := newTestStore(t)

	store.Store("companion.notify", "definitely-not-a-bool")

	enabled := true
	assert.False(t, store.Load("companion.notify", &enabled))
	assert.True(t, enabled)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	path := filepath.Join(t.TempDir(), "companion.db")

	store, err := newStore(path, logger)
	require.NoError(t, err)
	store.Store(service.StateKeyNotify, true)
	require.NoError(t, store.close())

	reopened, err := newStore(path, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.close() })

	var enabled bool
	require.True(t, reopened.Load(service.StateKeyNotify, &enabled))
	assert.True(t, enabled)
}
