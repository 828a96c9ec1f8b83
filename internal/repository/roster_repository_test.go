package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sayed24/Employee-Management-System/internal/database"
	"github.com/Sayed24/Employee-Management-System/internal/domain"
)

func newTestRepo(t *testing.T) (domain.RosterRepository, *database.LocalStore) {
	t.Helper()
	store, err := database.NewLocalStore(context.Background(), filepath.Join(t.TempDir(), "roster.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return NewRosterRepository(store, "employees"), store
}

func TestLoadAbsentKey(t *testing.T) {
	repo, _ := newTestRepo(t)

	records, present, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, present)
	assert.Nil(t, records)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	want := []domain.Employee{
		{ID: "a1", FullName: "Amina Torres", Email: "amina@example.com", Department: "Engineering"},
		{ID: "b2", FullName: "Carlos Nguyen", Email: "carlos@example.com", Notes: "on leave"},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, present, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.True(t, present)
	assert.Equal(t, want, got, "order and every field must survive the roundtrip")
}

func TestSaveOverwritesWholeCollection(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.Employee{{ID: "a"}, {ID: "b"}}))
	require.NoError(t, repo.Save(ctx, []domain.Employee{{ID: "c"}}))

	got, _, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "c", got[0].ID)
}

func TestLoadMalformedValue(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	// Corrupt the stored value behind the repository's back.
	require.NoError(t, store.Set(ctx, "employees", []byte("{not json")))

	records, present, err := repo.Load(ctx)
	require.NoError(t, err, "corruption is degraded silently, never returned")
	assert.True(t, present, "the key exists even though its value is garbage")
	assert.Empty(t, records)
}

func TestClear(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, []domain.Employee{{ID: "a"}}))
	require.NoError(t, repo.Clear(ctx))

	_, present, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.False(t, present, "cleared roster reads as absent, so the next load reseeds")
}

func TestSaveNilWritesEmptyArray(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, nil))

	raw, present, err := store.Get(ctx, "employees")
	require.NoError(t, err)
	assert.True(t, present)
	assert.JSONEq(t, "[]", string(raw))
}
