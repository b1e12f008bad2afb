package entries

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"journal-api/internal/common"
	"journal-api/internal/server/models"
)

var owner = models.Owner{Name: "Alice", Email: "alice@example.com"}

func TestSaveAndFetchOne(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, owner, "2024-01-01", "hello"))

	entry, err := repo.FetchOne(ctx, owner, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, "hello", entry.Content)
}

func TestFetchAll_EmptyIsNotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	_, err := repo.FetchAll(ctx, owner)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestFetchAll_ScopedByOwner(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()
	other := models.Owner{Name: "Bob", Email: "bob@example.com"}

	require.NoError(t, repo.Save(ctx, owner, "2024-01-01", "mine"))
	require.NoError(t, repo.Save(ctx, other, "2024-01-01", "theirs"))

	all, err := repo.FetchAll(ctx, owner)
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "mine", all[0].Content)
}

func TestUpdate_MissingDateIsNotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.ErrorIs(t, repo.Update(ctx, owner, "2024-01-01", "x"), common.ErrorNotFound)
}

func TestUpdate_ReplacesContentInPlace(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, owner, "2024-01-01", "v1"))
	require.NoError(t, repo.Update(ctx, owner, "2024-01-01", "v2"))

	entry, err := repo.FetchOne(ctx, owner, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, "v2", entry.Content)

	all, err := repo.FetchAll(ctx, owner)
	require.NoError(t, err)
	require.Len(t, all, 1)
}

func TestDelete_ThenFetchOneIsNotFound(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, owner, "2024-01-01", "gone soon"))
	require.NoError(t, repo.Delete(ctx, owner, "2024-01-01"))

	_, err := repo.FetchOne(ctx, owner, "2024-01-01")
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.ErrorIs(t, repo.Delete(ctx, owner, "2024-01-01"), common.ErrorNotFound)
}

func TestDuplicateDates_SaveAppendsDeleteRemovesAll(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	// no dedup check on save: a second entry for the same date is appended
	require.NoError(t, repo.Save(ctx, owner, "2024-01-01", "first"))
	require.NoError(t, repo.Save(ctx, owner, "2024-01-01", "second"))

	all, err := repo.FetchAll(ctx, owner)
	require.NoError(t, err)
	require.Len(t, all, 2)

	// fetchOne returns the oldest entry
	entry, err := repo.FetchOne(ctx, owner, "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, "first", entry.Content)

	// update touches only the oldest entry
	require.NoError(t, repo.Update(ctx, owner, "2024-01-01", "patched"))
	all, err = repo.FetchAll(ctx, owner)
	require.NoError(t, err)
	require.Equal(t, "patched", all[0].Content)
	require.Equal(t, "second", all[1].Content)

	// delete removes every entry for the date
	require.NoError(t, repo.Delete(ctx, owner, "2024-01-01"))
	_, err = repo.FetchAll(ctx, owner)
	require.ErrorIs(t, err, common.ErrorNotFound)
}
