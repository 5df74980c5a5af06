package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay-cli/internal/core/domain"
)

func storeResource(id, title string) *domain.Resource {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &domain.Resource{
		ID:        id,
		Source:    domain.CustomSource("test"),
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestResourceStore_SaveAndFind(t *testing.T) {
	store := NewResourceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storeResource("notion_1", "Page")))

	found, err := store.FindByID(ctx, "notion_1")
	require.NoError(t, err)
	assert.Equal(t, "Page", found.Title)
}

func TestResourceStore_SaveReplaces(t *testing.T) {
	store := NewResourceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storeResource("notion_1", "Old")))
	require.NoError(t, store.Save(ctx, storeResource("notion_1", "New")))

	found, err := store.FindByID(ctx, "notion_1")
	require.NoError(t, err)
	assert.Equal(t, "New", found.Title)
}

func TestResourceStore_FindMissing(t *testing.T) {
	store := NewResourceStore()

	_, err := store.FindByID(context.Background(), "ghost")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestResourceStore_FindAllSorted(t *testing.T) {
	store := NewResourceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storeResource("notion_2", "B")))
	require.NoError(t, store.Save(ctx, storeResource("linear_1", "A")))

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "linear_1", all[0].ID)
	assert.Equal(t, "notion_2", all[1].ID)
}

func TestResourceStore_Delete(t *testing.T) {
	store := NewResourceStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storeResource("notion_1", "Page")))
	require.NoError(t, store.Delete(ctx, "notion_1"))

	_, err := store.FindByID(ctx, "notion_1")
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	// Deleting an absent ID is a no-op.
	assert.NoError(t, store.Delete(ctx, "ghost"))
}
