package products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Product{}))
	return db
}

func TestCreateDerivesSlug(t *testing.T) {
	repo := NewRepo(newTestDB(t))

	p, err := repo.Create(context.Background(), CreateInput{
		StoreID:    "s1",
		Name:       "Oud Premium 50ml",
		PriceCents: 19900,
		Currency:   "SAR",
		InStock:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "oud-premium-50ml", p.Slug)
	assert.NotEmpty(t, p.ID)
}

func TestCreateDuplicateSlugSameStore(t *testing.T) {
	repo := NewRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateInput{StoreID: "s1", Name: "Oud Premium", PriceCents: 100, Currency: "SAR"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, CreateInput{StoreID: "s1", Name: "Oud Premium", PriceCents: 200, Currency: "SAR"})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// the slug is only unique within a store
	_, err = repo.Create(ctx, CreateInput{StoreID: "s2", Name: "Oud Premium", PriceCents: 100, Currency: "SAR"})
	assert.NoError(t, err)
}

func TestListInStock(t *testing.T) {
	repo := NewRepo(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, CreateInput{StoreID: "s1", Name: "Visible", PriceCents: 100, Currency: "SAR", InStock: true})
	require.NoError(t, err)
	_, err = repo.Create(ctx, CreateInput{StoreID: "s1", Name: "Hidden", PriceCents: 100, Currency: "SAR", InStock: false})
	require.NoError(t, err)
	_, err = repo.Create(ctx, CreateInput{StoreID: "s2", Name: "Other Store", PriceCents: 100, Currency: "SAR", InStock: true})
	require.NoError(t, err)

	items, err := repo.ListInStock(ctx, "s1", 24, 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Visible", items[0].Name)

	all, err := repo.List(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateAndDeleteScopedToStore(t *testing.T) {
	repo := NewRepo(newTestDB(t))
	ctx := context.Background()

	p, err := repo.Create(ctx, CreateInput{StoreID: "s1", Name: "Oud", PriceCents: 100, Currency: "SAR", InStock: true})
	require.NoError(t, err)

	// a different store cannot touch the row
	require.NoError(t, repo.Update(ctx, "s2", p.ID, map[string]any{"price_cents": int64(999)}))
	got, err := repo.Get(ctx, "s1", p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 100, got.PriceCents)

	require.NoError(t, repo.Update(ctx, "s1", p.ID, map[string]any{"price_cents": int64(999)}))
	got, err = repo.Get(ctx, "s1", p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 999, got.PriceCents)

	require.NoError(t, repo.Delete(ctx, "s2", p.ID))
	_, err = repo.Get(ctx, "s1", p.ID)
	assert.NoError(t, err, "cross-tenant delete must be a no-op")

	require.NoError(t, repo.Delete(ctx, "s1", p.ID))
	_, err = repo.Get(ctx, "s1", p.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
