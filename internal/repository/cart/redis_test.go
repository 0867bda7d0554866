package cart

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hunargaatha-storefront/internal/domain"
)

func setupTestRepo(t *testing.T) (Repository, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedis(client), mr
}

func TestLoad_MissingSession(t *testing.T) {
	repo, _ := setupTestRepo(t)

	_, err := repo.Load(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrNoSavedCart)
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	repo, _ := setupTestRepo(t)
	ctx := context.Background()

	cart := domain.Cart{Items: []domain.CartLine{
		{ProductID: "blue-pottery-vase", Name: "Blue Pottery Vase", UnitPrice: decimal.NewFromInt(1250), Quantity: 2},
	}}
	require.NoError(t, repo.Save(ctx, "sess-1", cart))

	loaded, err := repo.Load(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, "blue-pottery-vase", loaded.Items[0].ProductID)
	assert.Equal(t, 2, loaded.Items[0].Quantity)
	assert.True(t, loaded.Items[0].UnitPrice.Equal(decimal.NewFromInt(1250)))
}

func TestLoad_CorruptPayload(t *testing.T) {
	repo, mr := setupTestRepo(t)

	mr.Set("cart:sess-1", "{not json")
	_, err := repo.Load(context.Background(), "sess-1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSavedCart)
}

func TestDelete_RemovesKey(t *testing.T) {
	repo, mr := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "sess-1", domain.Cart{}))
	require.NoError(t, repo.Delete(ctx, "sess-1"))
	assert.False(t, mr.Exists("cart:sess-1"))
}
