package services_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/hikegear/storefront/common/logger"
	"github.com/hikegear/storefront/data"
	"github.com/hikegear/storefront/repository"
	"github.com/hikegear/storefront/services"
)

func TestMain(m *testing.M) {
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

func newCartService() *services.CartService {
	catalog := repository.NewMemoryCatalog(data.SeedProducts())
	return services.NewCartService(repository.NewMemoryCarts(), catalog)
}

func TestAddInsertsAndIncrements(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	cart, err := svc.Add(ctx, "u1", "1")
	assert.Nil(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	cart, err = svc.Add(ctx, "u1", "1")
	assert.Nil(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestAddUnknownProduct(t *testing.T) {
	svc := newCartService()

	_, err := svc.Add(context.Background(), "u1", "missing")
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.StatusCode)
}

func TestNoDuplicateProductEntries(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	for _, id := range []string{"1", "2", "1", "3", "2", "1"} {
		_, err := svc.Add(ctx, "u1", id)
		assert.Nil(t, err)
	}

	cart, err := svc.Get(ctx, "u1")
	assert.Nil(t, err)

	seen := map[string]bool{}
	for _, item := range cart.Items {
		assert.False(t, seen[item.Product.ID], "duplicate entry for product %s", item.Product.ID)
		seen[item.Product.ID] = true
	}
	assert.Len(t, cart.Items, 3)
}

func TestTotalPriceInvariant(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	// Arbitrary sequence of add/update/remove operations.
	_, _ = svc.Add(ctx, "u1", "1")
	_, _ = svc.Add(ctx, "u1", "2")
	_, _ = svc.Add(ctx, "u1", "2")
	_, _ = svc.UpdateQuantity(ctx, "u1", "1", 4)
	_, _ = svc.Add(ctx, "u1", "5")
	_, _ = svc.Remove(ctx, "u1", "2")

	cart, err := svc.Get(ctx, "u1")
	assert.Nil(t, err)

	want := 0.0
	count := 0
	for _, item := range cart.Items {
		want += item.Product.Price * float64(item.Quantity)
		count += item.Quantity
	}
	assert.InDelta(t, want, cart.TotalPrice, 1e-9)
	assert.Equal(t, count, cart.ItemCount)
	assert.InDelta(t, 4*149.99+129.99, cart.TotalPrice, 1e-9)
}

func TestUpdateQuantityZeroRemovesItem(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.Add(ctx, "u1", "1")
	_, _ = svc.Add(ctx, "u1", "2")

	cart, err := svc.UpdateQuantity(ctx, "u1", "1", 0)
	assert.Nil(t, err)
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "2", cart.Items[0].Product.ID)

	cart, err = svc.UpdateQuantity(ctx, "u1", "2", -3)
	assert.Nil(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalPrice)
}

func TestRemoveIsIdempotent(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.Add(ctx, "u1", "1")

	cart, err := svc.Remove(ctx, "u1", "1")
	assert.Nil(t, err)
	assert.Empty(t, cart.Items)

	cart, err = svc.Remove(ctx, "u1", "1")
	assert.Nil(t, err)
	assert.Empty(t, cart.Items)
}

func TestClearEmptiesCart(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.Add(ctx, "u1", "1")
	_, _ = svc.Add(ctx, "u1", "2")

	assert.Nil(t, svc.Clear(ctx, "u1"))

	cart, err := svc.Get(ctx, "u1")
	assert.Nil(t, err)
	assert.Empty(t, cart.Items)

	// Clearing an absent cart is a no-op.
	assert.Nil(t, svc.Clear(ctx, "u1"))
}

func TestCartsAreKeyedPerUser(t *testing.T) {
	svc := newCartService()
	ctx := context.Background()

	_, _ = svc.Add(ctx, "u1", "1")
	_, _ = svc.Add(ctx, "u2", "2")

	cart1, _ := svc.Get(ctx, "u1")
	cart2, _ := svc.Get(ctx, "u2")
	assert.Equal(t, "1", cart1.Items[0].Product.ID)
	assert.Equal(t, "2", cart2.Items[0].Product.ID)
}
