package fallback

import (
	"context"
	"path/filepath"
	"testing"

	"go-backoffice-client/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestNextIDStrictlyIncreasing(t *testing.T) {
	store := newTestStore(t)
	prev := ""
	for i := 0; i < 100; i++ {
		id := store.nextID()
		if prev != "" {
			assert.Greater(t, id, prev)
		}
		prev = id
	}
}

func TestProductCRUDRoundTrip(t *testing.T) {
	store := newTestStore(t)
	svc := NewProductService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, model.ProductInput{
		Name:     "Fresh Milk",
		Category: "Dairy",
		Variants: []model.Variant{
			{Label: "Half Litre", Value: 500, Unit: "ml", Price: 120, Stock: 10},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)
	assert.Equal(t, 120.0, created.Price)
	assert.Equal(t, 10, created.Stock)
	assert.Equal(t, "500ml", created.Volume)
	assert.Equal(t, 120.0, created.Cost)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Fresh Milk", got.Name)

	updated, err := svc.Update(ctx, created.ID, model.ProductInput{Name: "Whole Milk"})
	require.NoError(t, err)
	assert.Equal(t, "Whole Milk", updated.Name)
	assert.Equal(t, "Dairy", updated.Category)

	require.NoError(t, svc.ToggleStatus(ctx, created.ID))
	got, err = svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestProductCreateValidation(t *testing.T) {
	store := newTestStore(t)
	svc := NewProductService(store)

	_, err := svc.Create(context.Background(), model.ProductInput{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Validation failed")
}

func TestProductListFilters(t *testing.T) {
	store := newTestStore(t)
	svc := NewProductService(store)
	ctx := context.Background()

	seed := []model.ProductInput{
		{Name: "Fresh Milk", Category: "Dairy"},
		{Name: "Cheddar Cheese", Category: "Dairy"},
		{Name: "Green Tea", Category: "Drinks"},
	}
	for _, in := range seed {
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, model.ListFilter{Search: "milk"})
	require.NoError(t, err)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Fresh Milk", page.Products[0].Name)

	page, err = svc.List(ctx, model.ListFilter{Category: "Dairy"})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, 2, page.Total)

	page, err = svc.List(ctx, model.ListFilter{Category: "all"})
	require.NoError(t, err)
	assert.Len(t, page.Products, 3)

	page, err = svc.List(ctx, model.ListFilter{Status: "active"})
	require.NoError(t, err)
	assert.Len(t, page.Products, 3)
}

func TestProductListPagination(t *testing.T) {
	store := newTestStore(t)
	svc := NewProductService(store)
	ctx := context.Background()

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		_, err := svc.Create(ctx, model.ProductInput{Name: name})
		require.NoError(t, err)
	}

	page, err := svc.List(ctx, model.ListFilter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Products, 2)
	assert.Equal(t, 5, page.Total)
	assert.Equal(t, "C", page.Products[0].Name)

	page, err = svc.List(ctx, model.ListFilter{Page: 4, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Products)
	assert.Equal(t, 5, page.Total)
}

func TestOrderCreateComputesTotal(t *testing.T) {
	store := newTestStore(t)
	svc := NewOrderService(store)
	ctx := context.Background()

	order, err := svc.Create(ctx, model.OrderInput{
		CustomerID: "c1",
		Items: []model.OrderItem{
			{ProductID: "p1", Name: "Tea", Quantity: 2, Price: 50},
			{ProductID: "p2", Name: "Milk", Quantity: 1, Price: 120},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 220.0, order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)

	require.NoError(t, svc.UpdateStatus(ctx, order.ID, model.OrderStatusDelivered))
	got, err := svc.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusDelivered, got.Status)
}

func TestCustomerDefaultsOnCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	customer, err := svc.Create(ctx, model.CustomerInput{Name: "Amina Khan", Email: "amina@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "active", customer.Status)
	assert.Equal(t, model.TierBronze, customer.Membership)
	assert.NotEmpty(t, customer.JoinDate)

	require.NoError(t, svc.ToggleStatus(ctx, customer.ID))
	got, err := svc.Get(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, "inactive", got.Status)
}
