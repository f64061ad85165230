package intergration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartapp "pawmart/internal/cart/application"
	cartmongo "pawmart/internal/cart/infrastructure/mongo"
	catalogapp "pawmart/internal/catalog/application"
	catalogmongo "pawmart/internal/catalog/infrastructure/mongo"
	orderapp "pawmart/internal/order/application"
	orderdomain "pawmart/internal/order/domain"
	ordermongo "pawmart/internal/order/infrastructure/mongo"
	platform "pawmart/internal/platform/mongodb"
	"pawmart/pkg/logging"
)

func TestStorefrontFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	env, err := Setup(ctx)
	require.NoError(t, err)
	defer env.Teardown(ctx)

	log := logging.New("error")

	cartRepo := cartmongo.NewRepository(env.DB)
	orderRepo := ordermongo.NewRepository(env.DB)
	productRepo := catalogmongo.NewProductRepository(env.DB)
	categoryRepo := catalogmongo.NewCategoryRepository(env.DB)

	require.NoError(t, cartRepo.EnsureIndexes(ctx))
	require.NoError(t, orderRepo.EnsureIndexes(ctx))
	require.NoError(t, platform.NewSeeder(log, env.DB).Run(ctx))

	catalogSvc := catalogapp.NewService(log, productRepo, categoryRepo)
	cartSvc := cartapp.NewService(log, cartRepo, productRepo)
	orderSvc := orderapp.NewService(log, orderRepo, cartRepo, productRepo)

	const sessionID = "integration-session"

	t.Run("seeded catalog is queryable", func(t *testing.T) {
		products, err := catalogSvc.ListProducts(ctx, catalogapp.ProductQuery{})
		require.NoError(t, err)
		assert.Len(t, products, 8)

		categories, err := catalogSvc.ListCategories(ctx)
		require.NoError(t, err)
		assert.Len(t, categories, 6)
	})

	t.Run("cart accumulates and totals track catalog prices", func(t *testing.T) {
		totals, err := cartSvc.AddItem(ctx, sessionID, "1", 2)
		require.NoError(t, err)
		assert.InDelta(t, 59.98, totals.Total, 0.001)
		assert.Equal(t, 2, totals.ItemCount)

		totals, err = cartSvc.AddItem(ctx, sessionID, "8", 1)
		require.NoError(t, err)
		assert.InDelta(t, 72.97, totals.Total, 0.001)
		assert.Equal(t, 3, totals.ItemCount)
	})

	t.Run("out of stock product is rejected at add time", func(t *testing.T) {
		_, err := cartSvc.AddItem(ctx, sessionID, "5", 1)
		assert.ErrorIs(t, err, cartapp.ErrOutOfStock)
	})

	t.Run("order snapshots cart and resets it", func(t *testing.T) {
		order, err := orderSvc.CreateOrder(ctx, sessionID, orderapp.CreateOrderInput{
			ShippingAddress: orderdomain.ShippingAddress{
				FirstName: "Sam", LastName: "Porter",
				Email: "sam@example.com", Address: "1 Delivery Way",
				City: "Portland", State: "OR", ZipCode: "97201", Country: "USA",
			},
			Subtotal: 72.97,
			Shipping: 5.99,
			Tax:      6.57,
			Total:    85.53,
		})
		require.NoError(t, err)
		assert.Contains(t, order.OrderNumber, "ORD-")
		assert.Len(t, order.Items, 2)
		assert.Equal(t, orderdomain.StatusPending, order.Status)
		assert.Equal(t, orderdomain.PaymentPending, order.PaymentStatus)

		cart, err := cartSvc.GetCart(ctx, sessionID)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Zero(t, cart.Total)

		byNumber, err := orderSvc.GetOrderByNumber(ctx, order.OrderNumber)
		require.NoError(t, err)
		assert.Equal(t, order.ID, byNumber.ID)
	})

	t.Run("order status updates persist", func(t *testing.T) {
		orders, err := orderSvc.ListOrders(ctx, sessionID)
		require.NoError(t, err)
		require.Len(t, orders, 1)

		err = orderSvc.UpdateStatus(ctx, orders[0].ID, sessionID, "shipped")
		require.NoError(t, err)

		got, err := orderSvc.GetOrder(ctx, orders[0].ID, sessionID)
		require.NoError(t, err)
		assert.Equal(t, orderdomain.StatusShipped, got.Status)
	})
}
