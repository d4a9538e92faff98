package services_test

import (
	"context"
	"testing"

	"github.com/gostore/admin/app/models"
	"github.com/gostore/admin/app/repositories"
	"github.com/gostore/admin/app/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProducts(t *testing.T, db *gorm.DB) (storeID string, products []models.Product) {
	t.Helper()

	user := models.User{ID: "user-1", FirstName: "T", LastName: "U", Email: "t@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	store := models.Store{Name: "Store", UserID: user.ID}
	require.NoError(t, db.Create(&store).Error)
	billboard := models.Billboard{StoreID: store.ID, Label: "hero", ImageURL: "https://example.com/hero.png"}
	require.NoError(t, db.Create(&billboard).Error)
	category := models.Category{StoreID: store.ID, BillboardID: billboard.ID, Name: "Shirts"}
	require.NoError(t, db.Create(&category).Error)
	size := models.Size{StoreID: store.ID, Name: "Medium", Value: "M"}
	require.NoError(t, db.Create(&size).Error)
	color := models.Color{StoreID: store.ID, Name: "Black", Value: "#000"}
	require.NoError(t, db.Create(&color).Error)

	products = []models.Product{
		{
			StoreID: store.ID, CategoryID: category.ID, SizeID: size.ID, ColorID: color.ID,
			Name: "Tee", Price: decimal.NewFromFloat(19.99),
		},
		{
			StoreID: store.ID, CategoryID: category.ID, SizeID: size.ID, ColorID: color.ID,
			Name: "Hoodie", Price: decimal.NewFromFloat(45.50),
		},
	}
	for i := range products {
		require.NoError(t, db.Create(&products[i]).Error)
	}
	return store.ID, products
}

func TestCreateOrderSnapshotsPrices(t *testing.T) {
	db := newTestDB(t)
	storeID, products := seedProducts(t, db)

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	svc := services.NewCheckoutService(productRepo, orderRepo, nil)
	ctx := context.Background()

	order, paymentURL, err := svc.CreateOrder(ctx, storeID,
		[]string{products[0].ID, products[1].ID}, "+62812", "Jl. Example 1")
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Empty(t, paymentURL)
	assert.False(t, order.IsPaid)
	require.Len(t, order.OrderItems, 2)

	// Later price edits must not rewrite the snapshot.
	require.NoError(t, db.Model(&models.Product{}).
		Where("id = ?", products[0].ID).
		Update("price", decimal.NewFromFloat(99.99)).Error)

	stored, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)

	total := decimal.Zero
	for _, item := range stored.OrderItems {
		total = total.Add(item.Price)
	}
	assert.True(t, total.Equal(decimal.NewFromFloat(65.49)), "got total %s", total)
}

func TestCreateOrderRejectsUnknownProducts(t *testing.T) {
	db := newTestDB(t)
	storeID, products := seedProducts(t, db)

	svc := services.NewCheckoutService(
		repositories.NewProductRepository(db),
		repositories.NewOrderRepository(db),
		nil,
	)

	_, _, err := svc.CreateOrder(context.Background(), storeID,
		[]string{products[0].ID, "no-such-product"}, "+62812", "Jl. Example 1")
	assert.ErrorIs(t, err, services.ErrProductUnavailable)
}

func TestHandleNotification(t *testing.T) {
	db := newTestDB(t)
	storeID, products := seedProducts(t, db)

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	svc := services.NewCheckoutService(productRepo, orderRepo, nil)
	ctx := context.Background()

	order, _, err := svc.CreateOrder(ctx, storeID, []string{products[0].ID}, "+62812", "Jl. Example 1")
	require.NoError(t, err)

	require.NoError(t, svc.HandleNotification(ctx, order.ID, "pending"))
	stored, err := orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsPaid)

	require.NoError(t, svc.HandleNotification(ctx, order.ID, "settlement"))
	stored, err = orderRepo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsPaid)

	// Unknown orders with a paid status are a real error so the
	// gateway keeps retrying.
	assert.Error(t, svc.HandleNotification(ctx, "no-such-order", "settlement"))
	assert.NoError(t, svc.HandleNotification(ctx, "no-such-order", "pending"))
}

func TestOverviewStats(t *testing.T) {
	db := newTestDB(t)
	storeID, products := seedProducts(t, db)

	productRepo := repositories.NewProductRepository(db)
	orderRepo := repositories.NewOrderRepository(db)
	checkout := services.NewCheckoutService(productRepo, orderRepo, nil)
	dashboard := services.NewDashboardService(orderRepo, productRepo)
	ctx := context.Background()

	order, _, err := checkout.CreateOrder(ctx, storeID, []string{products[0].ID, products[1].ID}, "+62812", "Jl. Example 1")
	require.NoError(t, err)

	stats, err := dashboard.Overview(ctx, storeID)
	require.NoError(t, err)
	assert.True(t, stats.TotalRevenue.IsZero())
	assert.EqualValues(t, 0, stats.SalesCount)
	assert.EqualValues(t, 2, stats.StockCount)

	require.NoError(t, checkout.HandleNotification(ctx, order.ID, "settlement"))

	stats, err = dashboard.Overview(ctx, storeID)
	require.NoError(t, err)
	assert.True(t, stats.TotalRevenue.Equal(decimal.NewFromFloat(65.49)), "got %s", stats.TotalRevenue)
	assert.Equal(t, "$65.49", stats.FormattedRevenue)
	assert.EqualValues(t, 1, stats.SalesCount)
}
