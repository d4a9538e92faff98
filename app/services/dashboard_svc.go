package services

import (
	"context"

	"github.com/gostore/admin/app/repositories"
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

type OverviewStats struct {
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	FormattedRevenue string          `json:"formattedRevenue"`
	SalesCount       int64           `json:"salesCount"`
	StockCount       int64           `json:"stockCount"`
}

// DashboardService aggregates the store overview: revenue and sales
// over paid orders, plus the store's total product count.
type DashboardService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepositoryImpl
	money       accounting.Accounting
}

func NewDashboardService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepositoryImpl) *DashboardService {
	return &DashboardService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		money:       accounting.Accounting{Symbol: "$", Precision: 2},
	}
}

func (s *DashboardService) Overview(ctx context.Context, storeID string) (*OverviewStats, error) {
	paidOrders, err := s.orderRepo.GetPaidByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	revenue := decimal.Zero
	for _, order := range paidOrders {
		for _, item := range order.OrderItems {
			revenue = revenue.Add(item.Price)
		}
	}

	stockCount, err := s.productRepo.CountByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}

	return &OverviewStats{
		TotalRevenue:     revenue,
		FormattedRevenue: s.money.FormatMoney(revenue),
		SalesCount:       int64(len(paidOrders)),
		StockCount:       stockCount,
	}, nil
}
