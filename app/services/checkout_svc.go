package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/gostore/admin/app/models"
	"github.com/gostore/admin/app/repositories"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/shopspring/decimal"
)

var ErrProductUnavailable = errors.New("one or more products are unavailable")

// CheckoutService turns a storefront cart into an Order with price
// snapshots, and asks the payment gateway for a Snap redirect URL
// when one is configured. Orders start unpaid; the gateway's
// notification webhook flips them to paid.
type CheckoutService struct {
	productRepo repositories.ProductRepositoryImpl
	orderRepo   repositories.OrderRepository
	snapClient  *snap.Client
}

func NewCheckoutService(
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepository,
	snapClient *snap.Client,
) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		orderRepo:   orderRepo,
		snapClient:  snapClient,
	}
}

func (s *CheckoutService) CreateOrder(ctx context.Context, storeID string, productIDs []string, phone, address string) (*models.Order, string, error) {
	products, err := s.productRepo.GetByIDs(ctx, storeID, productIDs)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load products: %w", err)
	}
	if len(products) != len(productIDs) {
		return nil, "", ErrProductUnavailable
	}

	order := &models.Order{
		StoreID: storeID,
		Phone:   phone,
		Address: address,
	}

	total := decimal.Zero
	for _, product := range products {
		order.OrderItems = append(order.OrderItems, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
		})
		total = total.Add(product.Price)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, "", fmt.Errorf("failed to create order: %w", err)
	}

	paymentURL := ""
	if s.snapClient != nil {
		snapReq := &snap.Request{
			TransactionDetails: midtrans.TransactionDetails{
				OrderID:  order.ID,
				GrossAmt: total.IntPart(),
			},
		}

		resp, snapErr := s.snapClient.CreateTransaction(snapReq)
		if snapErr != nil {
			// The order survives a gateway outage; payment can be
			// retried through the webhook reconciliation flow.
			log.Printf("CheckoutService.CreateOrder: snap transaction failed for order %s: %v", order.ID, snapErr)
		} else {
			paymentURL = resp.RedirectURL
		}
	}

	return order, paymentURL, nil
}

// HandleNotification processes a payment gateway callback. Settlement
// and capture mark the order paid; every other status is ignored.
func (s *CheckoutService) HandleNotification(ctx context.Context, orderID, transactionStatus string) error {
	if transactionStatus != "settlement" && transactionStatus != "capture" {
		return nil
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order == nil {
		return fmt.Errorf("order %s not found", orderID)
	}

	return s.orderRepo.MarkPaid(ctx, orderID)
}
