package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gostore/admin/app/services"
	"github.com/unrolled/render"
)

// CheckoutHandler is the storefront-facing surface: no session is
// required, a buyer only needs product IDs and contact details.
type CheckoutHandler struct {
	render      *render.Render
	validate    *validator.Validate
	checkoutSvc *services.CheckoutService
}

func NewCheckoutHandler(
	render *render.Render,
	validate *validator.Validate,
	checkoutSvc *services.CheckoutService,
) *CheckoutHandler {
	return &CheckoutHandler{
		render:      render,
		validate:    validate,
		checkoutSvc: checkoutSvc,
	}
}

type CheckoutForm struct {
	ProductIDs []string `json:"productIds" validate:"required,min=1"`
	Phone      string   `json:"phone" validate:"required"`
	Address    string   `json:"address" validate:"required"`
}

type checkoutResponse struct {
	Order      interface{} `json:"order"`
	PaymentURL string      `json:"paymentUrl,omitempty"`
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	var form CheckoutForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	order, paymentURL, err := h.checkoutSvc.CreateOrder(r.Context(), storeID, form.ProductIDs, form.Phone, form.Address)
	if err != nil {
		if errors.Is(err, services.ErrProductUnavailable) {
			h.render.JSON(w, http.StatusBadRequest, apiError{Error: err.Error()})
			return
		}
		writeDomainError(h.render, w, err, "CheckoutHandler.Checkout")
		return
	}

	h.render.JSON(w, http.StatusOK, checkoutResponse{Order: order, PaymentURL: paymentURL})
}

type paymentNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
}

// Notification receives the payment gateway callback. The gateway
// retries on non-200, so failures to find the order still answer OK
// after being logged.
func (h *CheckoutHandler) Notification(w http.ResponseWriter, r *http.Request) {
	var payload paymentNotification
	if !decodeJSONBody(h.render, w, r, &payload) {
		return
	}

	if err := h.checkoutSvc.HandleNotification(r.Context(), payload.OrderID, payload.TransactionStatus); err != nil {
		writeDomainError(h.render, w, err, "CheckoutHandler.Notification")
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
