package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/repositories"
	"github.com/gostore/admin/app/services"
	"github.com/unrolled/render"
)

// OrderHandler exposes the read-only order surface: orders are
// created by the checkout flow, never through this handler.
type OrderHandler struct {
	render     *render.Render
	orderRepo  repositories.OrderRepository
	dashboard  *services.DashboardService
	authorizer *services.Authorizer
}

func NewOrderHandler(
	render *render.Render,
	orderRepo repositories.OrderRepository,
	dashboard *services.DashboardService,
	authorizer *services.Authorizer,
) *OrderHandler {
	return &OrderHandler{
		render:     render,
		orderRepo:  orderRepo,
		dashboard:  dashboard,
		authorizer: authorizer,
	}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	orders, err := h.orderRepo.GetByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "OrderHandler.List")
		return
	}

	h.render.JSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) Overview(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "OrderHandler.Overview")
		return
	}

	stats, err := h.dashboard.Overview(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "OrderHandler.Overview")
		return
	}

	h.render.JSON(w, http.StatusOK, stats)
}
