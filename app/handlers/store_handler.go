package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/models"
	"github.com/gostore/admin/app/repositories"
	"github.com/gostore/admin/app/services"
	"github.com/unrolled/render"
)

type StoreHandler struct {
	render        *render.Render
	validate      *validator.Validate
	storeRepo     repositories.StoreRepositoryImpl
	billboardRepo repositories.BillboardRepositoryImpl
	productRepo   repositories.ProductRepositoryImpl
	orderRepo     repositories.OrderRepository
	authorizer    *services.Authorizer
}

func NewStoreHandler(
	render *render.Render,
	validate *validator.Validate,
	storeRepo repositories.StoreRepositoryImpl,
	billboardRepo repositories.BillboardRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	orderRepo repositories.OrderRepository,
	authorizer *services.Authorizer,
) *StoreHandler {
	return &StoreHandler{
		render:        render,
		validate:      validate,
		storeRepo:     storeRepo,
		billboardRepo: billboardRepo,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		authorizer:    authorizer,
	}
}

type StoreForm struct {
	Name string `json:"name" validate:"required"`
}

func (h *StoreHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "StoreHandler.Create")
		return
	}

	var form StoreForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	store := &models.Store{
		Name:   form.Name,
		UserID: userID,
	}
	if err := h.storeRepo.Create(r.Context(), store); err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Create")
		return
	}

	h.render.JSON(w, http.StatusOK, store)
}

func (h *StoreHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "StoreHandler.List")
		return
	}

	stores, err := h.storeRepo.GetByUser(r.Context(), userID)
	if err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.List")
		return
	}

	h.render.JSON(w, http.StatusOK, stores)
}

func (h *StoreHandler) Update(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "StoreHandler.Update")
		return
	}

	var form StoreForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	store, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Update")
		return
	}

	store.Name = form.Name
	if err := h.storeRepo.Update(r.Context(), store); err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Update")
		return
	}

	h.render.JSON(w, http.StatusOK, store)
}

func (h *StoreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())

	store, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Delete")
		return
	}

	billboards, err := h.billboardRepo.CountByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Delete")
		return
	}
	products, err := h.productRepo.CountByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Delete")
		return
	}
	orders, err := h.orderRepo.CountByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Delete")
		return
	}
	if billboards > 0 || products > 0 || orders > 0 {
		writeDomainError(h.render, w,
			helpers.NewConflict("store still has %d billboards, %d products and %d orders; remove them first", billboards, products, orders),
			"StoreHandler.Delete")
		return
	}

	if err := h.storeRepo.Delete(r.Context(), storeID); err != nil {
		writeDomainError(h.render, w, err, "StoreHandler.Delete")
		return
	}

	h.render.JSON(w, http.StatusOK, store)
}
