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

type SizeHandler struct {
	render      *render.Render
	validate    *validator.Validate
	sizeRepo    repositories.SizeRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	authorizer  *services.Authorizer
}

func NewSizeHandler(
	render *render.Render,
	validate *validator.Validate,
	sizeRepo repositories.SizeRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	authorizer *services.Authorizer,
) *SizeHandler {
	return &SizeHandler{
		render:      render,
		validate:    validate,
		sizeRepo:    sizeRepo,
		productRepo: productRepo,
		authorizer:  authorizer,
	}
}

type SizeForm struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

func (h *SizeHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "SizeHandler.Create")
		return
	}

	var form SizeForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Create")
		return
	}

	size := &models.Size{
		StoreID: storeID,
		Name:    form.Name,
		Value:   form.Value,
	}
	if err := h.sizeRepo.Create(r.Context(), size); err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Create")
		return
	}

	h.render.JSON(w, http.StatusOK, size)
}

func (h *SizeHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	sizes, err := h.sizeRepo.GetByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.List")
		return
	}

	h.render.JSON(w, http.StatusOK, sizes)
}

func (h *SizeHandler) Get(w http.ResponseWriter, r *http.Request) {
	sizeID := mux.Vars(r)["sizeId"]

	size, err := h.sizeRepo.GetByID(r.Context(), sizeID)
	if err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Get")
		return
	}

	h.render.JSON(w, http.StatusOK, size)
}

func (h *SizeHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, sizeID := vars["storeId"], vars["sizeId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "SizeHandler.Update")
		return
	}

	var form SizeForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Update")
		return
	}

	size, err := h.sizeRepo.GetByID(r.Context(), sizeID)
	if err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Update")
		return
	}
	if size == nil {
		writeDomainError(h.render, w, gormNotFound("size", sizeID), "SizeHandler.Update")
		return
	}

	size.Name = form.Name
	size.Value = form.Value
	if err := h.sizeRepo.Update(r.Context(), size); err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Update")
		return
	}

	h.render.JSON(w, http.StatusOK, size)
}

func (h *SizeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, sizeID := vars["storeId"], vars["sizeId"]
	userID := helpers.UserIDFromContext(r.Context())

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Delete")
		return
	}

	size, err := h.sizeRepo.GetByID(r.Context(), sizeID)
	if err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Delete")
		return
	}
	if size == nil {
		writeDomainError(h.render, w, gormNotFound("size", sizeID), "SizeHandler.Delete")
		return
	}

	products, err := h.productRepo.CountBySize(r.Context(), sizeID)
	if err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Delete")
		return
	}
	if products > 0 {
		writeDomainError(h.render, w,
			helpers.NewConflict("size is still used by %d products; remove them first", products),
			"SizeHandler.Delete")
		return
	}

	if err := h.sizeRepo.Delete(r.Context(), sizeID); err != nil {
		writeDomainError(h.render, w, err, "SizeHandler.Delete")
		return
	}

	h.render.JSON(w, http.StatusOK, size)
}
