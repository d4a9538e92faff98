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

type CategoryHandler struct {
	render       *render.Render
	validate     *validator.Validate
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	authorizer   *services.Authorizer
}

func NewCategoryHandler(
	render *render.Render,
	validate *validator.Validate,
	categoryRepo repositories.CategoryRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	authorizer *services.Authorizer,
) *CategoryHandler {
	return &CategoryHandler{
		render:       render,
		validate:     validate,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		authorizer:   authorizer,
	}
}

type CategoryForm struct {
	Name        string `json:"name" validate:"required"`
	BillboardID string `json:"billboardId" validate:"required"`
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "CategoryHandler.Create")
		return
	}

	var form CategoryForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Create")
		return
	}

	category := &models.Category{
		StoreID:     storeID,
		BillboardID: form.BillboardID,
		Name:        form.Name,
	}
	if err := h.categoryRepo.Create(r.Context(), category); err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Create")
		return
	}

	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	categories, err := h.categoryRepo.GetByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.List")
		return
	}

	h.render.JSON(w, http.StatusOK, categories)
}

func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Get")
		return
	}

	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, categoryID := vars["storeId"], vars["categoryId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "CategoryHandler.Update")
		return
	}

	var form CategoryForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Update")
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Update")
		return
	}
	if category == nil {
		writeDomainError(h.render, w, gormNotFound("category", categoryID), "CategoryHandler.Update")
		return
	}

	category.Name = form.Name
	category.BillboardID = form.BillboardID
	category.Billboard = nil
	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Update")
		return
	}

	h.render.JSON(w, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, categoryID := vars["storeId"], vars["categoryId"]
	userID := helpers.UserIDFromContext(r.Context())

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Delete")
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Delete")
		return
	}
	if category == nil {
		writeDomainError(h.render, w, gormNotFound("category", categoryID), "CategoryHandler.Delete")
		return
	}

	products, err := h.productRepo.CountByCategory(r.Context(), categoryID)
	if err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Delete")
		return
	}
	if products > 0 {
		writeDomainError(h.render, w,
			helpers.NewConflict("category is still used by %d products; remove them first", products),
			"CategoryHandler.Delete")
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), categoryID); err != nil {
		writeDomainError(h.render, w, err, "CategoryHandler.Delete")
		return
	}

	h.render.JSON(w, http.StatusOK, category)
}
