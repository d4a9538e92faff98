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

type BillboardHandler struct {
	render        *render.Render
	validate      *validator.Validate
	billboardRepo repositories.BillboardRepositoryImpl
	categoryRepo  repositories.CategoryRepositoryImpl
	authorizer    *services.Authorizer
}

func NewBillboardHandler(
	render *render.Render,
	validate *validator.Validate,
	billboardRepo repositories.BillboardRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	authorizer *services.Authorizer,
) *BillboardHandler {
	return &BillboardHandler{
		render:        render,
		validate:      validate,
		billboardRepo: billboardRepo,
		categoryRepo:  categoryRepo,
		authorizer:    authorizer,
	}
}

// BillboardForm declares the required fields in the order they are
// reported when missing.
type BillboardForm struct {
	Label    string `json:"label" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

func (h *BillboardHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "BillboardHandler.Create")
		return
	}

	var form BillboardForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Create")
		return
	}

	billboard := &models.Billboard{
		StoreID:  storeID,
		Label:    form.Label,
		ImageURL: form.ImageURL,
	}
	if err := h.billboardRepo.Create(r.Context(), billboard); err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Create")
		return
	}

	h.render.JSON(w, http.StatusOK, billboard)
}

func (h *BillboardHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	billboards, err := h.billboardRepo.GetByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.List")
		return
	}

	h.render.JSON(w, http.StatusOK, billboards)
}

func (h *BillboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	billboardID := mux.Vars(r)["billboardId"]

	billboard, err := h.billboardRepo.GetByID(r.Context(), billboardID)
	if err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Get")
		return
	}

	// Not-found is a 200 with a null payload, not a 404.
	h.render.JSON(w, http.StatusOK, billboard)
}

func (h *BillboardHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, billboardID := vars["storeId"], vars["billboardId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "BillboardHandler.Update")
		return
	}

	var form BillboardForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Update")
		return
	}

	billboard, err := h.billboardRepo.GetByID(r.Context(), billboardID)
	if err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Update")
		return
	}
	if billboard == nil {
		writeDomainError(h.render, w, gormNotFound("billboard", billboardID), "BillboardHandler.Update")
		return
	}

	billboard.Label = form.Label
	billboard.ImageURL = form.ImageURL
	if err := h.billboardRepo.Update(r.Context(), billboard); err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Update")
		return
	}

	h.render.JSON(w, http.StatusOK, billboard)
}

func (h *BillboardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, billboardID := vars["storeId"], vars["billboardId"]
	userID := helpers.UserIDFromContext(r.Context())

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Delete")
		return
	}

	billboard, err := h.billboardRepo.GetByID(r.Context(), billboardID)
	if err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Delete")
		return
	}
	if billboard == nil {
		writeDomainError(h.render, w, gormNotFound("billboard", billboardID), "BillboardHandler.Delete")
		return
	}

	categories, err := h.categoryRepo.CountByBillboard(r.Context(), billboardID)
	if err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Delete")
		return
	}
	if categories > 0 {
		writeDomainError(h.render, w,
			helpers.NewConflict("billboard is still used by %d categories; remove them first", categories),
			"BillboardHandler.Delete")
		return
	}

	if err := h.billboardRepo.Delete(r.Context(), billboardID); err != nil {
		writeDomainError(h.render, w, err, "BillboardHandler.Delete")
		return
	}

	h.render.JSON(w, http.StatusOK, billboard)
}
