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

type ColorHandler struct {
	render      *render.Render
	validate    *validator.Validate
	colorRepo   repositories.ColorRepositoryImpl
	productRepo repositories.ProductRepositoryImpl
	authorizer  *services.Authorizer
}

func NewColorHandler(
	render *render.Render,
	validate *validator.Validate,
	colorRepo repositories.ColorRepositoryImpl,
	productRepo repositories.ProductRepositoryImpl,
	authorizer *services.Authorizer,
) *ColorHandler {
	return &ColorHandler{
		render:      render,
		validate:    validate,
		colorRepo:   colorRepo,
		productRepo: productRepo,
		authorizer:  authorizer,
	}
}

type ColorForm struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

func (h *ColorHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "ColorHandler.Create")
		return
	}

	var form ColorForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Create")
		return
	}

	color := &models.Color{
		StoreID: storeID,
		Name:    form.Name,
		Value:   form.Value,
	}
	if err := h.colorRepo.Create(r.Context(), color); err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Create")
		return
	}

	h.render.JSON(w, http.StatusOK, color)
}

func (h *ColorHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	colors, err := h.colorRepo.GetByStore(r.Context(), storeID)
	if err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.List")
		return
	}

	h.render.JSON(w, http.StatusOK, colors)
}

func (h *ColorHandler) Get(w http.ResponseWriter, r *http.Request) {
	colorID := mux.Vars(r)["colorId"]

	color, err := h.colorRepo.GetByID(r.Context(), colorID)
	if err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Get")
		return
	}

	h.render.JSON(w, http.StatusOK, color)
}

func (h *ColorHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, colorID := vars["storeId"], vars["colorId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "ColorHandler.Update")
		return
	}

	var form ColorForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Update")
		return
	}

	color, err := h.colorRepo.GetByID(r.Context(), colorID)
	if err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Update")
		return
	}
	if color == nil {
		writeDomainError(h.render, w, gormNotFound("color", colorID), "ColorHandler.Update")
		return
	}

	color.Name = form.Name
	color.Value = form.Value
	if err := h.colorRepo.Update(r.Context(), color); err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Update")
		return
	}

	h.render.JSON(w, http.StatusOK, color)
}

func (h *ColorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, colorID := vars["storeId"], vars["colorId"]
	userID := helpers.UserIDFromContext(r.Context())

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Delete")
		return
	}

	color, err := h.colorRepo.GetByID(r.Context(), colorID)
	if err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Delete")
		return
	}
	if color == nil {
		writeDomainError(h.render, w, gormNotFound("color", colorID), "ColorHandler.Delete")
		return
	}

	products, err := h.productRepo.CountByColor(r.Context(), colorID)
	if err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Delete")
		return
	}
	if products > 0 {
		writeDomainError(h.render, w,
			helpers.NewConflict("color is still used by %d products; remove them first", products),
			"ColorHandler.Delete")
		return
	}

	if err := h.colorRepo.Delete(r.Context(), colorID); err != nil {
		writeDomainError(h.render, w, err, "ColorHandler.Delete")
		return
	}

	h.render.JSON(w, http.StatusOK, color)
}
