package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/models"
	"github.com/gostore/admin/app/repositories"
	"github.com/gostore/admin/app/services"
	"github.com/shopspring/decimal"
	"github.com/unrolled/render"
)

var filterDecoder = func() *schema.Decoder {
	decoder := schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
	return decoder
}()

type ProductHandler struct {
	render      *render.Render
	validate    *validator.Validate
	productRepo repositories.ProductRepositoryImpl
	authorizer  *services.Authorizer
	cache       *services.ProductCache
}

func NewProductHandler(
	render *render.Render,
	validate *validator.Validate,
	productRepo repositories.ProductRepositoryImpl,
	authorizer *services.Authorizer,
	cache *services.ProductCache,
) *ProductHandler {
	return &ProductHandler{
		render:      render,
		validate:    validate,
		productRepo: productRepo,
		authorizer:  authorizer,
		cache:       cache,
	}
}

type ProductImageForm struct {
	URL string `json:"url" validate:"required"`
}

// ProductForm declares required fields in reporting order. Price
// accepts numeric text or a number and is rejected when zero.
type ProductForm struct {
	Name       string             `json:"name" validate:"required"`
	Price      decimal.Decimal    `json:"price" validate:"required"`
	CategoryID string             `json:"categoryId" validate:"required"`
	ColorID    string             `json:"colorId" validate:"required"`
	SizeID     string             `json:"sizeId" validate:"required"`
	Images     []ProductImageForm `json:"images" validate:"required,min=1,dive"`
	IsFeatured bool               `json:"isFeatured"`
	IsArchived bool               `json:"isArchived"`
}

func (f *ProductForm) imageModels() []models.ProductImage {
	images := make([]models.ProductImage, 0, len(f.Images))
	for _, image := range f.Images {
		images = append(images, models.ProductImage{URL: image.URL})
	}
	return images
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "ProductHandler.Create")
		return
	}

	var form ProductForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Create")
		return
	}

	product := &models.Product{
		StoreID:    storeID,
		CategoryID: form.CategoryID,
		SizeID:     form.SizeID,
		ColorID:    form.ColorID,
		Name:       form.Name,
		Price:      form.Price,
		IsFeatured: form.IsFeatured,
		IsArchived: form.IsArchived,
		Images:     form.imageModels(),
	}
	if err := h.productRepo.Create(r.Context(), product); err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Create")
		return
	}

	h.cache.Invalidate(r.Context(), storeID)
	h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]

	var filter repositories.ProductFilter
	if err := filterDecoder.Decode(&filter, r.URL.Query()); err != nil {
		h.render.JSON(w, http.StatusBadRequest, apiError{Error: "invalid query parameters"})
		return
	}

	// Only the unfiltered listing is cached; filtered views go to the
	// database every time.
	if filter.IsZero() {
		if products, ok := h.cache.Get(r.Context(), storeID); ok {
			h.render.JSON(w, http.StatusOK, products)
			return
		}
	}

	products, err := h.productRepo.GetByStore(r.Context(), storeID, filter)
	if err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.List")
		return
	}

	if filter.IsZero() {
		h.cache.Set(r.Context(), storeID, products)
	}

	h.render.JSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Get")
		return
	}

	h.render.JSON(w, http.StatusOK, product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, productID := vars["storeId"], vars["productId"]
	userID := helpers.UserIDFromContext(r.Context())
	if userID == "" {
		writeDomainError(h.render, w, helpers.ErrUnauthenticated, "ProductHandler.Update")
		return
	}

	var form ProductForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Update")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Update")
		return
	}
	if product == nil {
		writeDomainError(h.render, w, gormNotFound("product", productID), "ProductHandler.Update")
		return
	}

	product.Name = form.Name
	product.Price = form.Price
	product.CategoryID = form.CategoryID
	product.SizeID = form.SizeID
	product.ColorID = form.ColorID
	product.IsFeatured = form.IsFeatured
	product.IsArchived = form.IsArchived

	if err := h.productRepo.Update(r.Context(), product, form.imageModels()); err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Update")
		return
	}

	updated, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Update")
		return
	}

	h.cache.Invalidate(r.Context(), storeID)
	h.render.JSON(w, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	storeID, productID := vars["storeId"], vars["productId"]
	userID := helpers.UserIDFromContext(r.Context())

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Delete")
		return
	}

	product, err := h.productRepo.GetByID(r.Context(), productID)
	if err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Delete")
		return
	}
	if product == nil {
		writeDomainError(h.render, w, gormNotFound("product", productID), "ProductHandler.Delete")
		return
	}

	orderItems, err := h.productRepo.CountByOrderItems(r.Context(), productID)
	if err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Delete")
		return
	}
	if orderItems > 0 {
		writeDomainError(h.render, w,
			helpers.NewConflict("product appears in %d order items; archive it instead of deleting", orderItems),
			"ProductHandler.Delete")
		return
	}

	if err := h.productRepo.Delete(r.Context(), productID); err != nil {
		writeDomainError(h.render, w, err, "ProductHandler.Delete")
		return
	}

	h.cache.Invalidate(r.Context(), storeID)
	h.render.JSON(w, http.StatusOK, product)
}
