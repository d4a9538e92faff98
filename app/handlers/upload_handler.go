package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/services"
	"github.com/unrolled/render"
)

const maxUploadSize = 10 << 20 // 10 MiB

type UploadHandler struct {
	render     *render.Render
	uploader   *services.ImageUploader
	authorizer *services.Authorizer
}

func NewUploadHandler(
	render *render.Render,
	uploader *services.ImageUploader,
	authorizer *services.Authorizer,
) *UploadHandler {
	return &UploadHandler{
		render:     render,
		uploader:   uploader,
		authorizer: authorizer,
	}
}

// Upload pushes a multipart image to the hosting provider and returns
// the hosted URL, which clients then pass back as billboard or
// product image URLs.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	storeID := mux.Vars(r)["storeId"]
	userID := helpers.UserIDFromContext(r.Context())

	if _, err := h.authorizer.AuthorizeStore(r.Context(), userID, storeID); err != nil {
		writeDomainError(h.render, w, err, "UploadHandler.Upload")
		return
	}

	if !h.uploader.Enabled() {
		h.render.JSON(w, http.StatusServiceUnavailable, apiError{Error: "image hosting is not configured"})
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		h.render.JSON(w, http.StatusBadRequest, apiError{Error: "invalid multipart form"})
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.render.JSON(w, http.StatusBadRequest, apiError{Error: "file is required"})
		return
	}
	defer file.Close()

	url, err := h.uploader.Upload(r.Context(), file)
	if err != nil {
		writeDomainError(h.render, w, err, "UploadHandler.Upload")
		return
	}

	h.render.JSON(w, http.StatusOK, map[string]string{"url": url})
}
