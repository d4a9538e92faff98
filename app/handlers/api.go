package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gostore/admin/app/helpers"
	"github.com/unrolled/render"
	"gorm.io/gorm"
)

type apiError struct {
	Error string `json:"error"`
}

// writeDomainError maps the shared error taxonomy onto HTTP statuses:
// 401 unauthenticated, 403 forbidden, 409 conflict (including raw
// foreign key violations that slipped past a pre-delete check).
// Everything else is logged under logPrefix and collapsed to a
// generic 500.
func writeDomainError(rnd *render.Render, w http.ResponseWriter, err error, logPrefix string) {
	switch {
	case errors.Is(err, helpers.ErrUnauthenticated):
		rnd.JSON(w, http.StatusUnauthorized, apiError{Error: "Unauthenticated"})
	case errors.Is(err, helpers.ErrForbidden):
		rnd.JSON(w, http.StatusForbidden, apiError{Error: "Forbidden"})
	case errors.Is(err, helpers.ErrConflict):
		rnd.JSON(w, http.StatusConflict, apiError{Error: helpers.ConflictMessage(err)})
	case helpers.IsForeignKeyViolation(err):
		rnd.JSON(w, http.StatusConflict, apiError{Error: "resource is still referenced by other records"})
	default:
		log.Printf("%s: %v", logPrefix, err)
		rnd.JSON(w, http.StatusInternalServerError, apiError{Error: "Internal error"})
	}
}

func writeValidationError(rnd *render.Render, w http.ResponseWriter, err error) {
	rnd.JSON(w, http.StatusBadRequest, apiError{Error: helpers.FirstValidationError(err)})
}

// gormNotFound marks a mutation aimed at a missing row. It is left
// inside the generic 500 bucket on purpose: only public single GETs
// expose not-found (as a null payload).
func gormNotFound(resource, id string) error {
	return fmt.Errorf("%s %s: %w", resource, id, gorm.ErrRecordNotFound)
}

func decodeJSONBody(rnd *render.Render, w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		rnd.JSON(w, http.StatusBadRequest, apiError{Error: "invalid request body"})
		return false
	}
	return true
}
