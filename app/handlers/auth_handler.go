package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gostore/admin/app/helpers"
	"github.com/gostore/admin/app/models"
	"github.com/gostore/admin/app/repositories"
	"github.com/gostore/admin/app/utils/sessions"
	"github.com/unrolled/render"
)

type AuthHandler struct {
	render       *render.Render
	validate     *validator.Validate
	userRepo     repositories.UserRepositoryImpl
	sessionStore sessions.SessionStore
}

func NewAuthHandler(
	render *render.Render,
	validate *validator.Validate,
	userRepo repositories.UserRepositoryImpl,
	sessionStore sessions.SessionStore,
) *AuthHandler {
	return &AuthHandler{
		render:       render,
		validate:     validate,
		userRepo:     userRepo,
		sessionStore: sessionStore,
	}
}

type RegisterForm struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form RegisterForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	existing, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		writeDomainError(h.render, w, err, "AuthHandler.Register")
		return
	}
	if existing != nil {
		writeDomainError(h.render, w, helpers.NewConflict("email is already registered"), "AuthHandler.Register")
		return
	}

	hashed := helpers.HashPassword(form.Password)
	if hashed == "" {
		h.render.JSON(w, http.StatusInternalServerError, apiError{Error: "Internal error"})
		return
	}

	user := &models.User{
		ID:        uuid.New().String(),
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  hashed,
	}
	if err := h.userRepo.Create(r.Context(), user); err != nil {
		writeDomainError(h.render, w, err, "AuthHandler.Register")
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		writeDomainError(h.render, w, err, "AuthHandler.Register")
		return
	}

	h.render.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if !decodeJSONBody(h.render, w, r, &form) {
		return
	}
	if err := h.validate.Struct(&form); err != nil {
		writeValidationError(h.render, w, err)
		return
	}

	user, err := h.userRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		writeDomainError(h.render, w, err, "AuthHandler.Login")
		return
	}
	if user == nil || !helpers.PasswordCompare(user.Password, []byte(form.Password)) {
		h.render.JSON(w, http.StatusUnauthorized, apiError{Error: "invalid email or password"})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		writeDomainError(h.render, w, err, "AuthHandler.Login")
		return
	}

	h.render.JSON(w, http.StatusOK, user)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		writeDomainError(h.render, w, err, "AuthHandler.Logout")
		return
	}
	h.render.JSON(w, http.StatusOK, map[string]bool{"ok": true})
}
