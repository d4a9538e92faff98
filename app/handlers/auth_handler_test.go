package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)

	user := tc.register("merchant@example.com")
	assert.Equal(t, "merchant@example.com", user["email"])
	assert.NotEmpty(t, user["id"])
	_, hasPassword := user["password"]
	assert.False(t, hasPassword, "password hash must not be serialized")

	// The register call left a session cookie behind, so an
	// authenticated endpoint works immediately.
	status, _ := tc.do("GET", "/api/stores", nil)
	assert.Equal(t, http.StatusOK, status)

	fresh := newTestClient(t, srv)
	status, raw := fresh.do("POST", "/api/auth/login", map[string]interface{}{
		"email":    "merchant@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, status, "login: %s", raw)

	status, _ = fresh.do("GET", "/api/stores", nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("taken@example.com")

	status, raw := newTestClient(t, srv).do("POST", "/api/auth/register", map[string]interface{}{
		"firstName": "Other",
		"lastName":  "User",
		"email":     "taken@example.com",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "email is already registered", errorMessage(t, raw))
}

func TestRegisterValidationFirstFailureWins(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)

	// Every field is missing; only the first declared one is reported.
	status, raw := tc.do("POST", "/api/auth/register", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "firstName is required", errorMessage(t, raw))

	status, raw = tc.do("POST", "/api/auth/register", map[string]interface{}{
		"firstName": "Test",
		"lastName":  "User",
		"email":     "not-an-email",
		"password":  "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "email must be a valid email address", errorMessage(t, raw))
}

func TestLoginWrongCredentials(t *testing.T) {
	srv, _ := newTestServer(t)
	newTestClient(t, srv).register("merchant@example.com")

	tc := newTestClient(t, srv)

	status, raw := tc.do("POST", "/api/auth/login", map[string]interface{}{
		"email":    "merchant@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "invalid email or password", errorMessage(t, raw))

	status, _ = tc.do("POST", "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestLogoutDropsSession(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("merchant@example.com")

	status, _ := tc.do("POST", "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, status)

	status, raw := tc.do("GET", "/api/stores", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthenticated", errorMessage(t, raw))
}
