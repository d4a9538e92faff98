package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillboardCreateRequiresSession(t *testing.T) {
	srv, _ := newTestServer(t)

	owner := newTestClient(t, srv)
	owner.register("owner@example.com")
	storeID := owner.createStore("Store")

	anon := newTestClient(t, srv)
	status, raw := anon.do("POST", "/api/"+storeID+"/billboards", map[string]interface{}{
		"label":    "hero",
		"imageUrl": "https://example.com/hero.png",
	})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthenticated", errorMessage(t, raw))
}

func TestBillboardCreateForeignStoreForbidden(t *testing.T) {
	srv, _ := newTestServer(t)

	owner := newTestClient(t, srv)
	owner.register("owner@example.com")
	storeID := owner.createStore("Store")

	intruder := newTestClient(t, srv)
	intruder.register("intruder@example.com")

	status, raw := intruder.do("POST", "/api/"+storeID+"/billboards", map[string]interface{}{
		"label":    "hero",
		"imageUrl": "https://example.com/hero.png",
	})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", errorMessage(t, raw))
}

func TestBillboardValidationOrder(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("owner@example.com")
	storeID := tc.createStore("Store")

	status, raw := tc.do("POST", "/api/"+storeID+"/billboards", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "label is required", errorMessage(t, raw))

	status, raw = tc.do("POST", "/api/"+storeID+"/billboards", map[string]interface{}{"label": "hero"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "imageUrl is required", errorMessage(t, raw))
}

func TestBillboardListAndGet(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("owner@example.com")
	storeID := tc.createStore("Store")

	first := tc.createBillboard(storeID, "first")
	time.Sleep(5 * time.Millisecond)
	tc.createBillboard(storeID, "second")

	// Listing is public and newest first.
	anon := newTestClient(t, srv)
	status, raw := anon.do("GET", "/api/"+storeID+"/billboards", nil)
	require.Equal(t, http.StatusOK, status)

	var billboards []map[string]interface{}
	anon.decode(raw, &billboards)
	require.Len(t, billboards, 2)
	assert.Equal(t, "second", billboards[0]["label"])
	assert.Equal(t, "first", billboards[1]["label"])

	status, raw = anon.do("GET", "/api/"+storeID+"/billboards/"+first, nil)
	require.Equal(t, http.StatusOK, status)
	var billboard map[string]interface{}
	anon.decode(raw, &billboard)
	assert.Equal(t, "first", billboard["label"])
}

func TestBillboardGetMissingReturnsNull(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("owner@example.com")
	storeID := tc.createStore("Store")

	status, raw := tc.do("GET", "/api/"+storeID+"/billboards/no-such-id", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", string(raw))
}

func TestBillboardUpdate(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("owner@example.com")
	storeID := tc.createStore("Store")
	billboardID := tc.createBillboard(storeID, "old")

	status, raw := tc.do("PATCH", "/api/"+storeID+"/billboards/"+billboardID, map[string]interface{}{
		"label":    "new",
		"imageUrl": "https://example.com/new.png",
	})
	require.Equal(t, http.StatusOK, status, "%s", raw)

	var billboard map[string]interface{}
	tc.decode(raw, &billboard)
	assert.Equal(t, "new", billboard["label"])
	assert.Equal(t, "https://example.com/new.png", billboard["imageUrl"])
}

func TestBillboardDeleteBlockedByCategories(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("owner@example.com")
	storeID := tc.createStore("Store")
	billboardID := tc.createBillboard(storeID, "hero")
	tc.createCategory(storeID, billboardID, "Shirts")

	status, raw := tc.do("DELETE", "/api/"+storeID+"/billboards/"+billboardID, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "billboard is still used by 1 categories; remove them first", errorMessage(t, raw))

	// Still listed after the refused delete.
	status, raw = tc.do("GET", "/api/"+storeID+"/billboards", nil)
	require.Equal(t, http.StatusOK, status)
	var billboards []map[string]interface{}
	tc.decode(raw, &billboards)
	assert.Len(t, billboards, 1)
}

func TestBillboardDelete(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("owner@example.com")
	storeID := tc.createStore("Store")
	billboardID := tc.createBillboard(storeID, "hero")

	status, _ := tc.do("DELETE", "/api/"+storeID+"/billboards/"+billboardID, nil)
	require.Equal(t, http.StatusOK, status)

	status, raw := tc.do("GET", "/api/"+storeID+"/billboards/"+billboardID, nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "null", string(raw))
}
