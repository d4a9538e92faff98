package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateRequiresSession(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)

	status, raw := tc.do("POST", "/api/stores", map[string]interface{}{"name": "My Store"})
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Unauthenticated", errorMessage(t, raw))
}

func TestStoreCreateAndListOwnOnly(t *testing.T) {
	srv, _ := newTestServer(t)

	alice := newTestClient(t, srv)
	alice.register("alice@example.com")
	alice.createStore("Alice One")
	time.Sleep(5 * time.Millisecond)
	alice.createStore("Alice Two")

	bob := newTestClient(t, srv)
	bob.register("bob@example.com")
	bob.createStore("Bob Store")

	status, raw := alice.do("GET", "/api/stores", nil)
	require.Equal(t, http.StatusOK, status)

	var stores []map[string]interface{}
	alice.decode(raw, &stores)
	require.Len(t, stores, 2)
	// Newest first.
	assert.Equal(t, "Alice Two", stores[0]["name"])
	assert.Equal(t, "Alice One", stores[1]["name"])
}

func TestStoreCreateMissingName(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("merchant@example.com")

	status, raw := tc.do("POST", "/api/stores", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "name is required", errorMessage(t, raw))
}

func TestStoreUpdateForeignStoreForbidden(t *testing.T) {
	srv, _ := newTestServer(t)

	alice := newTestClient(t, srv)
	alice.register("alice@example.com")
	storeID := alice.createStore("Alice Store")

	bob := newTestClient(t, srv)
	bob.register("bob@example.com")

	status, raw := bob.do("PATCH", "/api/stores/"+storeID, map[string]interface{}{"name": "Hijacked"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "Forbidden", errorMessage(t, raw))

	status, raw = alice.do("PATCH", "/api/stores/"+storeID, map[string]interface{}{"name": "Renamed"})
	require.Equal(t, http.StatusOK, status)

	var store map[string]interface{}
	alice.decode(raw, &store)
	assert.Equal(t, "Renamed", store["name"])
}

func TestStoreDeleteBlockedByDependents(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("merchant@example.com")

	cat := tc.createCatalog()
	tc.createProduct(cat, "Tee", "https://example.com/tee.png")

	status, raw := tc.do("DELETE", "/api/stores/"+cat.storeID, nil)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "store still has 1 billboards, 1 products and 0 orders; remove them first", errorMessage(t, raw))
}

func TestStoreDeleteEmptyStore(t *testing.T) {
	srv, _ := newTestServer(t)
	tc := newTestClient(t, srv)
	tc.register("merchant@example.com")
	storeID := tc.createStore("Empty Store")

	status, raw := tc.do("DELETE", "/api/stores/"+storeID, nil)
	require.Equal(t, http.StatusOK, status)

	var store map[string]interface{}
	tc.decode(raw, &store)
	assert.Equal(t, "Empty Store", store["name"])

	status, raw = tc.do("GET", "/api/stores", nil)
	require.Equal(t, http.StatusOK, status)
	var stores []map[string]interface{}
	tc.decode(raw, &stores)
	assert.Empty(t, stores)
}
