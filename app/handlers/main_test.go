package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gostore/admin/app/models/migrations"
	"github.com/gostore/admin/app/routes"
	"github.com/gostore/admin/app/utils/sessions"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// A named shared-memory database keeps the schema visible across
	// the connections gorm pools, while staying private to the test.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, migrations.AutoMigrate(db))
	return db
}

func newTestServer(t *testing.T) (*httptest.Server, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	sessionStore := sessions.NewCookieSessionStore([]byte("test-session-auth-key-0123456789"))

	router := routes.NewRouter(routes.Deps{
		DB:           db,
		SessionStore: sessionStore,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, db
}

// testClient wraps an http.Client with a cookie jar so the session
// cookie set by register/login sticks to subsequent requests.
type testClient struct {
	t   *testing.T
	srv *httptest.Server
	c   *http.Client
}

func newTestClient(t *testing.T, srv *httptest.Server) *testClient {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, srv: srv, c: &http.Client{Jar: jar}}
}

func (tc *testClient) do(method, path string, payload interface{}) (int, json.RawMessage) {
	tc.t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(tc.t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, tc.srv.URL+path, body)
	require.NoError(tc.t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.c.Do(req)
	require.NoError(tc.t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(tc.t, err)
	return resp.StatusCode, json.RawMessage(raw)
}

func (tc *testClient) decode(raw json.RawMessage, dst interface{}) {
	tc.t.Helper()
	require.NoError(tc.t, json.Unmarshal(raw, dst))
}

func errorMessage(t *testing.T, raw json.RawMessage) string {
	t.Helper()

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload.Error
}

// register creates a user and leaves its session cookie in the jar.
func (tc *testClient) register(email string) map[string]interface{} {
	tc.t.Helper()

	status, raw := tc.do("POST", "/api/auth/register", map[string]interface{}{
		"firstName": "Test",
		"lastName":  "User",
		"email":     email,
		"password":  "secret123",
	})
	require.Equal(tc.t, http.StatusOK, status, "register: %s", raw)

	var user map[string]interface{}
	tc.decode(raw, &user)
	return user
}

func (tc *testClient) createStore(name string) string {
	tc.t.Helper()

	status, raw := tc.do("POST", "/api/stores", map[string]interface{}{"name": name})
	require.Equal(tc.t, http.StatusOK, status, "create store: %s", raw)

	var store map[string]interface{}
	tc.decode(raw, &store)
	return store["id"].(string)
}

func (tc *testClient) createBillboard(storeID, label string) string {
	tc.t.Helper()

	status, raw := tc.do("POST", "/api/"+storeID+"/billboards", map[string]interface{}{
		"label":    label,
		"imageUrl": "https://example.com/" + label + ".png",
	})
	require.Equal(tc.t, http.StatusOK, status, "create billboard: %s", raw)

	var billboard map[string]interface{}
	tc.decode(raw, &billboard)
	return billboard["id"].(string)
}

func (tc *testClient) createCategory(storeID, billboardID, name string) string {
	tc.t.Helper()

	status, raw := tc.do("POST", "/api/"+storeID+"/categories", map[string]interface{}{
		"name":        name,
		"billboardId": billboardID,
	})
	require.Equal(tc.t, http.StatusOK, status, "create category: %s", raw)

	var category map[string]interface{}
	tc.decode(raw, &category)
	return category["id"].(string)
}

func (tc *testClient) createSize(storeID, name, value string) string {
	tc.t.Helper()

	status, raw := tc.do("POST", "/api/"+storeID+"/sizes", map[string]interface{}{
		"name":  name,
		"value": value,
	})
	require.Equal(tc.t, http.StatusOK, status, "create size: %s", raw)

	var size map[string]interface{}
	tc.decode(raw, &size)
	return size["id"].(string)
}

func (tc *testClient) createColor(storeID, name, value string) string {
	tc.t.Helper()

	status, raw := tc.do("POST", "/api/"+storeID+"/colors", map[string]interface{}{
		"name":  name,
		"value": value,
	})
	require.Equal(tc.t, http.StatusOK, status, "create color: %s", raw)

	var color map[string]interface{}
	tc.decode(raw, &color)
	return color["id"].(string)
}

// catalog bundles the IDs a product needs. Most product tests start
// from one of these.
type catalog struct {
	storeID     string
	billboardID string
	categoryID  string
	sizeID      string
	colorID     string
}

func (tc *testClient) createCatalog() catalog {
	tc.t.Helper()

	storeID := tc.createStore("Test Store")
	billboardID := tc.createBillboard(storeID, "hero")
	return catalog{
		storeID:     storeID,
		billboardID: billboardID,
		categoryID:  tc.createCategory(storeID, billboardID, "Shirts"),
		sizeID:      tc.createSize(storeID, "Medium", "M"),
		colorID:     tc.createColor(storeID, "Black", "#000"),
	}
}

func (tc *testClient) productPayload(cat catalog, name string, urls ...string) map[string]interface{} {
	tc.t.Helper()

	images := make([]map[string]string, 0, len(urls))
	for _, url := range urls {
		images = append(images, map[string]string{"url": url})
	}
	return map[string]interface{}{
		"name":       name,
		"price":      "19.99",
		"categoryId": cat.categoryID,
		"colorId":    cat.colorID,
		"sizeId":     cat.sizeID,
		"images":     images,
	}
}

func (tc *testClient) createProduct(cat catalog, name string, urls ...string) map[string]interface{} {
	tc.t.Helper()

	status, raw := tc.do("POST", "/api/"+cat.storeID+"/products", tc.productPayload(cat, name, urls...))
	require.Equal(tc.t, http.StatusOK, status, "create product: %s", raw)

	var product map[string]interface{}
	tc.decode(raw, &product)
	return product
}
