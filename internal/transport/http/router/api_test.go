package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"listkeeper/internal/core/auth"
	"listkeeper/internal/repo/inmem"
	"listkeeper/internal/usecase"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "listkeeper", TTL: time.Hour}

	users := inmem.NewUserRepo()
	items := inmem.NewItemRepo()
	lists := inmem.NewListRepo(items)

	return NewAPIEngine(zap.NewNop(), jwter, Deps{
		Auth:  usecase.NewAuthService(users, jwter),
		Users: usecase.NewUserService(users),
		Items: usecase.NewItemService(items),
		Lists: usecase.NewListService(lists),
	})
}

func do(t *testing.T, e *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), "body: %s", w.Body.String())
	return out
}

func signup(t *testing.T, e *gin.Engine, name, email string) string {
	t.Helper()
	w := do(t, e, http.MethodPost, "/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, e, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	data, ok := decode(t, w)["data"].(map[string]any)
	require.True(t, ok)
	token, ok := data["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestHealth(t *testing.T) {
	e := newTestEngine(t)
	w := do(t, e, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRequired(t *testing.T) {
	e := newTestEngine(t)
	for _, path := range []string{"/items", "/lists", "/me"} {
		w := do(t, e, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.Contains(t, decode(t, w), "error")
	}

	w := do(t, e, http.MethodGet, "/items", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	e := newTestEngine(t)

	w := do(t, e, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Ana", "email": "not-an-email", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, e, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Ana", "email": "ana@example.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newTestEngine(t)
	signup(t, e, "Ana", "ana@example.com")

	w := do(t, e, http.MethodPost, "/auth/register", "", gin.H{
		"name": "Other", "email": "ana@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "user already exists", decode(t, w)["error"])
}

func TestLoginFailures(t *testing.T) {
	e := newTestEngine(t)
	signup(t, e, "Ana", "ana@example.com")

	w := do(t, e, http.MethodPost, "/auth/login", "", gin.H{
		"email": "ana@example.com", "password": "wrong-1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(t, e, http.MethodPost, "/auth/login", "", gin.H{
		"email": "nobody@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Full flow: register, login, create a list, create an item attached to it,
// then read the list back with its item hydrated.
func TestListWithItemsFlow(t *testing.T) {
	e := newTestEngine(t)
	token := signup(t, e, "Ana", "ana@example.com")

	w := do(t, e, http.MethodPost, "/lists", token, gin.H{
		"name": "Groceries", "description": "weekly shop",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, e, http.MethodGet, "/lists", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(1), body["total"])
	rows, ok := body["data"].([]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	listUUID, ok := rows[0].(map[string]any)["uuid"].(string)
	require.True(t, ok)

	w = do(t, e, http.MethodPost, "/items", token, gin.H{
		"name": "Milk", "description": "whole", "value": 3.50, "listId": listUUID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, e, http.MethodGet, "/lists/"+listUUID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	list, ok := decode(t, w)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Groceries", list["name"])
	got, ok := list["items"].([]any)
	require.True(t, ok)
	require.Len(t, got, 1)
	item := got[0].(map[string]any)
	assert.Equal(t, "Milk", item["name"])
	assert.Equal(t, 3.50, item["value"])

	// Same membership via the items-by-list route.
	w = do(t, e, http.MethodGet, "/items/list/"+listUUID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	byList, ok := decode(t, w)["data"].([]any)
	require.True(t, ok)
	assert.Len(t, byList, 1)
}

func TestAddAndRemoveListItem(t *testing.T) {
	e := newTestEngine(t)
	token := signup(t, e, "Ana", "ana@example.com")

	w := do(t, e, http.MethodPost, "/lists", token, gin.H{"name": "Groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, e, http.MethodPost, "/items", token, gin.H{
		"name": "Milk", "description": "whole", "value": 3.50,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	listUUID := firstUUID(t, do(t, e, http.MethodGet, "/lists", token, nil))
	itemUUID := firstUUID(t, do(t, e, http.MethodGet, "/items", token, nil))

	w = do(t, e, http.MethodPost, "/lists/"+listUUID+"/items", token, gin.H{"itemUuid": itemUUID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, e, http.MethodPost, "/lists/"+listUUID+"/items", token, gin.H{"itemUuid": itemUUID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "item already in list", decode(t, w)["error"])

	w = do(t, e, http.MethodDelete, "/lists/"+listUUID+"/items", token, gin.H{"itemUuid": itemUUID})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, e, http.MethodDelete, "/lists/"+listUUID+"/items", token, gin.H{"itemUuid": itemUUID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListIsolationBetweenUsers(t *testing.T) {
	e := newTestEngine(t)
	ana := signup(t, e, "Ana", "ana@example.com")
	bob := signup(t, e, "Bob", "bob@example.com")

	w := do(t, e, http.MethodPost, "/lists", ana, gin.H{"name": "Groceries"})
	require.Equal(t, http.StatusCreated, w.Code)
	listUUID := firstUUID(t, do(t, e, http.MethodGet, "/lists", ana, nil))

	w = do(t, e, http.MethodGet, "/lists/"+listUUID, bob, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(t, e, http.MethodGet, "/lists", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), decode(t, w)["total"])
}

func TestMeLifecycle(t *testing.T) {
	e := newTestEngine(t)
	token := signup(t, e, "Ana", "ana@example.com")

	w := do(t, e, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me, ok := decode(t, w)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ana", me["name"])
	assert.NotContains(t, me, "password")

	w = do(t, e, http.MethodPut, "/me", token, gin.H{"name": "Ana Maria"})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, e, http.MethodGet, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me = decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "Ana Maria", me["name"])

	w = do(t, e, http.MethodDelete, "/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Deleted account can no longer resolve its profile.
	w = do(t, e, http.MethodGet, "/me", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func firstUUID(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rows, ok := decode(t, w)["data"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, rows)
	uuid, ok := rows[0].(map[string]any)["uuid"].(string)
	require.True(t, ok)
	return uuid
}
