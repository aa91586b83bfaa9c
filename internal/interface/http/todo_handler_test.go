package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTodo(t *testing.T, ts *testServer, token, text string) map[string]any {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/todos", token, gin.H{"text": text})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decodeJSON(t, w)
}

func TestCreateTodoRequiresAuth(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.signup(t, "a@b.com", "123abc!")

	w := ts.do(t, http.MethodPost, "/todos", "", gin.H{"text": "sneaky"})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Nothing was created.
	w = ts.do(t, http.MethodGet, "/todos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeJSON(t, w)["todos"])
}

func TestCreateTodo(t *testing.T) {
	ts := newTestServer(t)
	id, token := ts.signup(t, "a@b.com", "123abc!")

	item := createTodo(t, ts, token, "walk the dog")
	assert.Equal(t, "walk the dog", item["text"])
	assert.Equal(t, id, item["authorId"])
	assert.Equal(t, false, item["completed"])
	assert.Nil(t, item["completedAt"])
}

func TestCreateTodoValidation(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.signup(t, "a@b.com", "123abc!")

	for _, text := range []string{"", "x", "  a  "} {
		w := ts.do(t, http.MethodPost, "/todos", token, gin.H{"text": text})
		require.Equal(t, http.StatusBadRequest, w.Code, "text %q", text)
		require.Contains(t, decodeJSON(t, w), "errors")
	}
}

func TestListTodosScopedToOwner(t *testing.T) {
	ts := newTestServer(t)
	_, alice := ts.signup(t, "alice@example.com", "123abc!")
	_, bob := ts.signup(t, "bob@example.com", "123abc!")

	createTodo(t, ts, alice, "alice task one")
	createTodo(t, ts, alice, "alice task two")
	createTodo(t, ts, bob, "bob task")

	w := ts.do(t, http.MethodGet, "/todos", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	todos := decodeJSON(t, w)["todos"].([]any)
	require.Len(t, todos, 2)

	w = ts.do(t, http.MethodGet, "/todos", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	todos = decodeJSON(t, w)["todos"].([]any)
	require.Len(t, todos, 1)
	assert.Equal(t, "bob task", todos[0].(map[string]any)["text"])
}

func TestGetTodoInvalidIDIs404(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.signup(t, "a@b.com", "123abc!")

	w := ts.do(t, http.MethodGet, "/todos/123", token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestGetTodoOtherOwnerIs404(t *testing.T) {
	ts := newTestServer(t)
	_, alice := ts.signup(t, "alice@example.com", "123abc!")
	_, bob := ts.signup(t, "bob@example.com", "123abc!")

	item := createTodo(t, ts, alice, "alice only")
	id := item["id"].(string)

	// Bob cannot tell the item exists at all.
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := ts.do(t, method, "/todos/"+id, bob, nil)
		require.Equal(t, http.StatusNotFound, w.Code, method)
		assert.Empty(t, w.Body.String())
	}
	w := ts.do(t, http.MethodPatch, "/todos/"+id, bob, gin.H{"completed": true})
	require.Equal(t, http.StatusNotFound, w.Code)

	// Alice still sees it.
	w = ts.do(t, http.MethodGet, "/todos/"+id, alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPatchTodoDerivesCompletedAt(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.signup(t, "a@b.com", "123abc!")
	item := createTodo(t, ts, token, "finish report")
	id := item["id"].(string)

	w := ts.do(t, http.MethodPatch, "/todos/"+id, token, gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, true, body["completed"])
	_, isNumber := body["completedAt"].(float64)
	assert.True(t, isNumber, "completedAt must be a number when completed")

	w = ts.do(t, http.MethodPatch, "/todos/"+id, token, gin.H{"completed": false})
	require.Equal(t, http.StatusOK, w.Code)
	body = decodeJSON(t, w)
	assert.Equal(t, false, body["completed"])
	assert.Nil(t, body["completedAt"])
}

func TestPatchTodoTextOnlyClearsCompletion(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.signup(t, "a@b.com", "123abc!")
	item := createTodo(t, ts, token, "buy milk")
	id := item["id"].(string)

	w := ts.do(t, http.MethodPatch, "/todos/"+id, token, gin.H{"completed": true})
	require.Equal(t, http.StatusOK, w.Code)

	// The derivation applies on every update: omitting completed resets it.
	w = ts.do(t, http.MethodPatch, "/todos/"+id, token, gin.H{"text": "buy oat milk"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "buy oat milk", body["text"])
	assert.Equal(t, false, body["completed"])
	assert.Nil(t, body["completedAt"])
}

func TestDeleteTodoReturnsItem(t *testing.T) {
	ts := newTestServer(t)
	_, token := ts.signup(t, "a@b.com", "123abc!")
	item := createTodo(t, ts, token, "disposable")
	id := item["id"].(string)

	w := ts.do(t, http.MethodDelete, "/todos/"+id, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "disposable", decodeJSON(t, w)["text"])

	w = ts.do(t, http.MethodGet, "/todos/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// Deleting again is indistinguishable from never having existed.
	w = ts.do(t, http.MethodDelete, "/todos/"+id, token, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
