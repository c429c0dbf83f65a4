package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/scramble/internal/dict"
	"github.com/robalobadob/scramble/internal/store"
	"github.com/robalobadob/scramble/internal/words"
)

// newTestServer builds a Server with an in-memory store and a fixed
// dictionary. The DB handle is nil: the game routes never touch it.
func newTestServer(t *testing.T) *Server {
	t.Helper()
	d := dict.NewMemory()
	d.Add("en", "silk", "worm", "mist", "work")
	return New(store.NewMemoryStore(), nil, d)
}

// doJSON posts body to path and decodes the JSON response into out.
func doJSON(t *testing.T, s *Server, method, path string, body, out any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestGameFlow(t *testing.T) {
	s := newTestServer(t)

	var created newSessionRes
	rec := doJSON(t, s, http.MethodPost, "/game/new", newSessionReq{Root: "silkworm"}, &created)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, created.SessionID)
	assert.Equal(t, "silkworm", created.Root)
	assert.Equal(t, "en", created.Language)

	submit := func(word string) submitRes {
		var out submitRes
		rec := doJSON(t, s, http.MethodPost, "/game/submit",
			submitReq{SessionID: created.SessionID, Word: word}, &out)
		require.Equal(t, http.StatusOK, rec.Code)
		return out
	}

	res := submit("silk")
	assert.True(t, res.Accepted)
	assert.Equal(t, 5, res.Score)

	res = submit("worm")
	assert.True(t, res.Accepted)
	assert.Equal(t, 10, res.Score)
	assert.Equal(t, []string{"worm", "silk"}, res.Used)

	// The rejection reasons surface verbatim, in check order.
	assert.Equal(t, "duplicate", submit(" SILK ").Reason)
	assert.Equal(t, "too short", submit("is").Reason)
	assert.Equal(t, "is root word", submit("silkworm").Reason)
	assert.Equal(t, "not spellable from root", submit("silks").Reason)
	assert.Equal(t, "not a real word", submit("milk").Reason)

	// Rejections never change state.
	var got sessionRes
	rec = doJSON(t, s, http.MethodGet, "/game/"+created.SessionID, nil, &got)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, got.Score)
	assert.Equal(t, []string{"worm", "silk"}, got.Used)
}

func TestGameReset(t *testing.T) {
	s := newTestServer(t)

	var created newSessionRes
	doJSON(t, s, http.MethodPost, "/game/new", newSessionReq{Root: "silkworm"}, &created)

	var sub submitRes
	doJSON(t, s, http.MethodPost, "/game/submit",
		submitReq{SessionID: created.SessionID, Word: "silk"}, &sub)
	require.True(t, sub.Accepted)

	var reset resetRes
	rec := doJSON(t, s, http.MethodPost, "/game/reset",
		resetReq{SessionID: created.SessionID, Root: "notebook"}, &reset)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "notebook", reset.Root)

	var got sessionRes
	doJSON(t, s, http.MethodGet, "/game/"+created.SessionID, nil, &got)
	assert.Zero(t, got.Score)
	assert.Empty(t, got.Used)
	assert.Equal(t, "notebook", got.Root)
}

func TestSubmitUnknownSession(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/game/submit",
		submitReq{SessionID: "nope", Word: "silk"}, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetUnknownSession(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/game/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDebugWordsStats(t *testing.T) {
	require.NoError(t, words.Init())
	s := newTestServer(t)

	var out map[string]int
	rec := doJSON(t, s, http.MethodGet, "/debug/words", nil, &out)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Greater(t, out["roots"], 0)
	assert.Equal(t, 4, out["dictionary"]) // the fixed test dictionary
}

func TestNotFoundIsJSON(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/definitely/not/here", nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"not_found"`)
}
