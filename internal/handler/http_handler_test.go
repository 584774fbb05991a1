package handler

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

	"github.com/weiawesome/idkit/internal/generator"
	"github.com/weiawesome/idkit/pkg/timestamp"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	seq, err := generator.NewSequenceGenerator(6, false)
	require.NoError(t, err)
	ext, err := generator.NewExternalGenerator("user")
	require.NoError(t, err)

	reg := generator.Registry{
		generator.KindSequence: seq,
		generator.KindExternal: ext,
		generator.KindUUID:     generator.NewUUIDGenerator(),
	}

	r := gin.New()
	NewHandler(reg).RegisterRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.True(t, env.Success, "expected success envelope, got %s", w.Body.String())
	require.NoError(t, json.Unmarshal(env.Data, out))
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Status  string `json:"status"`
		Service string `json:"service"`
		Time    string `json:"time"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "idkit", body.Service)

	_, err := time.Parse(timestamp.Layout, body.Time)
	assert.NoError(t, err, "health timestamp %q must be well-formed", body.Time)
}

func TestListKinds(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/kinds", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Kinds []string `json:"kinds"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, []string{"external", "sequence", "uuid"}, data.Kinds)
}

func TestGenerateDefaultsToOne(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ids/sequence/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Kind  string   `json:"kind"`
		Count int      `json:"count"`
		IDs   []string `json:"ids"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, "sequence", data.Kind)
	assert.Equal(t, 1, data.Count)
	assert.Equal(t, []string{"BAAAAA"}, data.IDs)
}

func TestGenerateBatch(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ids/uuid/generate", gin.H{"count": 5})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Count int      `json:"count"`
		IDs   []string `json:"ids"`
	}
	decodeData(t, w, &data)
	require.Equal(t, 5, data.Count)
	require.Len(t, data.IDs, 5)

	seen := make(map[string]struct{})
	for _, id := range data.IDs {
		assert.Len(t, id, 36)
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 5)
}

func TestGenerateCountBounds(t *testing.T) {
	r := newTestRouter(t)

	for _, count := range []int{0, -1, 1001} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/ids/uuid/generate", gin.H{"count": count})
		assert.Equal(t, http.StatusBadRequest, w.Code, "count %d must be rejected", count)
	}
}

func TestUnknownKind(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/v1/ids/flake/generate",
		"/api/v1/ids/flake/validate",
		"/api/v1/ids/flake/parse",
	} {
		w := doJSON(t, r, http.MethodPost, path, gin.H{"id": "x"})
		require.Equal(t, http.StatusNotFound, w.Code, "path %s", path)

		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.False(t, env.Success)
		require.NotNil(t, env.Error)
		assert.Equal(t, "NOT_FOUND", env.Error.Code)
	}
}

func TestValidate(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ids/sequence/validate", gin.H{"id": "BAAAAA"})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Valid  bool   `json:"valid"`
		Reason string `json:"reason"`
	}
	decodeData(t, w, &data)
	assert.True(t, data.Valid)
	assert.Empty(t, data.Reason)

	w = doJSON(t, r, http.MethodPost, "/api/v1/ids/sequence/validate", gin.H{"id": "nope"})
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &data)
	assert.False(t, data.Valid)
	assert.NotEmpty(t, data.Reason)
}

func TestValidateRequiresID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ids/sequence/validate", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseSequence(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ids/sequence/parse", gin.H{"id": "CAAAAA"})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Kind   string `json:"kind"`
		ID     string `json:"id"`
		Parsed struct {
			Value uint64 `json:"value"`
			Width int    `json:"width"`
		} `json:"parsed"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, "sequence", data.Kind)
	assert.Equal(t, "CAAAAA", data.ID)
	assert.Equal(t, uint64(2), data.Parsed.Value)
	assert.Equal(t, 6, data.Parsed.Width)
}

func TestParseExternal(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ids/external/generate", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var gen struct {
		IDs []string `json:"ids"`
	}
	decodeData(t, w, &gen)
	require.Len(t, gen.IDs, 1)

	w = doJSON(t, r, http.MethodPost, "/api/v1/ids/external/parse", gin.H{"id": gen.IDs[0]})
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Parsed struct {
			Prefix string `json:"prefix"`
			UUID   string `json:"uuid"`
		} `json:"parsed"`
	}
	decodeData(t, w, &data)
	assert.Equal(t, "user", data.Parsed.Prefix)
	assert.Len(t, data.Parsed.UUID, 36)
}

func TestParseMalformed(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/ids/sequence/parse", gin.H{"id": "!!!!!!"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}
