package docs

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocument(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Swagger string                    `json:"swagger"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))

	assert.Equal(t, "2.0", parsed.Swagger)
	assert.Contains(t, parsed.Paths, "/api/reviews/most-liked/{title}/")
	assert.Contains(t, parsed.Paths["/api/reviews/{id}/"], "patch")
	assert.Contains(t, parsed.Paths, "/web/api/movie-info/")
}

func TestRedoc(t *testing.T) {
	rec := httptest.NewRecorder()
	Redoc(rec, httptest.NewRequest(http.MethodGet, "/redoc", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `spec-url="/swagger/doc.json"`)
}
