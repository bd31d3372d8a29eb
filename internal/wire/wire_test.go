package wire

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movie-review/internal/data/repository"
	"movie-review/internal/omdb"
	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*App, *token.Manager, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	config := &utils.Config{
		App:       utils.AppConfig{Name: "movie-review-test", CORSOrigins: []string{"*"}},
		Page:      utils.PageConfig{Size: 10, WebSize: 12, HomeLatest: 6},
		RateLimit: utils.RateLimitConfig{Requests: 1000, Window: time.Minute},
	}
	tokens := token.NewManager("secret", config.App.Name, time.Minute, time.Hour)
	logger := zap.NewNop()

	app := Wiring(repository.NewRepository(mock, logger), tokens, omdb.NewClient(utils.OMDbConfig{}, logger), config, logger)
	return app, tokens, mock
}

func TestRouter_PublicSurface(t *testing.T) {
	app, _, _ := newTestApp(t)

	tests := []struct {
		name        string
		method      string
		path        string
		code        int
		contentType string
	}{
		{"health", http.MethodGet, "/health", http.StatusOK, ""},
		{"api index", http.MethodGet, "/api/", http.StatusOK, "application/json"},
		{"api index without slash", http.MethodGet, "/api", http.StatusOK, "application/json"},
		{"swagger document", http.MethodGet, "/swagger/doc.json", http.StatusOK, ""},
		{"redoc", http.MethodGet, "/redoc/", http.StatusOK, "text/html; charset=utf-8"},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK, ""},
		{"search page", http.MethodGet, "/search/", http.StatusOK, "text/html; charset=utf-8"},
		{"unknown api path", http.MethodGet, "/api/nope/", http.StatusNotFound, "application/json"},
		{"unknown page", http.MethodGet, "/nope", http.StatusNotFound, "text/html; charset=utf-8"},
		{"public movie search needs a query", http.MethodGet, "/web/api/search-movies/", http.StatusBadRequest, "application/json"},
		{"public search without metadata key", http.MethodGet, "/web/api/search-movies/?query=heat", http.StatusOK, "application/json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.code, rec.Code)
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			}
		})
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	app, _, _ := newTestApp(t)

	routes := []struct{ method, path string }{
		{http.MethodPost, "/api/reviews/"},
		{http.MethodGet, "/api/reviews/recommendations/"},
		{http.MethodDelete, "/api/reviews/" + uuid.NewString() + "/"},
		{http.MethodGet, "/api/likes/"},
		{http.MethodPost, "/api/comments/"},
		{http.MethodGet, "/api/profiles/"},
		{http.MethodGet, "/api/search-movies/?query=heat"},
		{http.MethodGet, "/api/movie-details/tt0113277/"},
		{http.MethodPost, "/api/logout/"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			app.Router.ServeHTTP(rec, httptest.NewRequest(rt.method, rt.path, nil))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"detail":"Authentication credentials were not provided."}`, rec.Body.String())
		})
	}
}

func TestRouter_BadTokenOnPublicRoute(t *testing.T) {
	app, _, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/reviews/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_AuthenticatedMetadataRoute(t *testing.T) {
	app, tokens, _ := newTestApp(t)

	access, err := tokens.GenerateAccessToken(uuid.New(), "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/movie-info/?title=Heat", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	// no API key configured: the lookup yields nothing
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"Movie not found"}`, rec.Body.String())
}

func TestRouter_ReviewListHitsStore(t *testing.T) {
	app, _, mock := newTestApp(t)

	mock.ExpectQuery(`SELECT COUNT\(\*\)`).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(0)))
	mock.ExpectQuery(`SELECT`).WithArgs(10, 0).WillReturnRows(pgxmock.NewRows(
		[]string{"id", "user_id", "movie_title", "review_content", "rating", "created_date", "username"}))

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/reviews/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":0,"page":1,"page_size":10,"total_pages":0,"next":null,"previous":null,"results":[]}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	app, _, _ := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/register/", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
