package omdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"movie-review/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(utils.OMDbConfig{
		APIKey:  "secret",
		BaseURL: srv.URL + "/",
		Timeout: 2 * time.Second,
	}, zap.NewNop())
}

func TestClient_FetchByTitle(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "Inception", q.Get("t"))
		assert.Equal(t, "full", q.Get("plot"))
		assert.Equal(t, "secret", q.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Title":"Inception","Year":"2010","imdbID":"tt1375666","Plot":"Dreams.","Response":"True"}`))
	})

	movie := client.FetchByTitle(context.Background(), "Inception")
	require.NotNil(t, movie)
	assert.Equal(t, "tt1375666", movie.IMDbID)
	assert.Equal(t, "Dreams.", movie.Plot)
}

func TestClient_FetchByIMDbID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tt0133093", r.URL.Query().Get("i"))
		_, _ = w.Write([]byte(`{"Title":"The Matrix","imdbID":"tt0133093","Response":"True"}`))
	})

	movie := client.FetchByIMDbID(context.Background(), "tt0133093")
	require.NotNil(t, movie)
	assert.Equal(t, "The Matrix", movie.Title)
}

func TestClient_NoDataCases(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found sentinel",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`<html>`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, tt.handler)
			assert.Nil(t, client.FetchByTitle(context.Background(), "Nope"))
			assert.Nil(t, client.Search(context.Background(), "Nope"))
		})
	}
}

func TestClient_SingleAttempt(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	assert.Nil(t, client.FetchByTitle(context.Background(), "Inception"))
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(utils.OMDbConfig{APIKey: "secret", BaseURL: srv.URL, Timeout: time.Second}, zap.NewNop())
	assert.Nil(t, client.FetchByIMDbID(context.Background(), "tt1"))
}

func TestClient_MissingAPIKey(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	client := NewClient(utils.OMDbConfig{BaseURL: srv.URL, Timeout: time.Second}, zap.NewNop())
	assert.Nil(t, client.FetchByTitle(context.Background(), "Inception"))
	assert.Zero(t, calls.Load())
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "matrix", q.Get("s"))
		assert.Equal(t, "movie", q.Get("type"))
		_, _ = w.Write([]byte(`{"Search":[{"Title":"The Matrix","Year":"1999","imdbID":"tt0133093","Type":"movie","Poster":"N/A"}],"totalResults":"1","Response":"True"}`))
	})

	results := client.Search(context.Background(), "matrix")
	require.Len(t, results, 1)
	assert.Equal(t, "tt0133093", results[0].IMDbID)
}

func TestRedact(t *testing.T) {
	params := map[string][]string{"t": {"Up"}, "apikey": {"secret"}}
	assert.Equal(t, "t=Up", redact(params))
}
