package adaptor

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"net/http"
	"strings"
	"time"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"stars": func(rating int) string {
		if rating < 0 {
			rating = 0
		}
		return strings.Repeat("★", rating) + strings.Repeat("☆", max(0, 5-rating))
	},
	"date": func(t time.Time) string {
		return t.Format("Jan 2, 2006")
	},
	"deref": func(p *int) int {
		if p == nil {
			return 0
		}
		return *p
	},
}

// pageTemplates holds one template set per page, each layered on base.html.
var pageTemplates = func() map[string]*template.Template {
	pages := []string{"home", "list", "detail", "search", "not_found"}
	out := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		out[name] = template.Must(template.New("base.html").Funcs(templateFuncs).
			ParseFS(templateFS, "templates/base.html", "templates/"+name+".html"))
	}
	return out
}()

// WebHandler renders the server-side pages. It only builds queries and
// templates; all data comes from the review service.
type WebHandler struct {
	reviews usecase.ReviewService
	pages   utils.PageConfig
	log     *zap.Logger
}

func NewWebHandler(reviews usecase.ReviewService, pages utils.PageConfig, log *zap.Logger) *WebHandler {
	return &WebHandler{
		reviews: reviews,
		pages:   pages,
		log:     log.With(zap.String("handler", "web")),
	}
}

// Home handles GET /
func (h *WebHandler) Home(w http.ResponseWriter, r *http.Request) {
	latest, err := h.reviews.Latest(r.Context(), h.pages.HomeLatest)
	if err != nil {
		h.fail(w, r, err, "home page")
		return
	}

	h.render(w, http.StatusOK, "home", map[string]any{
		"Title":   "Latest reviews",
		"Reviews": latest,
	})
}

// List handles GET /reviews
func (h *WebHandler) List(w http.ResponseWriter, r *http.Request) {
	query := &request.ReviewListQuery{PaginatedRequest: request.NewPaginatedRequest(r, h.pages.WebSize)}

	page, err := h.reviews.List(r.Context(), query)
	if err != nil {
		h.fail(w, r, err, "review list page")
		return
	}

	h.render(w, http.StatusOK, "list", map[string]any{
		"Title": "All reviews",
		"Page":  page,
	})
}

// Detail handles GET /reviews/{id}
func (h *WebHandler) Detail(w http.ResponseWriter, r *http.Request) {
	review, err := h.reviews.Retrieve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err, "review detail page")
		return
	}

	h.render(w, http.StatusOK, "detail", map[string]any{
		"Title":  review.MovieTitle,
		"Review": review,
	})
}

// Search handles GET /search. Results are fetched client-side from /web/api.
func (h *WebHandler) Search(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, "search", map[string]any{
		"Title": "Search movies",
		"Query": r.URL.Query().Get("query"),
	})
}

// NotFound renders the 404 page for unmatched non-API paths.
func (h *WebHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusNotFound, "not_found", map[string]any{"Title": "Page not found"})
}

func (h *WebHandler) fail(w http.ResponseWriter, r *http.Request, err error, operation string) {
	if errors.Is(err, usecase.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	h.log.Error("Failed to render "+operation, zap.Error(err))
	http.Error(w, "Server Error (500)", http.StatusInternalServerError)
}

func (h *WebHandler) render(w http.ResponseWriter, status int, name string, data map[string]any) {
	var buf bytes.Buffer
	if err := pageTemplates[name].Execute(&buf, data); err != nil {
		h.log.Error("Failed to execute template", zap.String("template", name), zap.Error(err))
		http.Error(w, "Server Error (500)", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
