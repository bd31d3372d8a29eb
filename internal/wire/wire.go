package wire

import (
	"net/http"
	"strings"

	"movie-review/internal/adaptor"
	"movie-review/internal/data/repository"
	"movie-review/internal/docs"
	"movie-review/internal/omdb"
	"movie-review/internal/usecase"
	"movie-review/pkg/middleware"
	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of the repositories and
// registers every route.
func Wiring(
	repo *repository.Repository,
	tokens *token.Manager,
	metadata omdb.MetadataClient,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, tokens, metadata, logger)
	handler := adaptor.NewHandler(service, config.Page, logger)

	return &App{
		Router: setupRouter(handler, tokens, config, logger),
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens *token.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Metrics(config.App.Name))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   config.App.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(chimw.StripSlashes)

	limiter := httprate.LimitByIP(config.RateLimit.Requests, config.RateLimit.Window)

	r.Route("/api", func(api chi.Router) {
		api.Use(limiter)
		api.Use(middleware.Authenticate(tokens, logger))

		api.Get("/", handler.Index.Root)

		wireAuth(api, handler.Auth)
		wireUser(api, handler.User, handler.Profile)
		wireReview(api, handler.Review)
		wireSocial(api, handler.Like, handler.Comment)
		wireMovie(api, handler.Movie, true)
	})

	r.Route("/web/api", func(web chi.Router) {
		web.Use(limiter)
		wireMovie(web, handler.Movie, false)
	})

	wireWeb(r, handler.Web)
	wireDocs(r)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if isAPIPath(req.URL.Path) {
			utils.ResponseNotFound(w, "Not found.")
			return
		}
		handler.Web.NotFound(w, req)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, `Method "`+req.Method+`" not allowed.`, nil)
	})

	return r
}

func wireDocs(r chi.Router) {
	r.Get("/swagger", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/swagger/index.html", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Get("/redoc", docs.Redoc)
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/web/api/")
}
