package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service  usecase.UserService
	pageSize int
	log      *zap.Logger
}

func NewUserHandler(service usecase.UserService, pageSize int, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		pageSize: pageSize,
		log:      log.With(zap.String("handler", "user")),
	}
}

// List handles GET /api/users
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), request.NewPaginatedRequest(r, h.pageSize))
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}
	utils.ResponseSuccess(w, page)
}

// Retrieve handles GET /api/users/{id}
func (h *UserHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Retrieve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "retrieve user")
		return
	}
	utils.ResponseSuccess(w, user)
}

// Profile handles GET /api/users/{id}/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Profile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "user profile")
		return
	}
	utils.ResponseSuccess(w, profile)
}

// Reviews handles GET /api/users/{id}/reviews
func (h *UserHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.Reviews(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "user reviews")
		return
	}
	utils.ResponseSuccess(w, reviews)
}
