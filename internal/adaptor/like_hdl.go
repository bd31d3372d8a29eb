package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type LikeHandler struct {
	service  usecase.LikeService
	pageSize int
	log      *zap.Logger
}

func NewLikeHandler(service usecase.LikeService, pageSize int, log *zap.Logger) *LikeHandler {
	return &LikeHandler{
		service:  service,
		pageSize: pageSize,
		log:      log.With(zap.String("handler", "like")),
	}
}

// List handles GET /api/likes
func (h *LikeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.List(r.Context(), usecase.CallerFromContext(r.Context()), request.NewPaginatedRequest(r, h.pageSize))
	if err != nil {
		handleServiceError(w, h.log, err, "list likes")
		return
	}
	utils.ResponseSuccess(w, page)
}

// Create handles POST /api/likes
func (h *LikeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.LikeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	like, err := h.service.Create(r.Context(), usecase.CallerFromContext(r.Context()), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create like")
		return
	}
	utils.ResponseCreated(w, like)
}

// Retrieve handles GET /api/likes/{id}
func (h *LikeHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	like, err := h.service.Retrieve(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "retrieve like")
		return
	}
	utils.ResponseSuccess(w, like)
}

// Delete handles DELETE /api/likes/{id}
func (h *LikeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete like")
		return
	}
	utils.ResponseNoContent(w)
}
