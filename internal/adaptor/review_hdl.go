package adaptor

import (
	"net/http"

	"movie-review/internal/dto/request"
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service  usecase.ReviewService
	pageSize int
	log      *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, pageSize int, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		pageSize: pageSize,
		log:      log.With(zap.String("handler", "review")),
	}
}

// List handles GET /api/reviews
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	query, fieldErrs := request.ParseReviewListQuery(r, h.pageSize)
	if fieldErrs != nil {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(fieldErrs), fieldErrs)
		return
	}

	page, err := h.service.List(r.Context(), query)
	if err != nil {
		handleServiceError(w, h.log, err, "list reviews")
		return
	}

	utils.ResponseSuccess(w, page)
}

// Retrieve handles GET /api/reviews/{id}
func (h *ReviewHandler) Retrieve(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.Retrieve(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "retrieve review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// Create handles POST /api/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.service.Create(r.Context(), usecase.CallerFromContext(r.Context()), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}

// Update handles PUT /api/reviews/{id}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.service.Update(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// Patch handles PATCH /api/reviews/{id}
func (h *ReviewHandler) Patch(w http.ResponseWriter, r *http.Request) {
	var req request.PatchReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	review, err := h.service.Patch(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "patch review")
		return
	}

	utils.ResponseSuccess(w, review)
}

// Delete handles DELETE /api/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), usecase.CallerFromContext(r.Context()), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseNoContent(w)
}

// ByMovie handles GET /api/reviews/movie/{title}
func (h *ReviewHandler) ByMovie(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.ByMovie(r.Context(), pathParam(r, "title"), request.NewPaginatedRequest(r, h.pageSize))
	if err != nil {
		handleServiceError(w, h.log, err, "reviews by movie")
		return
	}

	utils.ResponseSuccess(w, page)
}

// MostLiked handles GET /api/reviews/most-liked/{title}
func (h *ReviewHandler) MostLiked(w http.ResponseWriter, r *http.Request) {
	page, err := h.service.MostLiked(r.Context(), pathParam(r, "title"), request.NewPaginatedRequest(r, h.pageSize))
	if err != nil {
		handleServiceError(w, h.log, err, "most liked reviews")
		return
	}

	utils.ResponseSuccess(w, page)
}

// Recommendations handles GET /api/reviews/recommendations
func (h *ReviewHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.service.Recommendations(r.Context(), usecase.CallerFromContext(r.Context()))
	if err != nil {
		handleServiceError(w, h.log, err, "recommendations")
		return
	}

	utils.ResponseSuccess(w, recs)
}
