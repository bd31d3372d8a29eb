package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/internal/omdb"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewService interface {
	List(ctx context.Context, q *request.ReviewListQuery) (*response.Page[[]response.ReviewResponse], error)
	Retrieve(ctx context.Context, id string) (*response.ReviewDetailResponse, error)
	Create(ctx context.Context, caller Caller, req *request.ReviewRequest) (*response.ReviewResponse, error)
	Update(ctx context.Context, caller Caller, id string, req *request.ReviewRequest) (*response.ReviewResponse, error)
	Patch(ctx context.Context, caller Caller, id string, req *request.PatchReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error

	// Custom read actions
	ByMovie(ctx context.Context, title string, p request.PaginatedRequest) (*response.Page[response.MovieReviewsResponse], error)
	MostLiked(ctx context.Context, title string, p request.PaginatedRequest) (*response.Page[[]response.ReviewResponse], error)
	Recommendations(ctx context.Context, caller Caller) (*response.RecommendationsResponse, error)
	Latest(ctx context.Context, n int) ([]response.ReviewResponse, error)
}

type reviewService struct {
	repo     *repository.Repository
	metadata omdb.MetadataClient
	log      *zap.Logger
	now      func() time.Time
}

func NewReviewService(repo *repository.Repository, metadata omdb.MetadataClient, log *zap.Logger) ReviewService {
	return &reviewService{
		repo:     repo,
		metadata: metadata,
		log:      log.With(zap.String("service", "review")),
		now:      time.Now,
	}
}

var (
	errEditForbidden   = newError(ErrForbidden, "You do not have permission to edit this review.")
	errDeleteForbidden = newError(ErrForbidden, "You do not have permission to delete this review.")
)

func (s *reviewService) List(ctx context.Context, q *request.ReviewListQuery) (*response.Page[[]response.ReviewResponse], error) {
	count, err := s.repo.Review.Count(ctx, q.Filter)
	if err != nil {
		return nil, fmt.Errorf("count reviews: %w", err)
	}
	if err := checkPage(q.PaginatedRequest, count); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.List(ctx, q.Filter, q.Limit(), q.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	results, err := s.represent(ctx, reviews, nil)
	if err != nil {
		return nil, err
	}

	return response.NewPage(results, q.Page, q.Limit(), count), nil
}

// Retrieve returns the review with live metadata; a failed lookup leaves
// MovieInfo nil and is not an error.
func (s *reviewService) Retrieve(ctx context.Context, id string) (*response.ReviewDetailResponse, error) {
	review, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	results, err := s.represent(ctx, []*entity.Review{review}, nil)
	if err != nil {
		return nil, err
	}

	return &response.ReviewDetailResponse{
		ReviewResponse: results[0],
		MovieInfo:      s.metadata.FetchByTitle(ctx, review.MovieTitle),
	}, nil
}

func (s *reviewService) Create(ctx context.Context, caller Caller, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		s.log.Warn("Create review validation failed", zap.Any("errors", ErrorFields(err)))
		return nil, err
	}

	review := &entity.Review{
		ID:            uuid.New(),
		UserID:        caller.ID,
		MovieTitle:    req.MovieTitle,
		ReviewContent: req.ReviewContent,
		Rating:        *req.Rating,
		CreatedDate:   s.now().UTC(),
		Username:      caller.Username,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", caller.ID.String()),
		zap.String("movie_title", review.MovieTitle),
		zap.Int("rating", review.Rating),
	)

	resp := response.ReviewToResponse(review, 0, nil)
	return &resp, nil
}

func (s *reviewService) Update(ctx context.Context, caller Caller, id string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	return s.modify(ctx, caller, id, func() (*request.PatchReviewRequest, error) {
		if err := validate(req); err != nil {
			return nil, err
		}
		return req.Patch(), nil
	})
}

func (s *reviewService) Patch(ctx context.Context, caller Caller, id string, req *request.PatchReviewRequest) (*response.ReviewResponse, error) {
	return s.modify(ctx, caller, id, func() (*request.PatchReviewRequest, error) {
		if err := validate(req); err != nil {
			return nil, err
		}
		return req, nil
	})
}

// modify loads the review, checks ownership, then validates and applies the
// change. Owner and created_date are never touched.
func (s *reviewService) modify(ctx context.Context, caller Caller, id string, prepare func() (*request.PatchReviewRequest, error)) (*response.ReviewResponse, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}

	review, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(review.UserID) {
		s.log.Warn("Review edit denied",
			zap.String("review_id", review.ID.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return nil, errEditForbidden
	}

	patch, err := prepare()
	if err != nil {
		return nil, err
	}

	if patch.MovieTitle != nil {
		review.MovieTitle = *patch.MovieTitle
	}
	if patch.ReviewContent != nil {
		review.ReviewContent = *patch.ReviewContent
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}

	if err := s.repo.Review.Update(ctx, review); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.String("review_id", review.ID.String()))

	results, err := s.represent(ctx, []*entity.Review{review}, nil)
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

func (s *reviewService) Delete(ctx context.Context, caller Caller, id string) error {
	if err := caller.require(); err != nil {
		return err
	}

	review, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Owns(review.UserID) {
		s.log.Warn("Review delete denied",
			zap.String("review_id", review.ID.String()),
			zap.String("caller_id", caller.ID.String()),
		)
		return errDeleteForbidden
	}

	if err := s.repo.Review.Delete(ctx, review.ID); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}

func (s *reviewService) ByMovie(ctx context.Context, title string, p request.PaginatedRequest) (*response.Page[response.MovieReviewsResponse], error) {
	filter := repository.ReviewFilter{MovieTitle: title}

	count, err := s.repo.Review.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count reviews for %q: %w", title, err)
	}
	if err := checkPage(p, count); err != nil {
		return nil, err
	}

	reviews, err := s.repo.Review.List(ctx, filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("list reviews for %q: %w", title, err)
	}

	results, err := s.represent(ctx, reviews, nil)
	if err != nil {
		return nil, err
	}

	body := response.MovieReviewsResponse{
		MovieInfo: s.metadata.FetchByTitle(ctx, title),
		Reviews:   results,
	}
	return response.NewPage(body, p.Page, p.Limit(), count), nil
}

// MostLiked sorts every review of title by like count, highest first, keeping
// the default order among equal counts, then slices out the requested page.
func (s *reviewService) MostLiked(ctx context.Context, title string, p request.PaginatedRequest) (*response.Page[[]response.ReviewResponse], error) {
	reviews, err := s.repo.Review.List(ctx, repository.ReviewFilter{MovieTitle: title}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list reviews for %q: %w", title, err)
	}

	counts, err := s.repo.Like.CountByReviewIDs(ctx, reviewIDs(reviews))
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}

	sort.SliceStable(reviews, func(i, j int) bool {
		return counts[reviews[i].ID] > counts[reviews[j].ID]
	})

	count := int64(len(reviews))
	if err := checkPage(p, count); err != nil {
		return nil, err
	}

	start, end := utils.PageBounds(len(reviews), p.Page, p.Limit())
	results, err := s.represent(ctx, reviews[start:end], counts)
	if err != nil {
		return nil, err
	}

	return response.NewPage(results, p.Page, p.Limit(), count), nil
}

// Recommendations suggests titles that users with overlapping taste rated
// highly. Titles are distinct, unscored and returned in alphabetical order.
func (s *reviewService) Recommendations(ctx context.Context, caller Caller) (*response.RecommendationsResponse, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}

	resp := &response.RecommendationsResponse{Recommendations: []string{}}

	mine, err := s.repo.Review.FindHighlyRatedTitles(ctx, caller.ID, entity.HighRating)
	if err != nil {
		return nil, fmt.Errorf("find highly rated titles: %w", err)
	}
	if len(mine) == 0 {
		return resp, nil
	}

	similar, err := s.repo.Review.FindUsersRatingTitles(ctx, mine, entity.HighRating, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("find similar users: %w", err)
	}
	if len(similar) == 0 {
		return resp, nil
	}

	theirs, err := s.repo.Review.FindTitlesRatedByUsers(ctx, similar, entity.HighRating)
	if err != nil {
		return nil, fmt.Errorf("find titles of similar users: %w", err)
	}

	seen := make(map[string]struct{}, len(mine)+len(theirs))
	for _, title := range mine {
		seen[title] = struct{}{}
	}
	for _, title := range theirs {
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		resp.Recommendations = append(resp.Recommendations, title)
	}
	sort.Strings(resp.Recommendations)

	s.log.Debug("Recommendations computed",
		zap.String("user_id", caller.ID.String()),
		zap.Int("similar_users", len(similar)),
		zap.Int("titles", len(resp.Recommendations)),
	)
	return resp, nil
}

func (s *reviewService) Latest(ctx context.Context, n int) ([]response.ReviewResponse, error) {
	reviews, err := s.repo.Review.Latest(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("latest reviews: %w", err)
	}
	return s.represent(ctx, reviews, nil)
}

// ==================== HELPER METHODS ====================

func (s *reviewService) find(ctx context.Context, id string) (*entity.Review, error) {
	reviewID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, errNotFound
	}
	return review, nil
}

// represent attaches like counts and comments. counts may be supplied when
// the caller already has them.
func (s *reviewService) represent(ctx context.Context, reviews []*entity.Review, counts map[uuid.UUID]int64) ([]response.ReviewResponse, error) {
	return representReviews(ctx, s.repo, reviews, counts)
}

func representReviews(ctx context.Context, repo *repository.Repository, reviews []*entity.Review, counts map[uuid.UUID]int64) ([]response.ReviewResponse, error) {
	out := make([]response.ReviewResponse, 0, len(reviews))
	if len(reviews) == 0 {
		return out, nil
	}

	ids := reviewIDs(reviews)

	if counts == nil {
		var err error
		counts, err = repo.Like.CountByReviewIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("count likes: %w", err)
		}
	}

	comments, err := repo.Comment.FindByReviewIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}

	for _, r := range reviews {
		out = append(out, response.ReviewToResponse(r, counts[r.ID], comments[r.ID]))
	}
	return out, nil
}

func reviewIDs(reviews []*entity.Review) []uuid.UUID {
	ids := make([]uuid.UUID, len(reviews))
	for i, r := range reviews {
		ids[i] = r.ID
	}
	return ids
}
