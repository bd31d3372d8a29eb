package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LikeService only ever exposes the caller's own likes.
type LikeService interface {
	List(ctx context.Context, caller Caller, p request.PaginatedRequest) (*response.Page[[]response.LikeResponse], error)
	Create(ctx context.Context, caller Caller, req *request.LikeRequest) (*response.LikeResponse, error)
	Retrieve(ctx context.Context, caller Caller, id string) (*response.LikeResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

type likeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewLikeService(repo *repository.Repository, log *zap.Logger) LikeService {
	return &likeService{
		repo: repo,
		log:  log.With(zap.String("service", "like")),
	}
}

var errDuplicateLike = newError(ErrConflict, "You have already liked this review.")

func (s *likeService) List(ctx context.Context, caller Caller, p request.PaginatedRequest) (*response.Page[[]response.LikeResponse], error) {
	if err := caller.require(); err != nil {
		return nil, err
	}

	count, err := s.repo.Like.CountByUserID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("count likes: %w", err)
	}
	if err := checkPage(p, count); err != nil {
		return nil, err
	}

	likes, err := s.repo.Like.FindByUserID(ctx, caller.ID, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}

	results := make([]response.LikeResponse, 0, len(likes))
	for _, l := range likes {
		results = append(results, response.LikeToResponse(l))
	}
	return response.NewPage(results, p.Page, p.Limit(), count), nil
}

// Create records a like; the store's (user, review) constraint rejects a second one.
func (s *likeService) Create(ctx context.Context, caller Caller, req *request.LikeRequest) (*response.LikeResponse, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	reviewID := uuid.MustParse(req.Review)
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, missingReview(req.Review)
	}

	like := &entity.ReviewLike{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		UserID:     caller.ID,
		ReviewID:   reviewID,
		Username:   caller.Username,
	}

	if err := s.repo.Like.Create(ctx, like); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errDuplicateLike
		}
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, missingReview(req.Review)
		}
		return nil, fmt.Errorf("create like: %w", err)
	}

	s.log.Info("Review liked",
		zap.String("review_id", reviewID.String()),
		zap.String("user_id", caller.ID.String()),
	)

	resp := response.LikeToResponse(like)
	return &resp, nil
}

func (s *likeService) Retrieve(ctx context.Context, caller Caller, id string) (*response.LikeResponse, error) {
	like, err := s.findOwn(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	resp := response.LikeToResponse(like)
	return &resp, nil
}

func (s *likeService) Delete(ctx context.Context, caller Caller, id string) error {
	like, err := s.findOwn(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.repo.Like.Delete(ctx, like.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errNotFound
		}
		return fmt.Errorf("delete like: %w", err)
	}
	return nil
}

// findOwn treats other users' likes as missing.
func (s *likeService) findOwn(ctx context.Context, caller Caller, id string) (*entity.ReviewLike, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}

	likeID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	like, err := s.repo.Like.FindByIDForUser(ctx, likeID, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("find like: %w", err)
	}
	if like == nil {
		return nil, errNotFound
	}
	return like, nil
}

// missingReview reports a payload reference to an unknown review as a field error.
func missingReview(id string) error {
	return validationError(map[string]string{
		"review": fmt.Sprintf("Invalid pk %q - object does not exist.", id),
	})
}
