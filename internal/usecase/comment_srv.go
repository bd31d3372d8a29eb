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

type CommentService interface {
	List(ctx context.Context, reviewID string, p request.PaginatedRequest) (*response.Page[[]response.CommentResponse], error)
	Retrieve(ctx context.Context, id string) (*response.CommentResponse, error)
	Create(ctx context.Context, caller Caller, req *request.CommentRequest) (*response.CommentResponse, error)
	Update(ctx context.Context, caller Caller, id string, req *request.UpdateCommentRequest) (*response.CommentResponse, error)
	Patch(ctx context.Context, caller Caller, id string, req *request.PatchCommentRequest) (*response.CommentResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

type commentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCommentService(repo *repository.Repository, log *zap.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With(zap.String("service", "comment")),
	}
}

var (
	errCommentEditForbidden   = newError(ErrForbidden, "You do not have permission to edit this comment.")
	errCommentDeleteForbidden = newError(ErrForbidden, "You do not have permission to delete this comment.")
)

// List pages through comments; reviewID narrows to one review when non-empty.
func (s *commentService) List(ctx context.Context, reviewID string, p request.PaginatedRequest) (*response.Page[[]response.CommentResponse], error) {
	filter := uuid.Nil
	if reviewID != "" {
		id, err := uuid.Parse(reviewID)
		if err != nil {
			return nil, validationError(map[string]string{"review": "Must be a valid UUID"})
		}
		filter = id
	}

	count, err := s.repo.Comment.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count comments: %w", err)
	}
	if err := checkPage(p, count); err != nil {
		return nil, err
	}

	comments, err := s.repo.Comment.List(ctx, filter, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return response.NewPage(response.CommentsToResponse(comments), p.Page, p.Limit(), count), nil
}

func (s *commentService) Retrieve(ctx context.Context, id string) (*response.CommentResponse, error) {
	comment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) Create(ctx context.Context, caller Caller, req *request.CommentRequest) (*response.CommentResponse, error) {
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

	comment := &entity.ReviewComment{
		BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now().UTC()},
		ReviewID:   reviewID,
		UserID:     caller.ID,
		Content:    req.Content,
		Username:   caller.Username,
	}

	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrMissingReference) {
			return nil, missingReview(req.Review)
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("review_id", reviewID.String()),
	)

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, caller Caller, id string, req *request.UpdateCommentRequest) (*response.CommentResponse, error) {
	return s.modify(ctx, caller, id, req, req.Content)
}

func (s *commentService) Patch(ctx context.Context, caller Caller, id string, req *request.PatchCommentRequest) (*response.CommentResponse, error) {
	return s.modify(ctx, caller, id, req, req.Content)
}

// modify changes the content of an owned comment; nothing else is writable.
func (s *commentService) modify(ctx context.Context, caller Caller, id string, req any, content *string) (*response.CommentResponse, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}

	comment, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.Owns(comment.UserID) {
		return nil, errCommentEditForbidden
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	if content != nil {
		comment.Content = *content
		if err := s.repo.Comment.Update(ctx, comment); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, errNotFound
			}
			return nil, fmt.Errorf("update comment: %w", err)
		}
	}

	resp := response.CommentToResponse(comment)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, caller Caller, id string) error {
	if err := caller.require(); err != nil {
		return err
	}

	comment, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if !caller.Owns(comment.UserID) {
		return errCommentDeleteForbidden
	}

	if err := s.repo.Comment.Delete(ctx, comment.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

func (s *commentService) find(ctx context.Context, id string) (*entity.ReviewComment, error) {
	commentID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.Comment.FindByID(ctx, commentID)
	if err != nil {
		return nil, fmt.Errorf("find comment: %w", err)
	}
	if comment == nil {
		return nil, errNotFound
	}
	return comment, nil
}
