package usecase

import (
	"context"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"go.uber.org/zap"
)

// UserService is the public, read-only view of accounts.
type UserService interface {
	List(ctx context.Context, p request.PaginatedRequest) (*response.Page[[]response.UserResponse], error)
	Retrieve(ctx context.Context, id string) (*response.UserResponse, error)
	Profile(ctx context.Context, id string) (*response.ProfileResponse, error)
	Reviews(ctx context.Context, id string) ([]response.ReviewResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (us *userService) List(ctx context.Context, p request.PaginatedRequest) (*response.Page[[]response.UserResponse], error) {
	total, err := us.repo.User.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if err := checkPage(p, total); err != nil {
		return nil, err
	}

	users, err := us.repo.User.FindAll(ctx, p.Limit(), p.Offset())
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	results := make([]response.UserResponse, 0, len(users))
	for _, u := range users {
		results = append(results, response.UserToResponse(u))
	}

	us.log.Debug("Users listed", zap.Int("count", len(results)), zap.Int("page", p.Page))
	return response.NewPage(results, p.Page, p.Limit(), total), nil
}

func (us *userService) Retrieve(ctx context.Context, id string) (*response.UserResponse, error) {
	user, err := us.find(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := response.UserToResponse(user)
	return &resp, nil
}

// Profile returns the user's profile, creating an empty one on first access.
func (us *userService) Profile(ctx context.Context, id string) (*response.ProfileResponse, error) {
	user, err := us.find(ctx, id)
	if err != nil {
		return nil, err
	}

	profile, err := us.repo.Profile.GetOrCreate(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("get or create profile: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

// Reviews lists every review the user wrote, unpaginated.
func (us *userService) Reviews(ctx context.Context, id string) ([]response.ReviewResponse, error) {
	user, err := us.find(ctx, id)
	if err != nil {
		return nil, err
	}

	reviews, err := us.repo.Review.List(ctx, repository.ReviewFilter{UserID: user.ID}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("list user reviews: %w", err)
	}

	return representReviews(ctx, us.repo, reviews, nil)
}

func (us *userService) find(ctx context.Context, id string) (*entity.User, error) {
	userID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	user, err := us.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, errNotFound
	}
	return user, nil
}
