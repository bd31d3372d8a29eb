package usecase

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileService is direct profile CRUD restricted to the caller's own profile.
type ProfileService interface {
	List(ctx context.Context, caller Caller, p request.PaginatedRequest) (*response.Page[[]response.ProfileResponse], error)
	Create(ctx context.Context, caller Caller, req *request.ProfileRequest) (*response.ProfileResponse, error)
	Retrieve(ctx context.Context, caller Caller, id string) (*response.ProfileResponse, error)
	Update(ctx context.Context, caller Caller, id string, req *request.ProfileRequest, partial bool) (*response.ProfileResponse, error)
	Delete(ctx context.Context, caller Caller, id string) error
}

type profileService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProfileService(repo *repository.Repository, log *zap.Logger) ProfileService {
	return &profileService{
		repo: repo,
		log:  log.With(zap.String("service", "profile")),
	}
}

var errDuplicateProfile = newError(ErrConflict, "Profile already exists for this user.")

// List holds at most one entry, the caller's own profile.
func (s *profileService) List(ctx context.Context, caller Caller, p request.PaginatedRequest) (*response.Page[[]response.ProfileResponse], error) {
	if err := caller.require(); err != nil {
		return nil, err
	}

	profile, err := s.repo.Profile.FindByUserID(ctx, caller.ID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	results := []response.ProfileResponse{}
	if profile != nil {
		results = append(results, response.ProfileToResponse(profile))
	}
	count := int64(len(results))
	if err := checkPage(p, count); err != nil {
		return nil, err
	}
	if p.Page > 1 {
		results = []response.ProfileResponse{}
	}
	return response.NewPage(results, p.Page, p.Limit(), count), nil
}

func (s *profileService) Create(ctx context.Context, caller Caller, req *request.ProfileRequest) (*response.ProfileResponse, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	profile := &entity.UserProfile{
		ID:       uuid.New(),
		UserID:   caller.ID,
		Bio:      req.Bio,
		Avatar:   req.Avatar,
		Username: caller.Username,
	}

	if err := s.repo.Profile.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errDuplicateProfile
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) Retrieve(ctx context.Context, caller Caller, id string) (*response.ProfileResponse, error) {
	profile, err := s.findOwn(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

// Update replaces both fields, or only the supplied ones when partial.
func (s *profileService) Update(ctx context.Context, caller Caller, id string, req *request.ProfileRequest, partial bool) (*response.ProfileResponse, error) {
	profile, err := s.findOwn(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	if !partial || req.Bio != nil {
		profile.Bio = req.Bio
	}
	if !partial || req.Avatar != nil {
		profile.Avatar = req.Avatar
	}

	if err := s.repo.Profile.Update(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) Delete(ctx context.Context, caller Caller, id string) error {
	profile, err := s.findOwn(ctx, caller, id)
	if err != nil {
		return err
	}

	if err := s.repo.Profile.Delete(ctx, profile.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errNotFound
		}
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

// findOwn treats other users' profiles as missing.
func (s *profileService) findOwn(ctx context.Context, caller Caller, id string) (*entity.UserProfile, error) {
	if err := caller.require(); err != nil {
		return nil, err
	}

	profileID, err := parseID(id)
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.Profile.FindByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	if profile == nil || !caller.Owns(profile.UserID) {
		return nil, errNotFound
	}
	return profile, nil
}
