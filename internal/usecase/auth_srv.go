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
	"movie-review/pkg/token"
	"movie-review/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	ObtainToken(ctx context.Context, req *request.TokenRequest, client request.ClientInfo) (*response.TokenPairResponse, error)
	Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error)
	Logout(ctx context.Context, caller Caller, req *request.RefreshRequest) error
}

type authService struct {
	repo   *repository.Repository
	tokens *token.Manager
	log    *zap.Logger
}

func NewAuthService(repo *repository.Repository, tokens *token.Manager, log *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

const usernameTaken = "A user with that username already exists."

var (
	errUsernameTaken     = &Error{Kind: ErrConflict, Detail: usernameTaken, Fields: map[string]string{"username": usernameTaken}}
	errBadCredentials    = newError(ErrInvalidCredentials, "No active account found with the given credentials")
	errForeignRefreshTok = newError(ErrForbidden, "Token does not belong to the current user.")
)

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if err := validate(req); err != nil {
		s.log.Warn("Register validation failed", zap.Any("errors", ErrorFields(err)))
		return nil, err
	}

	// 2. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 3. Save user; the unique index decides username races
	now := time.Now().UTC()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		IsActive:     true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errUsernameTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ObtainToken checks credentials and issues an access/refresh pair. The
// refresh token's id is stored as a session so it can be revoked.
func (s *authService) ObtainToken(ctx context.Context, req *request.TokenRequest, client request.ClientInfo) (*response.TokenPairResponse, error) {
	// 1. Validate
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Find user
	user, err := s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("User not found for token", zap.String("username", req.Username))
		return nil, errBadCredentials
	}

	// 3. Check password and status
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, errBadCredentials
	}
	if !user.IsActive {
		s.log.Warn("Inactive user requested token", zap.String("user_id", user.ID.String()))
		return nil, errBadCredentials
	}

	// 4. Sign tokens
	pair, err := s.tokens.GeneratePair(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate tokens: %w", err)
	}

	// 5. Persist session
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now().UTC(),
		},
		UserID:    user.ID,
		Token:     pair.RefreshID,
		UserAgent: optional(client.UserAgent),
		IPAddress: optional(client.IPAddress),
		ExpiresAt: pair.RefreshExpiresAt,
	}
	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("Token issued",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &response.TokenPairResponse{Access: pair.Access, Refresh: pair.Refresh}, nil
}

// Refresh issues a new access token for a valid, unrevoked refresh token.
func (s *authService) Refresh(ctx context.Context, req *request.RefreshRequest) (*response.AccessTokenResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	claims, session, err := s.liveSession(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.User.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.IsActive {
		s.log.Warn("Refresh for missing or inactive user", zap.String("user_id", claims.UserID))
		return nil, errInvalidToken
	}

	access, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &response.AccessTokenResponse{Access: access}, nil
}

// Logout revokes the session behind the caller's refresh token.
func (s *authService) Logout(ctx context.Context, caller Caller, req *request.RefreshRequest) error {
	if err := caller.require(); err != nil {
		return err
	}
	if err := validate(req); err != nil {
		return err
	}

	_, session, err := s.liveSession(ctx, req.Refresh)
	if err != nil {
		return err
	}
	if session.UserID != caller.ID {
		return errForeignRefreshTok
	}

	if err := s.repo.Session.Revoke(ctx, session.Token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errInvalidToken
		}
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out", zap.String("user_id", caller.ID.String()))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *authService) liveSession(ctx context.Context, refresh string) (*token.Claims, *entity.Session, error) {
	claims, err := s.tokens.ValidateRefreshToken(refresh)
	if err != nil {
		s.log.Debug("Refresh token rejected", zap.Error(err))
		return nil, nil, errInvalidToken
	}

	sessionID, err := claims.SessionID()
	if err != nil {
		return nil, nil, errInvalidToken
	}

	session, err := s.repo.Session.FindValidSession(ctx, sessionID)
	if err != nil {
		return nil, nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return nil, nil, errInvalidToken
	}
	return claims, session, nil
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
