package repository

import (
	"context"
	"errors"
	"fmt"

	"movie-review/internal/data/entity"
	"movie-review/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.UserProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error)
	Update(ctx context.Context, profile *entity.UserProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type profileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProfileRepository(db database.PgxIface, log *zap.Logger) ProfileRepository {
	return &profileRepository{
		db:  db,
		log: log.With(zap.String("repository", "profile")),
	}
}

const profileSelect = `
	SELECT p.id, p.user_id, p.bio, p.avatar, u.username
	FROM user_profiles p
	JOIN users u ON u.id = p.user_id`

// Create returns ErrDuplicate when the user already has a profile.
func (r *profileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (id, user_id, bio, avatar)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, profile.ID, profile.UserID, profile.Bio, profile.Avatar)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile for user %s: %w", profile.UserID.String(), ErrDuplicate)
		}
		r.log.Error("Failed to create profile", zap.Error(err), zap.String("user_id", profile.UserID.String()))
		return fmt.Errorf("create profile for user %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (r *profileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	return r.findOne(ctx, profileSelect+` WHERE p.id = $1`, id)
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	return r.findOne(ctx, profileSelect+` WHERE p.user_id = $1`, userID)
}

// GetOrCreate inserts an empty profile if none exists and returns the stored
// row. Concurrent callers converge on the same row through the unique user_id.
func (r *profileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := r.FindByUserID(ctx, userID)
	if err != nil || profile != nil {
		return profile, err
	}

	query := `
		INSERT INTO user_profiles (id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, uuid.New(), userID); err != nil {
		r.log.Error("Failed to upsert profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("upsert profile for user %s: %w", userID.String(), err)
	}

	profile, err = r.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile for user %s: %w", userID.String(), ErrNotFound)
	}
	return profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	result, err := r.db.Exec(ctx, `UPDATE user_profiles SET bio = $2, avatar = $3 WHERE id = $1`,
		profile.ID, profile.Bio, profile.Avatar)
	if err != nil {
		r.log.Error("Failed to update profile", zap.Error(err), zap.String("profile_id", profile.ID.String()))
		return fmt.Errorf("update profile %s: %w", profile.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", profile.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *profileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM user_profiles WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete profile", zap.Error(err), zap.String("profile_id", id.String()))
		return fmt.Errorf("delete profile %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("profile %s: %w", id.String(), ErrNotFound)
	}
	return nil
}

func (r *profileRepository) findOne(ctx context.Context, query string, arg uuid.UUID) (*entity.UserProfile, error) {
	var p entity.UserProfile
	err := r.db.QueryRow(ctx, query, arg).Scan(&p.ID, &p.UserID, &p.Bio, &p.Avatar, &p.Username)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find profile", zap.Error(err), zap.String("key", arg.String()))
		return nil, fmt.Errorf("find profile %s: %w", arg.String(), err)
	}
	return &p, nil
}
