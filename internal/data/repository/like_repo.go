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

type LikeRepository interface {
	Create(ctx context.Context, like *entity.ReviewLike) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.ReviewLike, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReviewLike, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

const likeSelect = `
	SELECT l.id, l.user_id, l.review_id, l.created_at, u.username
	FROM review_likes l
	JOIN users u ON u.id = l.user_id`

// Create returns ErrDuplicate when the user already liked the review and
// ErrMissingReference when the review is gone.
func (r *likeRepository) Create(ctx context.Context, like *entity.ReviewLike) error {
	query := `
		INSERT INTO review_likes (id, user_id, review_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query, like.ID, like.UserID, like.ReviewID, like.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("like review %s by user %s: %w",
				like.ReviewID.String(), like.UserID.String(), ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("like review %s: %w", like.ReviewID.String(), ErrMissingReference)
		}
		r.log.Error("Failed to create like",
			zap.Error(err),
			zap.String("user_id", like.UserID.String()),
			zap.String("review_id", like.ReviewID.String()),
		)
		return fmt.Errorf("create like: %w", err)
	}

	return nil
}

func (r *likeRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.ReviewLike, error) {
	query := likeSelect + ` WHERE l.id = $1 AND l.user_id = $2`

	like, err := scanLike(r.db.QueryRow(ctx, query, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find like", zap.Error(err), zap.String("like_id", id.String()))
		return nil, fmt.Errorf("find like %s: %w", id.String(), err)
	}

	return like, nil
}

func (r *likeRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReviewLike, error) {
	query := likeSelect + `
		WHERE l.user_id = $1
		ORDER BY l.created_at, l.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find likes by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find likes by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var likes []*entity.ReviewLike
	for rows.Next() {
		like, err := scanLike(rows)
		if err != nil {
			r.log.Error("Failed to scan like row", zap.Error(err))
			return nil, fmt.Errorf("scan like row: %w", err)
		}
		likes = append(likes, like)
	}

	return likes, rows.Err()
}

func (r *likeRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM review_likes WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count likes by user", zap.Error(err))
		return 0, fmt.Errorf("count likes by user %s: %w", userID.String(), err)
	}
	return count, nil
}

// CountByReviewIDs returns like counts keyed by review; reviews without likes are absent.
func (r *likeRepository) CountByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return counts, nil
	}

	query := `
		SELECT review_id, COUNT(*)
		FROM review_likes
		WHERE review_id = ANY($1)
		GROUP BY review_id
	`

	rows, err := r.db.Query(ctx, query, reviewIDs)
	if err != nil {
		r.log.Error("Failed to count likes", zap.Error(err), zap.Int("reviews", len(reviewIDs)))
		return nil, fmt.Errorf("count likes: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			count int64
		)
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("scan like count: %w", err)
		}
		counts[id] = count
	}

	return counts, rows.Err()
}

func (r *likeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM review_likes WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete like", zap.Error(err), zap.String("like_id", id.String()))
		return fmt.Errorf("delete like %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("like %s: %w", id.String(), ErrNotFound)
	}

	return nil
}

func scanLike(row pgx.Row) (*entity.ReviewLike, error) {
	var like entity.ReviewLike
	if err := row.Scan(&like.ID, &like.UserID, &like.ReviewID, &like.CreatedAt, &like.Username); err != nil {
		return nil, err
	}
	return &like, nil
}
