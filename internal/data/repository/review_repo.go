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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*entity.Review, error)
	Count(ctx context.Context, filter ReviewFilter) (int64, error)
	Latest(ctx context.Context, n int) ([]*entity.Review, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Recommendation queries
	FindHighlyRatedTitles(ctx context.Context, userID uuid.UUID, minRating int) ([]string, error)
	FindUsersRatingTitles(ctx context.Context, titles []string, minRating int, excludeUserID uuid.UUID) ([]uuid.UUID, error)
	FindTitlesRatedByUsers(ctx context.Context, userIDs []uuid.UUID, minRating int) ([]string, error)
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_title, review_content, rating, created_date)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieTitle,
		review.ReviewContent,
		review.Rating,
		review.CreatedDate,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_title", review.MovieTitle),
		)
		return fmt.Errorf("create review for %q by user %s: %w",
			review.MovieTitle, review.UserID.String(), err)
	}

	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := reviewSelect + ` WHERE r.id = $1`

	review, err := scanReview(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return review, nil
}

func (r *reviewRepository) List(ctx context.Context, filter ReviewFilter, limit, offset int) ([]*entity.Review, error) {
	query, args := BuildReviewListQuery(filter, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.String("movie_title", filter.MovieTitle),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

func (r *reviewRepository) Count(ctx context.Context, filter ReviewFilter) (int64, error) {
	query, args := BuildReviewCountQuery(filter)

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews: %w", err)
	}

	return count, nil
}

func (r *reviewRepository) Latest(ctx context.Context, n int) ([]*entity.Review, error) {
	query := reviewSelect + ` ORDER BY r.created_date DESC, r.id DESC LIMIT $1`

	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		r.log.Error("Failed to find latest reviews", zap.Error(err), zap.Int("n", n))
		return nil, fmt.Errorf("find latest reviews: %w", err)
	}
	defer rows.Close()

	return r.collect(rows)
}

// Update writes the content fields only; owner and created_date are immutable.
func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET movie_title = $2, review_content = $3, rating = $4
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		review.ID,
		review.MovieTitle,
		review.ReviewContent,
		review.Rating,
	)

	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", review.ID.String(), ErrNotFound)
	}

	return nil
}

// Delete removes the review; likes and comments go with it via ON DELETE CASCADE.
func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}

func (r *reviewRepository) FindHighlyRatedTitles(ctx context.Context, userID uuid.UUID, minRating int) ([]string, error) {
	query := `
		SELECT DISTINCT movie_title
		FROM reviews
		WHERE user_id = $1 AND rating >= $2
	`

	rows, err := r.db.Query(ctx, query, userID, minRating)
	if err != nil {
		r.log.Error("Failed to find highly rated titles",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find highly rated titles for %s: %w", userID.String(), err)
	}

	titles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan titles: %w", err)
	}
	return titles, nil
}

func (r *reviewRepository) FindUsersRatingTitles(ctx context.Context, titles []string, minRating int, excludeUserID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT DISTINCT user_id
		FROM reviews
		WHERE movie_title = ANY($1) AND rating >= $2 AND user_id <> $3
	`

	rows, err := r.db.Query(ctx, query, titles, minRating, excludeUserID)
	if err != nil {
		r.log.Error("Failed to find users rating titles", zap.Error(err), zap.Int("titles", len(titles)))
		return nil, fmt.Errorf("find users rating titles: %w", err)
	}

	userIDs, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("scan user ids: %w", err)
	}
	return userIDs, nil
}

func (r *reviewRepository) FindTitlesRatedByUsers(ctx context.Context, userIDs []uuid.UUID, minRating int) ([]string, error) {
	query := `
		SELECT DISTINCT movie_title
		FROM reviews
		WHERE user_id = ANY($1) AND rating >= $2
	`

	rows, err := r.db.Query(ctx, query, userIDs, minRating)
	if err != nil {
		r.log.Error("Failed to find titles rated by users", zap.Error(err), zap.Int("users", len(userIDs)))
		return nil, fmt.Errorf("find titles rated by users: %w", err)
	}

	titles, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan titles: %w", err)
	}
	return titles, nil
}

// ==================== HELPERS ====================

func (r *reviewRepository) collect(rows pgx.Rows) ([]*entity.Review, error) {
	var reviews []*entity.Review
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}
	return reviews, nil
}

func scanReview(row pgx.Row) (*entity.Review, error) {
	var review entity.Review
	err := row.Scan(
		&review.ID,
		&review.UserID,
		&review.MovieTitle,
		&review.ReviewContent,
		&review.Rating,
		&review.CreatedDate,
		&review.Username,
	)
	if err != nil {
		return nil, err
	}
	return &review, nil
}
