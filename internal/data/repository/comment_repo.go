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

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.ReviewComment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewComment, error)
	List(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.ReviewComment, error)
	Count(ctx context.Context, reviewID uuid.UUID) (int64, error)
	FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]*entity.ReviewComment, error)
	Update(ctx context.Context, comment *entity.ReviewComment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

const commentSelect = `
	SELECT c.id, c.review_id, c.user_id, c.content, c.created_at, u.username
	FROM review_comments c
	JOIN users u ON u.id = c.user_id`

// Create returns ErrMissingReference when the review is gone.
func (r *commentRepository) Create(ctx context.Context, comment *entity.ReviewComment) error {
	query := `
		INSERT INTO review_comments (id, review_id, user_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		comment.ID,
		comment.ReviewID,
		comment.UserID,
		comment.Content,
		comment.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("comment on review %s: %w", comment.ReviewID.String(), ErrMissingReference)
		}
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", comment.ReviewID.String()),
			zap.String("user_id", comment.UserID.String()),
		)
		return fmt.Errorf("create comment on review %s: %w", comment.ReviewID.String(), err)
	}

	return nil
}

func (r *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewComment, error) {
	comment, err := scanComment(r.db.QueryRow(ctx, commentSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find comment", zap.Error(err), zap.String("comment_id", id.String()))
		return nil, fmt.Errorf("find comment %s: %w", id.String(), err)
	}
	return comment, nil
}

// List pages through comments, optionally restricted to one review (uuid.Nil for all).
func (r *commentRepository) List(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.ReviewComment, error) {
	query := commentSelect + `
		WHERE ($1::uuid IS NULL OR c.review_id = $1)
		ORDER BY c.created_at, c.id
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, nullableID(reviewID), limit, offset)
	if err != nil {
		r.log.Error("Failed to list comments", zap.Error(err))
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	var comments []*entity.ReviewComment
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, comment)
	}

	return comments, rows.Err()
}

func (r *commentRepository) Count(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM review_comments WHERE ($1::uuid IS NULL OR review_id = $1)`

	var count int64
	if err := r.db.QueryRow(ctx, query, nullableID(reviewID)).Scan(&count); err != nil {
		r.log.Error("Failed to count comments", zap.Error(err))
		return 0, fmt.Errorf("count comments: %w", err)
	}
	return count, nil
}

// FindByReviewIDs groups comments by review, oldest first.
func (r *commentRepository) FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]*entity.ReviewComment, error) {
	grouped := make(map[uuid.UUID][]*entity.ReviewComment, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return grouped, nil
	}

	query := commentSelect + `
		WHERE c.review_id = ANY($1)
		ORDER BY c.created_at, c.id
	`

	rows, err := r.db.Query(ctx, query, reviewIDs)
	if err != nil {
		r.log.Error("Failed to find comments by reviews", zap.Error(err), zap.Int("reviews", len(reviewIDs)))
		return nil, fmt.Errorf("find comments by reviews: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		grouped[comment.ReviewID] = append(grouped[comment.ReviewID], comment)
	}

	return grouped, rows.Err()
}

func (r *commentRepository) Update(ctx context.Context, comment *entity.ReviewComment) error {
	result, err := r.db.Exec(ctx, `UPDATE review_comments SET content = $2 WHERE id = $1`,
		comment.ID, comment.Content)
	if err != nil {
		r.log.Error("Failed to update comment", zap.Error(err), zap.String("comment_id", comment.ID.String()))
		return fmt.Errorf("update comment %s: %w", comment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", comment.ID.String(), ErrNotFound)
	}
	return nil
}

func (r *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM review_comments WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", id.String()))
		return fmt.Errorf("delete comment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", id.String(), ErrNotFound)
	}
	return nil
}

func scanComment(row pgx.Row) (*entity.ReviewComment, error) {
	var c entity.ReviewComment
	if err := row.Scan(&c.ID, &c.ReviewID, &c.UserID, &c.Content, &c.CreatedAt, &c.Username); err != nil {
		return nil, err
	}
	return &c, nil
}

// nullableID maps uuid.Nil to SQL NULL.
func nullableID(id uuid.UUID) *uuid.UUID {
	if id == uuid.Nil {
		return nil
	}
	return &id
}
