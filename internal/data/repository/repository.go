package repository

import (
	"movie-review/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Review  ReviewRepository
	Like    LikeRepository
	Comment CommentRepository
	Profile ProfileRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Review:  NewReviewRepository(db, log),
		Like:    NewLikeRepository(db, log),
		Comment: NewCommentRepository(db, log),
		Profile: NewProfileRepository(db, log),
	}
}
