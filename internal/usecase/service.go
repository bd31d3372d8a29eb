package usecase

import (
	"movie-review/internal/data/repository"
	"movie-review/internal/omdb"
	"movie-review/pkg/token"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Review  ReviewService
	Like    LikeService
	Comment CommentService
	Profile ProfileService
	Movie   MovieService
}

func NewService(repo *repository.Repository, tokens *token.Manager, metadata omdb.MetadataClient, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, tokens, log),
		User:    NewUserService(repo, log),
		Review:  NewReviewService(repo, metadata, log),
		Like:    NewLikeService(repo, log),
		Comment: NewCommentService(repo, log),
		Profile: NewProfileService(repo, log),
		Movie:   NewMovieService(metadata, log),
	}
}
