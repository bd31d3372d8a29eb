package adaptor

import (
	"movie-review/internal/usecase"
	"movie-review/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Index   *IndexHandler
	Auth    *AuthHandler
	User    *UserHandler
	Review  *ReviewHandler
	Like    *LikeHandler
	Comment *CommentHandler
	Profile *ProfileHandler
	Movie   *MovieHandler
	Web     *WebHandler
}

func NewHandler(service *usecase.Service, pages utils.PageConfig, log *zap.Logger) *Handler {
	return &Handler{
		Index:   NewIndexHandler(),
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, pages.Size, log),
		Review:  NewReviewHandler(service.Review, pages.Size, log),
		Like:    NewLikeHandler(service.Like, pages.Size, log),
		Comment: NewCommentHandler(service.Comment, pages.Size, log),
		Profile: NewProfileHandler(service.Profile, pages.Size, log),
		Movie:   NewMovieHandler(service.Movie, log),
		Web:     NewWebHandler(service.Review, pages, log),
	}
}
