package response

import (
	"time"

	"movie-review/internal/data/entity"
)

type CommentResponse struct {
	ID        string    `json:"id"`
	Review    string    `json:"review"`
	User      string    `json:"user"`
	UserID    string    `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type LikeResponse struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	UserID    string    `json:"user_id"`
	Review    string    `json:"review"`
	CreatedAt time.Time `json:"created_at"`
}

type ProfileResponse struct {
	ID     string  `json:"id"`
	User   string  `json:"user"`
	UserID string  `json:"user_id"`
	Bio    *string `json:"bio"`
	Avatar *string `json:"avatar"`
}

func CommentToResponse(c *entity.ReviewComment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		Review:    c.ReviewID.String(),
		User:      c.Username,
		UserID:    c.UserID.String(),
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// CommentsToResponse never returns nil so the field encodes as [].
func CommentsToResponse(comments []*entity.ReviewComment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, CommentToResponse(c))
	}
	return out
}

func LikeToResponse(l *entity.ReviewLike) LikeResponse {
	return LikeResponse{
		ID:        l.ID.String(),
		User:      l.Username,
		UserID:    l.UserID.String(),
		Review:    l.ReviewID.String(),
		CreatedAt: l.CreatedAt,
	}
}

func ProfileToResponse(p *entity.UserProfile) ProfileResponse {
	return ProfileResponse{
		ID:     p.ID.String(),
		User:   p.Username,
		UserID: p.UserID.String(),
		Bio:    p.Bio,
		Avatar: p.Avatar,
	}
}
