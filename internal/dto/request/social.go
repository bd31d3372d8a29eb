package request

type LikeRequest struct {
	Review string `json:"review" validate:"required,uuid"`
}

type CommentRequest struct {
	Review  string `json:"review" validate:"required,uuid"`
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content *string `json:"content" validate:"required,min=1"`
}

type PatchCommentRequest struct {
	Content *string `json:"content,omitempty" validate:"omitempty,min=1"`
}

type ProfileRequest struct {
	Bio    *string `json:"bio,omitempty" validate:"omitempty,max=5000"`
	Avatar *string `json:"avatar,omitempty" validate:"omitempty,url,max=200"`
}
