package response

import (
	"time"

	"movie-review/internal/data/entity"
	"movie-review/internal/omdb"
)

type ReviewResponse struct {
	ID            string            `json:"id"`
	MovieTitle    string            `json:"movie_title"`
	ReviewContent string            `json:"review_content"`
	Rating        int               `json:"rating"`
	User          string            `json:"user"`
	UserID        string            `json:"user_id"`
	CreatedDate   time.Time         `json:"created_date"`
	LikesCount    int64             `json:"likes_count"`
	Comments      []CommentResponse `json:"comments"`
}

// ReviewDetailResponse adds the live metadata block; MovieInfo is null when
// the lookup found nothing.
type ReviewDetailResponse struct {
	ReviewResponse
	MovieInfo *omdb.Movie `json:"movie_info"`
}

type MovieReviewsResponse struct {
	MovieInfo *omdb.Movie      `json:"movie_info"`
	Reviews   []ReviewResponse `json:"reviews"`
}

type RecommendationsResponse struct {
	Recommendations []string `json:"recommendations"`
}

func ReviewToResponse(review *entity.Review, likes int64, comments []*entity.ReviewComment) ReviewResponse {
	return ReviewResponse{
		ID:            review.ID.String(),
		MovieTitle:    review.MovieTitle,
		ReviewContent: review.ReviewContent,
		Rating:        review.Rating,
		User:          review.Username,
		UserID:        review.UserID.String(),
		CreatedDate:   review.CreatedDate,
		LikesCount:    likes,
		Comments:      CommentsToResponse(comments),
	}
}
