package adaptor

import (
	"context"

	"movie-review/internal/dto/request"
	"movie-review/internal/dto/response"
	"movie-review/internal/omdb"
	"movie-review/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) List(ctx context.Context, q *request.ReviewListQuery) (*response.Page[[]response.ReviewResponse], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.Page[[]response.ReviewResponse]), args.Error(1)
}

func (m *mockReviewService) Retrieve(ctx context.Context, id string) (*response.ReviewDetailResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewDetailResponse), args.Error(1)
}

func (m *mockReviewService) Create(ctx context.Context, caller usecase.Caller, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) Update(ctx context.Context, caller usecase.Caller, id string, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, caller, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) Patch(ctx context.Context, caller usecase.Caller, id string, req *request.PatchReviewRequest) (*response.ReviewResponse, error) {
	args := m.Called(ctx, caller, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.ReviewResponse), args.Error(1)
}

func (m *mockReviewService) Delete(ctx context.Context, caller usecase.Caller, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

func (m *mockReviewService) ByMovie(ctx context.Context, title string, p request.PaginatedRequest) (*response.Page[response.MovieReviewsResponse], error) {
	args := m.Called(ctx, title, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.Page[response.MovieReviewsResponse]), args.Error(1)
}

func (m *mockReviewService) MostLiked(ctx context.Context, title string, p request.PaginatedRequest) (*response.Page[[]response.ReviewResponse], error) {
	args := m.Called(ctx, title, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.Page[[]response.ReviewResponse]), args.Error(1)
}

func (m *mockReviewService) Recommendations(ctx context.Context, caller usecase.Caller) (*response.RecommendationsResponse, error) {
	args := m.Called(ctx, caller)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.RecommendationsResponse), args.Error(1)
}

func (m *mockReviewService) Latest(ctx context.Context, n int) ([]response.ReviewResponse, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]response.ReviewResponse), args.Error(1)
}

type mockLikeService struct {
	mock.Mock
}

func (m *mockLikeService) List(ctx context.Context, caller usecase.Caller, p request.PaginatedRequest) (*response.Page[[]response.LikeResponse], error) {
	args := m.Called(ctx, caller, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.Page[[]response.LikeResponse]), args.Error(1)
}

func (m *mockLikeService) Create(ctx context.Context, caller usecase.Caller, req *request.LikeRequest) (*response.LikeResponse, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LikeResponse), args.Error(1)
}

func (m *mockLikeService) Retrieve(ctx context.Context, caller usecase.Caller, id string) (*response.LikeResponse, error) {
	args := m.Called(ctx, caller, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*response.LikeResponse), args.Error(1)
}

func (m *mockLikeService) Delete(ctx context.Context, caller usecase.Caller, id string) error {
	return m.Called(ctx, caller, id).Error(0)
}

// fakeMovieService answers from a fixed table.
type fakeMovieService struct {
	byID    map[string]*omdb.Movie
	results []omdb.SearchResult
}

func (f *fakeMovieService) Search(_ context.Context, query string) (*response.MovieSearchResponse, error) {
	if query == "" {
		return nil, &usecase.Error{Kind: usecase.ErrValidation, Detail: "query parameter is required"}
	}
	results := f.results
	if results == nil {
		results = []omdb.SearchResult{}
	}
	return &response.MovieSearchResponse{Results: results}, nil
}

func (f *fakeMovieService) Details(_ context.Context, imdbID string) (*omdb.Movie, error) {
	if m, ok := f.byID[imdbID]; ok {
		return m, nil
	}
	return nil, &usecase.Error{Kind: usecase.ErrNotFound, Detail: "Movie not found"}
}

func (f *fakeMovieService) Info(ctx context.Context, title string) (*omdb.Movie, error) {
	return f.Details(ctx, title)
}
