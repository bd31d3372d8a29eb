package usecase

import (
	"context"

	"movie-review/internal/data/entity"
	"movie-review/internal/data/repository"
	"movie-review/internal/omdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// ============================================================================
// Mock repositories
// ============================================================================

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) List(ctx context.Context, filter repository.ReviewFilter, limit, offset int) ([]*entity.Review, error) {
	args := m.Called(ctx, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) Count(ctx context.Context, filter repository.ReviewFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockReviewRepository) Latest(ctx context.Context, n int) ([]*entity.Review, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *mockReviewRepository) Update(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockReviewRepository) FindHighlyRatedTitles(ctx context.Context, userID uuid.UUID, minRating int) ([]string, error) {
	args := m.Called(ctx, userID, minRating)
	return args.Get(0).([]string), args.Error(1)
}

func (m *mockReviewRepository) FindUsersRatingTitles(ctx context.Context, titles []string, minRating int, excludeUserID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, titles, minRating, excludeUserID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *mockReviewRepository) FindTitlesRatedByUsers(ctx context.Context, userIDs []uuid.UUID, minRating int) ([]string, error) {
	args := m.Called(ctx, userIDs, minRating)
	return args.Get(0).([]string), args.Error(1)
}

type mockLikeRepository struct {
	mock.Mock
}

func (m *mockLikeRepository) Create(ctx context.Context, like *entity.ReviewLike) error {
	return m.Called(ctx, like).Error(0)
}

func (m *mockLikeRepository) FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*entity.ReviewLike, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewLike), args.Error(1)
}

func (m *mockLikeRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReviewLike, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]*entity.ReviewLike), args.Error(1)
}

func (m *mockLikeRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLikeRepository) CountByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, reviewIDs)
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *mockLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *entity.ReviewComment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ReviewComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.ReviewComment), args.Error(1)
}

func (m *mockCommentRepository) List(ctx context.Context, reviewID uuid.UUID, limit, offset int) ([]*entity.ReviewComment, error) {
	args := m.Called(ctx, reviewID, limit, offset)
	return args.Get(0).([]*entity.ReviewComment), args.Error(1)
}

func (m *mockCommentRepository) Count(ctx context.Context, reviewID uuid.UUID) (int64, error) {
	args := m.Called(ctx, reviewID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCommentRepository) FindByReviewIDs(ctx context.Context, reviewIDs []uuid.UUID) (map[uuid.UUID][]*entity.ReviewComment, error) {
	args := m.Called(ctx, reviewIDs)
	return args.Get(0).(map[uuid.UUID][]*entity.ReviewComment), args.Error(1)
}

func (m *mockCommentRepository) Update(ctx context.Context, comment *entity.ReviewComment) error {
	return m.Called(ctx, comment).Error(0)
}

func (m *mockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockProfileRepository struct {
	mock.Mock
}

func (m *mockProfileRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *mockProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *mockProfileRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserProfile), args.Error(1)
}

func (m *mockProfileRepository) Update(ctx context.Context, profile *entity.UserProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *mockProfileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *mockUserRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *mockUserRepository) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockSessionRepository struct {
	mock.Mock
}

func (m *mockSessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *mockSessionRepository) FindValidSession(ctx context.Context, token uuid.UUID) (*entity.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Session), args.Error(1)
}

func (m *mockSessionRepository) Revoke(ctx context.Context, token uuid.UUID) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockSessionRepository) CleanExpiredSessions(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// ============================================================================
// Fake metadata source
// ============================================================================

type fakeMetadata struct {
	movies  map[string]*omdb.Movie // by title and by imdb id
	results []omdb.SearchResult
	calls   int
}

func (f *fakeMetadata) FetchByTitle(_ context.Context, title string) *omdb.Movie {
	f.calls++
	return f.movies[title]
}

func (f *fakeMetadata) FetchByIMDbID(_ context.Context, imdbID string) *omdb.Movie {
	f.calls++
	return f.movies[imdbID]
}

func (f *fakeMetadata) Search(_ context.Context, _ string) []omdb.SearchResult {
	f.calls++
	return f.results
}

// ============================================================================
// Fixture
// ============================================================================

type repoMocks struct {
	review  *mockReviewRepository
	like    *mockLikeRepository
	comment *mockCommentRepository
	profile *mockProfileRepository
	user    *mockUserRepository
	session *mockSessionRepository
}

func newRepoMocks() (*repository.Repository, *repoMocks) {
	m := &repoMocks{
		review:  &mockReviewRepository{},
		like:    &mockLikeRepository{},
		comment: &mockCommentRepository{},
		profile: &mockProfileRepository{},
		user:    &mockUserRepository{},
		session: &mockSessionRepository{},
	}
	repo := &repository.Repository{
		Review:  m.review,
		Like:    m.like,
		Comment: m.comment,
		Profile: m.profile,
		User:    m.user,
		Session: m.session,
	}
	return repo, m
}
