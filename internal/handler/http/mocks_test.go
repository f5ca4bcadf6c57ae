package http

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-blog/internal/config"
	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/models"
)

// ─────────────────────────────────────────────
// Function-field service mocks
// ─────────────────────────────────────────────
//
// A nil function field panics when called, so a test that forgets to stub a
// method fails loudly. calls counts every invocation of the mock.

type mockAuthService struct {
	calls atomic.Int32

	registerUserFn func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	loginFn        func(ctx context.Context, req models.SignInRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	m.calls.Add(1)
	return m.registerUserFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.SignInRequest) (models.User, error) {
	m.calls.Add(1)
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	m.calls.Add(1)
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	m.calls.Add(1)
	return m.parseTokenFn(ctx, tokenString)
}

type mockOwnershipGuard struct {
	calls atomic.Int32

	authorizeFn func(ctx context.Context, kind models.ResourceKind, resourceID, subjectID int64) error
}

func (m *mockOwnershipGuard) Authorize(ctx context.Context, kind models.ResourceKind, resourceID, subjectID int64) error {
	m.calls.Add(1)
	return m.authorizeFn(ctx, kind, resourceID, subjectID)
}

type mockUserService struct {
	calls atomic.Int32

	getProfileFn    func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn func(ctx context.Context, update models.ProfileUpdate) (models.User, error)
}

func (m *mockUserService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	m.calls.Add(1)
	return m.getProfileFn(ctx, userID)
}

func (m *mockUserService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.User, error) {
	m.calls.Add(1)
	return m.updateProfileFn(ctx, update)
}

type mockBlogService struct {
	calls atomic.Int32

	createFn func(ctx context.Context, blog models.Blog) (models.Blog, error)
	updateFn func(ctx context.Context, update models.BlogUpdate) (models.Blog, error)
	deleteFn func(ctx context.Context, blogID int64) error
	getFn    func(ctx context.Context, blogID int64) (models.Blog, error)
	listFn   func(ctx context.Context, page models.Page) (models.BlogPage, error)
}

func (m *mockBlogService) Create(ctx context.Context, blog models.Blog) (models.Blog, error) {
	m.calls.Add(1)
	return m.createFn(ctx, blog)
}

func (m *mockBlogService) Update(ctx context.Context, update models.BlogUpdate) (models.Blog, error) {
	m.calls.Add(1)
	return m.updateFn(ctx, update)
}

func (m *mockBlogService) Delete(ctx context.Context, blogID int64) error {
	m.calls.Add(1)
	return m.deleteFn(ctx, blogID)
}

func (m *mockBlogService) Get(ctx context.Context, blogID int64) (models.Blog, error) {
	m.calls.Add(1)
	return m.getFn(ctx, blogID)
}

func (m *mockBlogService) List(ctx context.Context, page models.Page) (models.BlogPage, error) {
	m.calls.Add(1)
	return m.listFn(ctx, page)
}

type mockCommentService struct {
	calls atomic.Int32

	createFn func(ctx context.Context, comment models.Comment) (models.Comment, error)
	listFn   func(ctx context.Context, blogID int64) ([]models.Comment, error)
	deleteFn func(ctx context.Context, blogID, commentID int64) error
}

func (m *mockCommentService) Create(ctx context.Context, comment models.Comment) (models.Comment, error) {
	m.calls.Add(1)
	return m.createFn(ctx, comment)
}

func (m *mockCommentService) List(ctx context.Context, blogID int64) ([]models.Comment, error) {
	m.calls.Add(1)
	return m.listFn(ctx, blogID)
}

func (m *mockCommentService) Delete(ctx context.Context, blogID, commentID int64) error {
	m.calls.Add(1)
	return m.deleteFn(ctx, blogID, commentID)
}

type mockReactionService struct {
	calls atomic.Int32

	reactFn   func(ctx context.Context, like models.Like) (models.ReactionResult, error)
	summaryFn func(ctx context.Context, blogID, subjectID int64) (models.ReactionSummary, error)
}

func (m *mockReactionService) React(ctx context.Context, like models.Like) (models.ReactionResult, error) {
	m.calls.Add(1)
	return m.reactFn(ctx, like)
}

func (m *mockReactionService) Summary(ctx context.Context, blogID, subjectID int64) (models.ReactionSummary, error) {
	m.calls.Add(1)
	return m.summaryFn(ctx, blogID, subjectID)
}

type mockUploadService struct {
	calls atomic.Int32

	avatarFn    func(ctx context.Context, userID int64, contentType string) (models.UploadURL, error)
	blogImageFn func(ctx context.Context, blogID int64, contentType string) (models.UploadURL, error)
}

func (m *mockUploadService) AvatarUploadURL(ctx context.Context, userID int64, contentType string) (models.UploadURL, error) {
	m.calls.Add(1)
	return m.avatarFn(ctx, userID, contentType)
}

func (m *mockUploadService) BlogImageUploadURL(ctx context.Context, blogID int64, contentType string) (models.UploadURL, error) {
	m.calls.Add(1)
	return m.blogImageFn(ctx, blogID, contentType)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testServices bundles every mock so a test can stub only what it needs and
// assert on the call counters of the rest.
type testServices struct {
	auth      *mockAuthService
	ownership *mockOwnershipGuard
	users     *mockUserService
	blogs     *mockBlogService
	comments  *mockCommentService
	reactions *mockReactionService
	uploads   *mockUploadService
}

func newTestServices() *testServices {
	return &testServices{
		auth:      &mockAuthService{},
		ownership: &mockOwnershipGuard{},
		users:     &mockUserService{},
		blogs:     &mockBlogService{},
		comments:  &mockCommentService{},
		reactions: &mockReactionService{},
		uploads:   &mockUploadService{},
	}
}

func (s *testServices) services() *service.Services {
	return &service.Services{
		AuthService:     s.auth,
		OwnershipGuard:  s.ownership,
		UserService:     s.users,
		BlogService:     s.blogs,
		CommentService:  s.comments,
		ReactionService: s.reactions,
		UploadService:   s.uploads,
		AppInfoService:  &mockAppInfoService{version: "test-version"},
	}
}

// totalCalls sums the calls of every mock except the auth service.
func (s *testServices) totalCalls() int32 {
	return s.ownership.calls.Load() + s.users.calls.Load() + s.blogs.calls.Load() +
		s.comments.calls.Load() + s.reactions.calls.Load() + s.uploads.calls.Load()
}

// acceptTokens makes ParseToken resolve the listed tokens to their subject
// ids and reject every other token as malformed.
func (s *testServices) acceptTokens(tokens map[string]int64) {
	s.auth.parseTokenFn = func(_ context.Context, tokenString string) (models.Token, error) {
		subjectID, ok := tokens[tokenString]
		if !ok {
			return models.Token{}, service.ErrTokenMalformed
		}
		return models.Token{SubjectID: subjectID}, nil
	}
}

func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, validators.NewRequestValidator(), config.Server{}, logger.Nop())
}

// newTestRouter returns the full router with sign-in limiting disabled.
func newTestRouter(t *testing.T, s *testServices) http.Handler {
	t.Helper()
	return newTestHandler(s.services()).Init()
}

// injectNopLogger puts the nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}
