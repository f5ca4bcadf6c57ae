package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
	"github.com/go-resty/resty/v2"
)

const (
	blogPath    = "/api/v1/blog/{id}"
	commentPath = "/api/v1/blog/{id}/comment"
	likePath    = "/api/v1/blog/{id}/like"
)

type httpBlogAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAPI returns a [BlogAPI] talking to the server at address. A
// missing scheme defaults to http.
func NewHTTPBlogAPI(address string, timeout time.Duration, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid api address: %w", err)
	}

	return &httpBlogAPI{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBlogAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBlogAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// request starts a JSON request carrying the stored token, if any.
func (h *httpBlogAPI) request(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json")

	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

func blogID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (h *httpBlogAPI) SignUp(ctx context.Context, req models.SignUpRequest) (string, error) {
	return h.authenticate(ctx, "/api/v1/user/signup", req)
}

func (h *httpBlogAPI) SignIn(ctx context.Context, req models.SignInRequest) (string, error) {
	return h.authenticate(ctx, "/api/v1/user/signin", req)
}

// authenticate posts credentials and stores the token from the body, falling
// back to the Authorization header.
func (h *httpBlogAPI) authenticate(ctx context.Context, path string, body any) (string, error) {
	var result models.TokenResponse

	resp, err := h.request(ctx).
		SetBody(body).
		SetResult(&result).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	token := result.Token
	if token == "" {
		token = utils.ParseBearerToken(resp.Header().Get("Authorization"))
	}
	if token == "" {
		return "", ErrNoToken
	}

	h.SetToken(token)
	h.logger.Debug().Str("path", path).Msg("token stored")
	return token, nil
}

func (h *httpBlogAPI) Profile(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetResult(&user).
		Get("/api/v1/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpBlogAPI) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (models.User, error) {
	var user models.User

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&user).
		Put("/api/v1/user/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

func (h *httpBlogAPI) AvatarUploadURL(ctx context.Context, contentType string) (models.UploadURL, error) {
	var upload models.UploadURL

	resp, err := h.request(ctx).
		SetBody(models.UploadURLRequest{ContentType: contentType}).
		SetResult(&upload).
		Post("/api/v1/user/avatar/upload-url")
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("avatar upload url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadURL{}, err
	}

	return upload, nil
}

// ListBlogs sends only the positive page parameters; zero leaves the server
// default.
func (h *httpBlogAPI) ListBlogs(ctx context.Context, page, pageSize int) (models.BlogPage, error) {
	var blogs models.BlogPage

	req := h.request(ctx).SetResult(&blogs)
	if page > 0 {
		req.SetQueryParam("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		req.SetQueryParam("pageSize", strconv.Itoa(pageSize))
	}

	resp, err := req.Get("/api/v1/blog/bulk")
	if err != nil {
		return models.BlogPage{}, fmt.Errorf("list blogs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.BlogPage{}, err
	}

	return blogs, nil
}

func (h *httpBlogAPI) GetBlog(ctx context.Context, id int64) (models.Blog, error) {
	var result models.BlogResponse

	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		SetResult(&result).
		Get(blogPath)
	if err != nil {
		return models.Blog{}, fmt.Errorf("get blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Blog{}, err
	}

	return result.Blog, nil
}

func (h *httpBlogAPI) CreateBlog(ctx context.Context, req models.BlogCreateRequest) (int64, error) {
	var result models.IDResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&result).
		Post("/api/v1/blog")
	if err != nil {
		return 0, fmt.Errorf("create blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.ID, nil
}

func (h *httpBlogAPI) UpdateBlog(ctx context.Context, id int64, req models.BlogUpdateRequest) (int64, error) {
	var result models.IDResponse

	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		SetBody(req).
		SetResult(&result).
		Put(blogPath)
	if err != nil {
		return 0, fmt.Errorf("update blog request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.ID, nil
}

func (h *httpBlogAPI) DeleteBlog(ctx context.Context, id int64) error {
	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		Delete(blogPath)
	if err != nil {
		return fmt.Errorf("delete blog request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBlogAPI) BlogImageUploadURL(ctx context.Context, id int64, contentType string) (models.UploadURL, error) {
	var upload models.UploadURL

	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		SetBody(models.UploadURLRequest{ContentType: contentType}).
		SetResult(&upload).
		Post(blogPath + "/image/upload-url")
	if err != nil {
		return models.UploadURL{}, fmt.Errorf("blog image upload url request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UploadURL{}, err
	}

	return upload, nil
}

func (h *httpBlogAPI) ListComments(ctx context.Context, id int64) ([]models.Comment, error) {
	var result models.CommentsResponse

	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		SetResult(&result).
		Get(commentPath)
	if err != nil {
		return nil, fmt.Errorf("list comments request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return result.Comments, nil
}

func (h *httpBlogAPI) CreateComment(ctx context.Context, id int64, content string) (models.Comment, error) {
	var result models.CommentResponse

	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		SetBody(models.CommentCreateRequest{Content: content}).
		SetResult(&result).
		Post(commentPath)
	if err != nil {
		return models.Comment{}, fmt.Errorf("create comment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Comment{}, err
	}

	return result.Comment, nil
}

func (h *httpBlogAPI) DeleteComment(ctx context.Context, id, commentID int64) error {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{
			"id":        blogID(id),
			"commentId": strconv.FormatInt(commentID, 10),
		}).
		Delete(commentPath + "/{commentId}")
	if err != nil {
		return fmt.Errorf("delete comment request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpBlogAPI) React(ctx context.Context, id int64, reaction models.ReactionType) (models.ReactionResult, error) {
	var result models.ReactionResult

	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		SetBody(models.ReactionRequest{Type: reaction}).
		SetResult(&result).
		Post(likePath)
	if err != nil {
		return models.ReactionResult{}, fmt.Errorf("react request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReactionResult{}, err
	}

	return result, nil
}

func (h *httpBlogAPI) ReactionSummary(ctx context.Context, id int64) (models.ReactionSummary, error) {
	var summary models.ReactionSummary

	resp, err := h.request(ctx).
		SetPathParam("id", blogID(id)).
		SetResult(&summary).
		Get(likePath)
	if err != nil {
		return models.ReactionSummary{}, fmt.Errorf("reaction summary request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ReactionSummary{}, err
	}

	return summary, nil
}

func (h *httpBlogAPI) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
