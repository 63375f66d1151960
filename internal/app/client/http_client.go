package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/exp/slog"

	"tutorlink/internal/app/client/config"
	"tutorlink/internal/domain/course"
	"tutorlink/internal/domain/user"
)

// httpClient wraps every outbound call to the marketplace backend: it
// attaches the bearer credential, unwraps the response envelope and maps
// failures onto the client error taxonomy. Callers above it never look at
// raw HTTP.
type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	token     string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}

	return &httpClient{
		client:    client,
		log:       log,
		baseURL:   scheme + cfg.ServerAddress,
		userAgent: "TutorLink-Client/1.0",
	}
}

// SetToken installs the bearer credential used on subsequent requests.
func (h *httpClient) SetToken(token string) {
	h.token = token
}

// HealthCheck pings the backend.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// ==================== Auth ====================

func (h *httpClient) Register(ctx context.Context, login, password string, role user.Role, bio string) error {
	body := map[string]any{
		"login":    login,
		"password": password,
		"role":     role,
	}
	if bio != "" {
		body["bio"] = bio
	}
	resp, err := h.doRequest(ctx, http.MethodPost, "/auth/register", body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) Login(ctx context.Context, login, password string) (string, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/auth/login", user.Credentials{
		Login:    login,
		Password: password,
	})
	if err != nil {
		return "", err
	}

	var loginResp struct {
		Token string `json:"token"`
	}
	if err := h.parseResponse(resp, &loginResp); err != nil {
		return "", err
	}
	return loginResp.Token, nil
}

// ==================== Courses ====================

func (h *httpClient) CreateCourse(ctx context.Context, p course.CoursePayload) (int64, error) {
	return h.create(ctx, "/tutor/courses", p)
}

func (h *httpClient) UpdateCourse(ctx context.Context, id int64, u course.CourseUpdate) error {
	return h.update(ctx, "/tutor/courses/"+strconv.FormatInt(id, 10), u)
}

// MyCourses lists the authenticated tutor's courses.
func (h *httpClient) MyCourses(ctx context.Context) ([]course.RemoteCourse, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/tutor/courses/me", nil)
	if err != nil {
		return nil, err
	}
	var out []course.RemoteCourse
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CourseSections fetches the full section tree used to rebuild a draft for
// editing.
func (h *httpClient) CourseSections(ctx context.Context, courseID int64) ([]course.RemoteSection, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/tutor/courses/sections/"+strconv.FormatInt(courseID, 10), nil)
	if err != nil {
		return nil, err
	}
	var out []course.RemoteSection
	if err := h.parseResponse(resp, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ==================== Sections ====================

func (h *httpClient) CreateSection(ctx context.Context, p course.SectionPayload) (int64, error) {
	return h.create(ctx, "/tutor/courses/sections", p)
}

func (h *httpClient) UpdateSection(ctx context.Context, id int64, u course.SectionUpdate) error {
	return h.update(ctx, "/tutor/courses/sections/"+strconv.FormatInt(id, 10), u)
}

func (h *httpClient) DeleteSection(ctx context.Context, id int64) error {
	return h.delete(ctx, "/tutor/courses/sections/"+strconv.FormatInt(id, 10))
}

// ==================== Lessons ====================

func (h *httpClient) CreateLesson(ctx context.Context, sectionID int64, p course.LessonPayload) (int64, error) {
	return h.create(ctx, "/tutor/courses/sections/"+strconv.FormatInt(sectionID, 10)+"/lessons", p)
}

func (h *httpClient) UpdateLesson(ctx context.Context, id int64, u course.LessonUpdate) error {
	return h.update(ctx, "/tutor/courses/sections/lessons/"+strconv.FormatInt(id, 10), u)
}

func (h *httpClient) DeleteLesson(ctx context.Context, id int64) error {
	return h.delete(ctx, "/tutor/courses/sections/lessons/"+strconv.FormatInt(id, 10))
}

// ==================== Resources ====================

func (h *httpClient) CreateResource(ctx context.Context, lessonID int64, p course.ResourcePayload) (int64, error) {
	return h.create(ctx, "/tutor/lessons/"+strconv.FormatInt(lessonID, 10)+"/resources", p)
}

func (h *httpClient) UpdateResource(ctx context.Context, id int64, u course.ResourceUpdate) error {
	return h.update(ctx, "/tutor/resources/"+strconv.FormatInt(id, 10), u)
}

func (h *httpClient) DeleteResource(ctx context.Context, id int64) error {
	return h.delete(ctx, "/tutor/resources/"+strconv.FormatInt(id, 10))
}

// ==================== Plumbing ====================

func (h *httpClient) create(ctx context.Context, path string, body any) (int64, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, path, body)
	if err != nil {
		return 0, err
	}

	var createResp struct {
		ID int64 `json:"id"`
	}
	if err := h.parseResponse(resp, &createResp); err != nil {
		return 0, err
	}
	if createResp.ID == 0 {
		return 0, &APIError{Method: http.MethodPost, URL: h.baseURL + path, StatusCode: resp.StatusCode, Message: "response carried no id"}
	}
	return createResp.ID, nil
}

func (h *httpClient) update(ctx context.Context, path string, body any) error {
	resp, err := h.doRequest(ctx, http.MethodPut, path, body)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// delete is fire-and-forget from the caller's point of view: a non-2xx
// still comes back as an error, but nothing is read from the body.
func (h *httpClient) delete(ctx context.Context, path string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	h.log.Debug("request", "method", method, "url", req.URL.String())

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Method: method, URL: h.baseURL + path, Err: err}
	}
	return resp, nil
}

// parseResponse maps the status onto the error taxonomy and unwraps the
// envelope: success payloads arrive either as {result: T} or as bare T, and
// callers must never have to care which.
func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Method: resp.Request.Method, URL: resp.Request.URL.String(), Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return fmt.Errorf("%s %s: %w", resp.Request.Method, resp.Request.URL.String(), ErrSessionExpired)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL.String(),
			StatusCode: resp.StatusCode,
			Message:    extractMessage(body),
		}
	}

	if result == nil || len(body) == 0 {
		return nil
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && len(envelope.Result) > 0 {
		body = envelope.Result
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// extractMessage digs the human-readable error out of whatever shape the
// backend used for it.
func extractMessage(body []byte) string {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Detail  string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	for _, m := range []string{payload.Error, payload.Message, payload.Detail} {
		if m != "" {
			return m
		}
	}
	return ""
}
