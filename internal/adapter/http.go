package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-memory-calendar/internal/logger"
	"github.com/MKhiriev/go-memory-calendar/internal/utils"
	"github.com/MKhiriev/go-memory-calendar/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from address and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(address string, requestTimeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/user/register", creds)
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	return h.authenticate(ctx, "/api/user/login", creds)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, endpoint string, creds models.Credentials) (models.Session, error) {
	var session models.Session

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&session).
		Post(endpoint)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("auth parse bearer token: %w", err)
	}

	h.SetToken(token)
	return session, nil
}

// Logout implements [ServerAdapter]. It POSTs to POST /api/user/logout and
// clears the stored bearer token regardless of the server's answer, so a
// dangling token never outlives the session.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Post("/api/user/logout")
	h.token = ""
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// Session implements [ServerAdapter]. It GETs /api/session and reports
// found=false when the server answers 204 No Content.
func (h *httpServerAdapter) Session(ctx context.Context) (models.Session, bool, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/session")
	if err != nil {
		return models.Session{}, false, fmt.Errorf("session request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, false, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return models.Session{}, false, nil
	}

	var session models.Session
	if err = json.Unmarshal(resp.Body(), &session); err != nil {
		return models.Session{}, false, fmt.Errorf("decode session response: %w", err)
	}

	return session, true, nil
}

// CreateGroup implements [ServerAdapter]. It POSTs the group definition to
// POST /api/groups and returns the created group as stored by the server.
// Returns [ErrConflict] (wrapped) when the name or member set collides with
// an existing group of the caller.
func (h *httpServerAdapter) CreateGroup(ctx context.Context, groupName string, members []string) (models.Group, error) {
	var group models.Group

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CreateGroupRequest{GroupName: groupName, Members: members}).
		SetResult(&group).
		Post("/api/groups")
	if err != nil {
		return models.Group{}, fmt.Errorf("create group request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Group{}, err
	}

	return group, nil
}

// MyGroups implements [ServerAdapter]. It GETs /api/groups and decodes the
// caller's group list.
func (h *httpServerAdapter) MyGroups(ctx context.Context) ([]models.Group, error) {
	resp, err := h.authedRequest(ctx).Get("/api/groups")
	if err != nil {
		return nil, fmt.Errorf("my groups request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var groups []models.Group
	if err = json.Unmarshal(resp.Body(), &groups); err != nil {
		return nil, fmt.Errorf("decode groups response: %w", err)
	}

	return groups, nil
}

// AddMember implements [ServerAdapter]. It POSTs the membership change to
// POST /api/groups/members. Returns [ErrNotFound] (wrapped) when the group
// or the account is unknown.
func (h *httpServerAdapter) AddMember(ctx context.Context, groupName, username string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.GroupMemberRequest{GroupName: groupName, Username: username}).
		Post("/api/groups/members")
	if err != nil {
		return fmt.Errorf("add member request: %w", err)
	}

	return mapHTTPError(resp)
}

// LeaveGroup implements [ServerAdapter]. It POSTs to POST /api/groups/leave.
func (h *httpServerAdapter) LeaveGroup(ctx context.Context, groupName string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LeaveGroupRequest{GroupName: groupName}).
		Post("/api/groups/leave")
	if err != nil {
		return fmt.Errorf("leave group request: %w", err)
	}

	return mapHTTPError(resp)
}

// TodayStatus implements [ServerAdapter]. It GETs /api/records/today.
func (h *httpServerAdapter) TodayStatus(ctx context.Context) (bool, error) {
	var status models.TodayStatusResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&status).
		Get("/api/records/today")
	if err != nil {
		return false, fmt.Errorf("today status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return status.Submitted, nil
}

// SubmitRecord implements [ServerAdapter]. It POSTs the daily record to
// POST /api/records. Returns [ErrConflict] (wrapped) when a record for the
// date was already submitted.
func (h *httpServerAdapter) SubmitRecord(ctx context.Context, req models.SubmitRecordRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/records")
	if err != nil {
		return fmt.Errorf("submit record request: %w", err)
	}

	return mapHTTPError(resp)
}

// Monitor implements [ServerAdapter]. It GETs /api/records/monitor and
// decodes the monitored receivers' records.
func (h *httpServerAdapter) Monitor(ctx context.Context) ([]models.DailyRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/records/monitor")
	if err != nil {
		return nil, fmt.Errorf("monitor request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.DailyRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode monitor response: %w", err)
	}

	return records, nil
}

// DefaultQuestions implements [ServerAdapter]. It GETs the public endpoint
// GET /api/questions/defaults.
func (h *httpServerAdapter) DefaultQuestions(ctx context.Context) ([]models.CustomQuestion, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/questions/defaults")
	if err != nil {
		return nil, fmt.Errorf("default questions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var questions []models.CustomQuestion
	if err = json.Unmarshal(resp.Body(), &questions); err != nil {
		return nil, fmt.Errorf("decode default questions response: %w", err)
	}

	return questions, nil
}

// CreateQuestion implements [ServerAdapter]. It POSTs the question to
// POST /api/questions and returns the server-assigned id. Requires a sender
// token; [ErrForbidden] (wrapped) is returned otherwise.
func (h *httpServerAdapter) CreateQuestion(ctx context.Context, question models.CustomQuestion) (string, error) {
	var created models.QuestionCreatedResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(question).
		SetResult(&created).
		Post("/api/questions")
	if err != nil {
		return "", fmt.Errorf("create question request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return created.ID, nil
}

// MyQuestions implements [ServerAdapter]. It GETs /api/questions and decodes
// the questions targeting the caller.
func (h *httpServerAdapter) MyQuestions(ctx context.Context) ([]models.CustomQuestion, error) {
	resp, err := h.authedRequest(ctx).Get("/api/questions")
	if err != nil {
		return nil, fmt.Errorf("my questions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var questions []models.CustomQuestion
	if err = json.Unmarshal(resp.Body(), &questions); err != nil {
		return nil, fmt.Errorf("decode questions response: %w", err)
	}

	return questions, nil
}

// AddMemory implements [ServerAdapter]. It POSTs the entry to
// POST /api/memories and returns the stored entry with its server timestamp.
func (h *httpServerAdapter) AddMemory(ctx context.Context, req models.AddMemoryRequest) (models.MemoryEntry, error) {
	var entry models.MemoryEntry

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&entry).
		Post("/api/memories")
	if err != nil {
		return models.MemoryEntry{}, fmt.Errorf("add memory request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MemoryEntry{}, err
	}

	return entry, nil
}

// ListMemories implements [ServerAdapter]. It GETs /api/memories?date=<date>
// and decodes the caller's entries for that date.
func (h *httpServerAdapter) ListMemories(ctx context.Context, date string) ([]models.MemoryEntry, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("date", date).
		Get("/api/memories")
	if err != nil {
		return nil, fmt.Errorf("list memories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.MemoryEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode memories response: %w", err)
	}

	return entries, nil
}

// SaveDecoration implements [ServerAdapter]. It PUTs the decoration to
// PUT /api/decorations.
func (h *httpServerAdapter) SaveDecoration(ctx context.Context, req models.SaveDecorationRequest) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/decorations")
	if err != nil {
		return fmt.Errorf("save decoration request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetDecoration implements [ServerAdapter]. It GETs /api/decorations?date=<date>
// and reports found=false when the server answers 204 No Content.
func (h *httpServerAdapter) GetDecoration(ctx context.Context, date string) (models.Decoration, bool, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("date", date).
		Get("/api/decorations")
	if err != nil {
		return models.Decoration{}, false, fmt.Errorf("get decoration request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Decoration{}, false, err
	}
	if resp.StatusCode() == http.StatusNoContent {
		return models.Decoration{}, false, nil
	}

	var deco models.Decoration
	if err = json.Unmarshal(resp.Body(), &deco); err != nil {
		return models.Decoration{}, false, fmt.Errorf("decode decoration response: %w", err)
	}

	return deco, true, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
