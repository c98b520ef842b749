package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/liftops/liftray/internal/domain"
)

const defaultTimeout = 30 * time.Second

// Client is a thin HTTP client for the dashboard notification API.
// It handles Bearer token authentication and JSON (de)serialization.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

var _ Transport = (*Client)(nil)

// APIError is a non-2xx response from the dashboard API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: status %d: %s", e.StatusCode, e.Message)
}

// AuthError reports a rejected access token.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return "api: " + e.Message
}

// NewClient creates a new API client. The baseURL should be the root URL
// of the dashboard (e.g. https://dashboard.example.com). The token is a
// personal access token used for Bearer authentication.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// notificationPayload is the wire form of a notification.
type notificationPayload struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Title       string         `json:"title"`
	Message     string         `json:"message"`
	IsRead      bool           `json:"isRead"`
	ReadAt      *time.Time     `json:"readAt,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	RelatedType string         `json:"relatedType,omitempty"`
	RelatedID   string         `json:"relatedId,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

func (p notificationPayload) toDomain() domain.Notification {
	return domain.Notification{
		ID:          p.ID,
		Type:        domain.ParseNotificationType(p.Type),
		Title:       p.Title,
		Message:     p.Message,
		IsRead:      p.IsRead,
		ReadAt:      p.ReadAt,
		CreatedAt:   p.CreatedAt,
		RelatedType: p.RelatedType,
		RelatedID:   p.RelatedID,
		Data:        p.Data,
	}
}

func toDomainList(payloads []notificationPayload) []domain.Notification {
	items := make([]domain.Notification, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, p.toDomain())
	}
	return items
}

type listResponse struct {
	Items      []notificationPayload `json:"items"`
	Total      int                   `json:"total"`
	Page       int                   `json:"page"`
	Limit      int                   `json:"limit"`
	TotalPages int                   `json:"totalPages"`
}

type unreadResponse struct {
	Items []notificationPayload `json:"items"`
	Count *int                  `json:"count,omitempty"`
}

type countResponse struct {
	Count int `json:"count"`
}

// List fetches one page of the full notification list.
func (c *Client) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	switch opts.Read {
	case domain.ReadFilterRead:
		q.Set("isRead", "true")
	case domain.ReadFilterUnread:
		q.Set("isRead", "false")
	}
	if opts.Type != "" {
		q.Set("type", opts.Type.String())
	}

	path := "/api/notifications"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var resp listResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return ListResult{}, err
	}
	return ListResult{
		Items: toDomainList(resp.Items),
		Page: domain.Page{
			Total:      resp.Total,
			Page:       resp.Page,
			Limit:      resp.Limit,
			TotalPages: resp.TotalPages,
		},
	}, nil
}

// UnreadList fetches the unread-only view.
func (c *Client) UnreadList(ctx context.Context) (UnreadResult, error) {
	var resp unreadResponse
	if err := c.do(ctx, http.MethodGet, "/api/notifications/unread", nil, &resp); err != nil {
		return UnreadResult{}, err
	}
	result := UnreadResult{Items: toDomainList(resp.Items), Count: -1}
	if resp.Count != nil {
		result.Count = *resp.Count
	}
	return result, nil
}

// UnreadCount fetches the unread counter.
func (c *Client) UnreadCount(ctx context.Context) (int, error) {
	var resp countResponse
	if err := c.do(ctx, http.MethodGet, "/api/notifications/unread/count", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// MarkRead confirms a single notification as read.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	path := "/api/notifications/" + url.PathEscape(id) + "/read"
	return c.do(ctx, http.MethodPatch, path, nil, nil)
}

// MarkAllRead confirms every notification as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPatch, "/api/notifications/read-all", nil, nil)
}

// Delete removes a notification.
func (c *Client) Delete(ctx context.Context, id string) error {
	path := "/api/notifications/" + url.PathEscape(id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do builds the request, handles auth, and decodes the JSON response into
// result when result is non-nil.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return &AuthError{Message: "authentication failed (401): check your access token"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(data))}
	}

	if result == nil {
		return nil
	}
	if err := json.Unmarshal(data, result); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, path, err)
	}
	return nil
}
