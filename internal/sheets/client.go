package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrNotConfigured means no endpoint URL is set for the running instance.
// It is an expected condition, not an operational error: the caller falls
// back to the demo record.
var ErrNotConfigured = errors.New("sheets: endpoint not configured")

// StatusError reports a transport success with a failing HTTP status.
type StatusError struct{ Status int }

func (e *StatusError) Error() string { return fmt.Sprintf("sheets: http %d", e.Status) }

// RemoteError carries an error message reported by the endpoint itself,
// e.g. "student not found for email".
type RemoteError struct{ Message string }

func (e *RemoteError) Error() string { return e.Message }

// Client wraps the Apps Script endpoint fronting the records spreadsheet.
// Exactly one attempt per call: no retry, no timeout, no caching.
type Client struct {
	baseURL string
	rest    *resty.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		rest:    resty.New().SetRetryCount(0),
	}
}

// FetchStudent reads the full academic record for one student.
// GET {base}?action=getStudentData&email=<address>
func (c *Client) FetchStudent(ctx context.Context, email string) (*StudentRecord, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("action", "getStudentData").
		SetQueryParam("email", email).
		Get(c.baseURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Status: resp.StatusCode()}
	}

	// The endpoint returns the record directly, or {"error": "..."} on a
	// domain failure. Both arrive with status 200.
	var body struct {
		StudentRecord
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("sheets: decode record: %w", err)
	}
	if body.Error != "" {
		return nil, &RemoteError{Message: body.Error}
	}
	return &body.StudentRecord, nil
}

// FetchUsers reads the whole login directory.
// GET {base}?action=getAllUsers
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	if c.baseURL == "" {
		return nil, ErrNotConfigured
	}
	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("action", "getAllUsers").
		Get(c.baseURL)
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, &StatusError{Status: resp.StatusCode()}
	}
	var users []User
	if err := json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("sheets: decode users: %w", err)
	}
	return users, nil
}
