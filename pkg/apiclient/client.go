// Package apiclient is a JSON client for the employee records REST surface.
// It is the table view's fetch boundary. Mutations are never retried
// automatically; a transport failure is returned to the caller untouched.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"employee-records/internal/api"
	"employee-records/internal/entities"

	"go.uber.org/zap"
)

// Client talks to a running employee records server.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.SugaredLogger
}

// New creates a client for the server at baseURL.
func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        log.Named("apiclient"),
	}
}

// APIError carries the decoded error body of a non-2xx response.
type APIError struct {
	StatusCode int
	Code       api.ErrorResponseErrorCode
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status=%d code=%s message=%s", e.StatusCode, e.Code, e.Message)
}

// ListEmployees fetches the full row set.
func (c *Client) ListEmployees(ctx context.Context) ([]entities.Employee, error) {
	var dtos []api.Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees", nil, &dtos); err != nil {
		return nil, err
	}

	rows := make([]entities.Employee, 0, len(dtos))
	for _, d := range dtos {
		rows = append(rows, fromDTO(d))
	}
	return rows, nil
}

// GetEmployee fetches a single record by id.
func (c *Client) GetEmployee(ctx context.Context, id string) (*entities.Employee, error) {
	var dto api.Employee
	if err := c.do(ctx, http.MethodGet, "/api/employees/"+id, nil, &dto); err != nil {
		return nil, err
	}
	e := fromDTO(dto)
	return &e, nil
}

// CreateEmployee posts a new record and returns the stored value.
func (c *Client) CreateEmployee(ctx context.Context, in api.CreateEmployeeRequest) (*entities.Employee, error) {
	var dto api.Employee
	if err := c.do(ctx, http.MethodPost, "/api/employees", in, &dto); err != nil {
		return nil, err
	}
	e := fromDTO(dto)
	return &e, nil
}

// UpdateEmployee patches an existing record.
func (c *Client) UpdateEmployee(ctx context.Context, id string, in api.UpdateEmployeeRequest) (*entities.Employee, error) {
	var dto api.Employee
	if err := c.do(ctx, http.MethodPatch, "/api/employees/"+id, in, &dto); err != nil {
		return nil, err
	}
	e := fromDTO(dto)
	return &e, nil
}

// DeleteEmployee removes a record by id.
func (c *Client) DeleteEmployee(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/employees/"+id, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorw("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return c.decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	} else {
		_, _ = io.Copy(io.Discard, resp.Body)
	}
	return nil
}

func (c *Client) decodeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusNotFound {
		return entities.ErrEmployeeNotFound
	}

	apiErr := &APIError{StatusCode: resp.StatusCode, Code: api.INTERNAL}
	var body api.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		apiErr.Code = body.Error.Code
		apiErr.Message = body.Error.Message
	}
	return apiErr
}

func fromDTO(d api.Employee) entities.Employee {
	return entities.Employee{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		Department:   d.Department,
		Role:         d.Role,
		Salary:       d.Salary,
		Status:       entities.EmployeeStatus(d.Status),
		AvatarURL:    d.AvatarURL,
		EmployeeCode: d.EmployeeCode,
		CreatedAt:    d.CreatedAt,
	}
}
