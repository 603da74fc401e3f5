package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/pkg/logger"
)

const (
	RefGitHubAPI      = "GITHUB_API_ERROR"
	RefNetwork        = "NETWORK_ERROR"
	RefInvalidRequest = "INVALID_REQUEST"
)

// APIError is the single error shape surfaced by the GitHub access layer.
// Status is zero when no HTTP response was received at all.
type APIError struct {
	Reference  string
	Message    string
	Status     int
	RootCause  error
	OccurredAt time.Time
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("[%s] %s (status %d)", e.Reference, e.Message, e.Status)
	}
	if e.RootCause != nil {
		return fmt.Sprintf("[%s] %s (caused by: %v)", e.Reference, e.Message, e.RootCause)
	}
	return fmt.Sprintf("[%s] %s", e.Reference, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.RootCause
}

// * New builds a provider error. An empty message falls back to "API error: <status>".
func New(message string, status int, cause error) *APIError {
	if message == "" {
		message = fmt.Sprintf("API error: %d", status)
	}
	return &APIError{
		Reference:  RefGitHubAPI,
		Message:    message,
		Status:     status,
		RootCause:  cause,
		OccurredAt: time.Now().UTC(),
	}
}

// * Network builds the status-less error used when no response came back.
func Network(noun string, cause error) *APIError {
	return &APIError{
		Reference:  RefNetwork,
		Message:    "Failed to fetch " + noun,
		RootCause:  cause,
		OccurredAt: time.Now().UTC(),
	}
}

func BadRequest(message string, cause error) *APIError {
	return &APIError{
		Reference:  RefInvalidRequest,
		Message:    message,
		Status:     http.StatusBadRequest,
		RootCause:  cause,
		OccurredAt: time.Now().UTC(),
	}
}

// * StatusOf returns the provider status carried by err, or 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

type HTTPErrorResponse struct {
	Status     int       `json:"status"`
	ErrorRef   string    `json:"error_reference,omitempty"`
	Title      string    `json:"title"`
	Detail     string    `json:"detail,omitempty"`
	Resolution string    `json:"resolution,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

func WriteHTTPError(w http.ResponseWriter, err error) {
	var apiErr *APIError

	resp := HTTPErrorResponse{
		Status:    http.StatusInternalServerError,
		Title:     "An unexpected error occurred",
		Timestamp: time.Now().UTC(),
	}

	if errors.As(err, &apiErr) {
		resp.ErrorRef = apiErr.Reference
		resp.Title = apiErr.Message

		switch {
		case apiErr.Status == 0:
			resp.Status = http.StatusBadGateway
			resp.Resolution = "GitHub could not be reached, please retry"
		case apiErr.Status == http.StatusUnauthorized:
			resp.Status = http.StatusUnauthorized
			resp.Resolution = "The configured GitHub token is invalid or expired"
		case apiErr.Status == http.StatusForbidden || apiErr.Status == http.StatusTooManyRequests:
			resp.Status = apiErr.Status
			resp.Resolution = "GitHub rate limit reached, wait for the reset or configure a token"
		case apiErr.Status >= 500:
			resp.Status = http.StatusBadGateway
			resp.Resolution = "GitHub returned a server error, please retry"
		default:
			resp.Status = apiErr.Status
		}
	} else {
		resp.Detail = err.Error()
	}

	if resp.Status >= 500 {
		logger.Error("%v", err)
	} else {
		logger.Warn("%v", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.Status)
	json.NewEncoder(w).Encode(resp)
}
