package common

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
)

// DayLayout is the wire format of calendar days.
const DayLayout = "2006-01-02"

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendValidationError sends a validation error response
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]string{
		field: message,
	}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("VALIDATION_ERROR", "Validation failed", details))
}

// SendClientError sends a client error response
func SendClientError(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, CreateErrorResponse("CLIENT_ERROR", message, nil))
}

// SendReferentialError sends a response for a write against a missing menu item
func SendReferentialError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnprocessableEntity, CreateErrorResponse("REFERENTIAL_ERROR", message, nil))
}

// SendUnavailableError sends a transient storage failure response
func SendUnavailableError(c echo.Context) error {
	return c.JSON(http.StatusServiceUnavailable, CreateErrorResponse("STORAGE_UNAVAILABLE", "Storage is temporarily unavailable, please try again", nil))
}

// SendServerError sends a server error response
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse("SERVER_ERROR", message, nil))
}

// SendError maps a service error onto the matching error response.
func SendError(c echo.Context, operation string, err error) error {
	var ve *ValidationError
	var re *ReferentialError
	switch {
	case errors.As(err, &ve):
		return SendValidationError(c, ve.Field, ve.Message)
	case errors.As(err, &re):
		return SendReferentialError(c, re.Error())
	case errors.Is(err, ErrStorageUnavailable):
		log.Printf("WARN: %s: %v", operation, err)
		return SendUnavailableError(c)
	default:
		log.Printf("ERROR: %s: %v", operation, err)
		return SendServerError(c, fmt.Sprintf("Failed to %s", operation))
	}
}

// ParseDay parses an optional YYYY-MM-DD day. An empty string yields the zero time,
// which callers treat as "the store's current date".
func ParseDay(dayStr string) (time.Time, error) {
	dayStr = strings.TrimSpace(dayStr)
	if dayStr == "" {
		return time.Time{}, nil
	}
	day, err := time.Parse(DayLayout, dayStr)
	if err != nil {
		return time.Time{}, NewValidationError("day", "day must be in YYYY-MM-DD format")
	}
	return day, nil
}

// FormatDay renders a day in wire format; the zero time renders as an empty string.
func FormatDay(day time.Time) string {
	if day.IsZero() {
		return ""
	}
	return day.Format(DayLayout)
}
