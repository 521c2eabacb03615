package esig

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrEndpointRequired      = errors.New("endpoint is required")
	ErrCredentialsRequired   = errors.New("username and password are required")
	ErrUnsupportedAPIVersion = errors.New("unsupported API version")
	ErrNoHostInURL           = errors.New("no host specified in URL")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidOrderIndex     = errors.New("order index must be positive")
	ErrUnexpectedElementType = errors.New("unexpected element type")
	ErrNotSupportedByVersion = errors.New("operation not supported by this API version")
	ErrUnsanitizedName       = errors.New("name contains characters SanitizeName would remove")
	ErrInputRequired         = errors.New("input is required")
)

// ConnectiveError is one entry of the error list the platform returns with
// failed requests.
type ConnectiveError struct {
	ErrorCode    string `json:"ErrorCode"    yaml:"ErrorCode"`
	ErrorMessage string `json:"ErrorMessage" yaml:"ErrorMessage"`
}

// HTTPError is returned for every response with a non-2xx status.
type HTTPError struct {
	StatusCode int
	Method     string
	URL        string
	// Body is the raw response body. It is never modified.
	Body []byte

	message  string
	enriched bool
}

// NewHTTPError returns an HTTPError with the default message.
func NewHTTPError(method, url string, statusCode int, body []byte) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Method:     method,
		URL:        url,
		Body:       body,
		message:    fmt.Sprintf("%s %s: request failed with status code %d", method, url, statusCode),
	}
}

func (e *HTTPError) Error() string {
	return e.message
}

// ConnectiveErrors returns the structured errors in the body. It returns nil
// unless the body is a non-empty JSON array whose first item has an
// ErrorCode key.
func (e *HTTPError) ConnectiveErrors() []ConnectiveError {
	return ParseConnectiveErrors(e.Body)
}

// ParseConnectiveErrors decodes a platform error body.
func ParseConnectiveErrors(body []byte) []ConnectiveError {
	var items []map[string]json.RawMessage

	err := json.Unmarshal(body, &items)
	if err != nil || len(items) == 0 {
		return nil
	}

	if _, ok := items[0]["ErrorCode"]; !ok {
		return nil
	}

	var out []ConnectiveError

	err = json.Unmarshal(body, &out)
	if err != nil {
		return nil
	}

	return out
}

// EnrichError appends the platform's structured errors to the message of an
// HTTPError found in err's chain:
//
//	<message>. Connective errors:
//	 - <ErrorCode>: <ErrorMessage>
//
// The body and every other field stay untouched, and the same error is
// returned. Other errors, and HTTPErrors without structured errors, are
// returned unchanged. Enriching twice has no further effect.
func EnrichError(err error) error {
	httpErr := &HTTPError{}
	if !errors.As(err, &httpErr) || httpErr.enriched {
		return err
	}

	details := httpErr.ConnectiveErrors()
	if len(details) == 0 {
		return err
	}

	lines := make([]string, len(details))
	for i, d := range details {
		lines[i] = fmt.Sprintf(" - %s: %s", d.ErrorCode, d.ErrorMessage)
	}

	httpErr.message += ". Connective errors:\n" + strings.Join(lines, "\n")
	httpErr.enriched = true

	return err
}

// HasErrorCode reports whether err carries a platform error with the given code.
func HasErrorCode(err error, code string) bool {
	httpErr := &HTTPError{}
	if !errors.As(err, &httpErr) {
		return false
	}

	for _, d := range httpErr.ConnectiveErrors() {
		if d.ErrorCode == code {
			return true
		}
	}

	return false
}

// IsNotFound checks if the error is a 404 response.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is a 401 response.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsForbidden checks if the error is a 403 response.
func IsForbidden(err error) bool {
	return hasStatus(err, http.StatusForbidden)
}

func hasStatus(err error, status int) bool {
	httpErr := &HTTPError{}
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == status
	}

	return false
}
