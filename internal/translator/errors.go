package translator

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrAuthentication means the provider rejected the API key.
	ErrAuthentication = errors.New("authentication failed")
	ErrEmptyResponse  = errors.New("empty response from API")
)

// statusError builds the error for a non-2xx reply. A 401, an
// invalid_api_key code, or an "Incorrect API key" message all count as
// authentication failures.
func statusError(name string, status int, code, message string) error {
	if message == "" {
		message = http.StatusText(status)
	}
	if status == http.StatusUnauthorized ||
		code == "invalid_api_key" ||
		strings.Contains(message, "Incorrect API key") {
		return fmt.Errorf("%s: %w: %s", name, ErrAuthentication, message)
	}
	return fmt.Errorf("%s: API returned status %d: %s", name, status, message)
}
