// Package apierror reports non-200 responses from model providers.
package apierror

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBody caps how much of an error body is kept. Providers sometimes
// answer with a full HTML page.
const maxBody = 4 << 10

// Error is a provider response with an unexpected status.
type Error struct {
	Provider string
	Status   int
	Body     string
}

func (e *Error) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s error (status %d)", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s error (status %d): %s", e.Provider, e.Status, e.Body)
}

// Check returns nil for 200 OK. Otherwise it reads up to 4 KiB of the body
// into an *Error. The caller still owns and closes resp.Body.
func Check(provider string, resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return &Error{Provider: provider, Status: resp.StatusCode, Body: "failed to read response"}
	}
	return &Error{Provider: provider, Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
}
