package gateway

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Error carries a gateway failure through to the caller unchanged. The
// workflow never retries; the rendering layer shows the message and the
// user decides whether to try again.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.Status, e.Message)
}

// errorFromResponse extracts the gateway's error message from a non-2xx
// response body, falling back to the raw body when it is not the usual
// {"error": {"message": ...}} shape.
func errorFromResponse(resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}

	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return &Error{Status: resp.StatusCode, Message: payload.Error.Message}
	}

	return &Error{Status: resp.StatusCode, Message: string(body)}
}
