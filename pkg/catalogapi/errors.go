package catalogapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrNoFile is returned by the server when an upload carries no file part.
	ErrNoFile = errors.New("no file provided")
)

// Error is a non-2xx response from the catalog API.
type Error struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: unexpected status code: %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status code: %d: %s", e.Op, e.StatusCode, e.Message)
}

// Is lets errors.Is match the sentinels above by status code and message.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrNoFile:
		return e.StatusCode == http.StatusBadRequest && strings.EqualFold(e.Message, "No file provided")
	}
	return false
}

const maxErrorBodySize = 4 << 10

func newResponseError(op string, resp *http.Response) *Error {
	e := &Error{Op: op, StatusCode: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil || len(body) == 0 {
		return e
	}
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if json.Unmarshal(body, &payload) == nil {
		switch {
		case payload.Error != "":
			e.Message = payload.Error
		case payload.Detail != "":
			e.Message = payload.Detail
		}
		return e
	}
	e.Message = strings.TrimSpace(string(body))
	return e
}
