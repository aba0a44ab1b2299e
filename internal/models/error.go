package models

import (
	"errors"
	"fmt"
)

var (
	ErrOrderIDRequired = errors.New("order id is required")
	ErrGoodIDRequired  = errors.New("good id is required")
	ErrInvalidID       = errors.New("id must not be a dot segment")
)

// StatusError reports a response whose status code is not 2xx
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e StatusError) Error() string {
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.URL, e.StatusCode)
}

// NewStatusError creates new StatusError
func NewStatusError(method, url string, statusCode int, body []byte) error {
	return StatusError{
		Method:     method,
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
	}
}
