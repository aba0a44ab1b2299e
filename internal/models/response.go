package models

import "net/http"

// Response is response envelope: status and headers of the HTTP response with a decoded body
type Response[T any] struct {
	StatusCode int
	Header     http.Header
	Body       T
}
