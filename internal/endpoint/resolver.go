package endpoint

import (
	"fmt"
	"net/url"
)

// Resolver maps relative resource path to absolute resource url
type Resolver interface {
	Resolve(path string) (string, error)
}

// Static resolves paths against one server url
type Static struct {
	serverURL string
}

// NewStatic creates new Static resolver. serverURL must be absolute.
func NewStatic(serverURL string) (*Static, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server url %q is not absolute", serverURL)
	}

	return &Static{serverURL: serverURL}, nil
}

// Resolve returns server url joined with path
func (s *Static) Resolve(path string) (string, error) {
	return url.JoinPath(s.serverURL, path)
}
