package endpoint

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewStatic(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
		wantErr   bool
	}{
		{
			name:      "absolute_url",
			serverURL: "http://localhost:8080",
		},
		{
			name:      "relative_url",
			serverURL: "/api",
			wantErr:   true,
		},
		{
			name:      "bad_url",
			serverURL: "http://[::1",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStatic(tt.serverURL)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStatic_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		serverURL string
		path      string
		want      string
	}{
		{
			name:      "plain_server",
			serverURL: "http://localhost:8080",
			path:      "api/orders",
			want:      "http://localhost:8080/api/orders",
		},
		{
			name:      "server_with_prefix_and_slashes",
			serverURL: "https://shop.example.com/services/",
			path:      "/api/goods",
			want:      "https://shop.example.com/services/api/goods",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewStatic(tt.serverURL)
			require.NoError(t, err)

			got, err := r.Resolve(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
