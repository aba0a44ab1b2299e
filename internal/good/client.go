package good

import (
	"context"
	"github.com/rookgm/orderclient/internal/models"
	"github.com/rookgm/orderclient/internal/rest"
	"net/http"
)

// ResourcePath is goods resource path relative to the server url
const ResourcePath = "api/goods"

// Client is access client for goods resource
type Client struct {
	rest *rest.Client
}

// NewClient creates new goods Client
func NewClient(rc *rest.Client) *Client {
	return &Client{rest: rc}
}

type amountPatch struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

// UpdateAmount sets stock amount of good id
func (c *Client) UpdateAmount(ctx context.Context, id string, amount int) (*models.Response[*models.Good], error) {
	if id == "" {
		return nil, models.ErrGoodIDRequired
	}

	// PATCH /api/goods/{id}
	raw, err := c.rest.Do(ctx, rest.Request{
		Method:      http.MethodPatch,
		ID:          id,
		Body:        amountPatch{ID: id, Amount: amount},
		ContentType: rest.ContentTypeMergePatch,
	})
	if err != nil {
		return nil, err
	}

	return rest.Decode[*models.Good](raw)
}

