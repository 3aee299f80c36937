package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/csg33k/launchboard/internal/domain"
)

func (c *Client) ListStartups(ctx context.Context) ([]domain.Startup, error) {
	var out []domain.Startup
	if err := c.doJSON(ctx, "startups.list", http.MethodGet, "/startups", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStartup(ctx context.Context, id int64) (*domain.Startup, error) {
	var out domain.Startup
	if err := c.doJSON(ctx, "startups.get", http.MethodGet, fmt.Sprintf("/startups/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateStartup(ctx context.Context, in domain.StartupInput) (*domain.Startup, error) {
	var out domain.Startup
	if err := c.doJSON(ctx, "startups.create", http.MethodPost, "/startups", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStartup(ctx context.Context, id int64, in domain.StartupInput) (*domain.Startup, error) {
	var out domain.Startup
	if err := c.doJSON(ctx, "startups.update", http.MethodPut, fmt.Sprintf("/startups/%d", id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteStartup(ctx context.Context, id int64) error {
	return c.doJSON(ctx, "startups.delete", http.MethodDelete, fmt.Sprintf("/startups/%d", id), nil, nil)
}

// UploadLogo sends an image; its content type is sniffed from the bytes.
func (c *Client) UploadLogo(ctx context.Context, id int64, filename string, r io.Reader) error {
	return c.doMultipart(ctx, "startups.upload_logo", fmt.Sprintf("/startups/%d/logo", id), filename, "", r)
}
