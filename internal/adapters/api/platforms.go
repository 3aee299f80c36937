package api

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/csg33k/launchboard/internal/domain"
)

func (c *Client) UploadExcel(ctx context.Context, filename string, r io.Reader) error {
	return c.doMultipart(ctx, "platforms.upload", "/platforms/upload", filename, domain.XLSXMimeType, r)
}

func (c *Client) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	var out []domain.Platform
	if err := c.doJSON(ctx, "platforms.list", http.MethodGet, "/platforms", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetPlatform(ctx context.Context, id int64) (*domain.Platform, error) {
	var out domain.Platform
	if err := c.doJSON(ctx, "platforms.get", http.MethodGet, fmt.Sprintf("/platforms/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TogglePlatform(ctx context.Context, id int64) (*domain.Platform, error) {
	var out domain.Platform
	if err := c.doJSON(ctx, "platforms.toggle", http.MethodPatch, fmt.Sprintf("/platforms/%d/toggle", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
