package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/csg33k/launchboard/internal/domain"
)

func (c *Client) ListSubmissions(ctx context.Context) ([]domain.Submission, error) {
	var out []domain.Submission
	if err := c.doJSON(ctx, "submissions.list", http.MethodGet, "/submissions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetSubmission(ctx context.Context, id int64) (*domain.Submission, error) {
	var out domain.Submission
	if err := c.doJSON(ctx, "submissions.get", http.MethodGet, fmt.Sprintf("/submissions/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateSubmission(ctx context.Context, in domain.SubmissionInput) (*domain.Submission, error) {
	var out domain.Submission
	if err := c.doJSON(ctx, "submissions.create", http.MethodPost, "/submissions", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateStatus(ctx context.Context, id int64, u domain.StatusUpdate) (*domain.Submission, error) {
	var out domain.Submission
	if err := c.doJSON(ctx, "submissions.update_status", http.MethodPatch, fmt.Sprintf("/submissions/%d/status", id), u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListByStartup(ctx context.Context, startupID int64) ([]domain.Submission, error) {
	var out []domain.Submission
	if err := c.doJSON(ctx, "submissions.by_startup", http.MethodGet, fmt.Sprintf("/submissions/startup/%d", startupID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
