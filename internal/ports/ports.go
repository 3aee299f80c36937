package ports

import (
	"context"
	"io"

	"github.com/csg33k/launchboard/internal/domain"
)

// StartupAPI defines the remote startup resource.
type StartupAPI interface {
	ListStartups(ctx context.Context) ([]domain.Startup, error)
	GetStartup(ctx context.Context, id int64) (*domain.Startup, error)
	CreateStartup(ctx context.Context, in domain.StartupInput) (*domain.Startup, error)
	UpdateStartup(ctx context.Context, id int64, in domain.StartupInput) (*domain.Startup, error)
	DeleteStartup(ctx context.Context, id int64) error
	UploadLogo(ctx context.Context, id int64, filename string, r io.Reader) error
}

// PlatformAPI defines the remote platform resource.
type PlatformAPI interface {
	// UploadExcel hands a spreadsheet to the API, which parses it and
	// creates one platform per row.
	UploadExcel(ctx context.Context, filename string, r io.Reader) error
	ListPlatforms(ctx context.Context) ([]domain.Platform, error)
	GetPlatform(ctx context.Context, id int64) (*domain.Platform, error)
	TogglePlatform(ctx context.Context, id int64) (*domain.Platform, error)
}

// SubmissionAPI defines the remote submission resource.
type SubmissionAPI interface {
	ListSubmissions(ctx context.Context) ([]domain.Submission, error)
	GetSubmission(ctx context.Context, id int64) (*domain.Submission, error)
	CreateSubmission(ctx context.Context, in domain.SubmissionInput) (*domain.Submission, error)
	UpdateStatus(ctx context.Context, id int64, u domain.StatusUpdate) (*domain.Submission, error)
	ListByStartup(ctx context.Context, startupID int64) ([]domain.Submission, error)
}

// API is the whole remote service as the pages consume it.
type API interface {
	StartupAPI
	PlatformAPI
	SubmissionAPI
}

// ViewStore keeps the submissions fetched when a page was opened so that
// filtering and sorting never go back to the API.
type ViewStore interface {
	Save(ctx context.Context, subs []domain.Submission) (viewID string, err error)
	// Load returns ok=false when the view is unknown or expired.
	Load(ctx context.Context, viewID string) (subs []domain.Submission, ok bool, err error)
}

// ReportGenerator renders a list of submissions as a downloadable document.
type ReportGenerator interface {
	Generate(subs []domain.Submission, caption string, w io.Writer) error
}
