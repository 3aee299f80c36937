package domain

import (
	"strings"
	"time"
)

const (
	// MaxUploadSize is the platform spreadsheet limit advertised by the API.
	// The upload page does not enforce it; the API does.
	MaxUploadSize = 5 << 20

	// XLSXMimeType is the only file type the platform upload page accepts.
	XLSXMimeType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// ToastDuration is how long a notification stays on screen.
	ToastDuration = 5 * time.Second

	// MinFoundedYear is the lower bound of the founded-year input.
	MinFoundedYear = 1900
)

// SubmissionStatus is the lifecycle of a startup's listing attempt on a platform.
type SubmissionStatus string

const (
	StatusPending    SubmissionStatus = "pending"
	StatusInProgress SubmissionStatus = "in_progress"
	StatusCompleted  SubmissionStatus = "completed"
	StatusFailed     SubmissionStatus = "failed"
)

// Statuses lists every status in the order the filter select shows them.
var Statuses = []SubmissionStatus{StatusPending, StatusInProgress, StatusCompleted, StatusFailed}

// Valid reports whether s is one of the known statuses.
func (s SubmissionStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Label is the badge text: the first underscore becomes a space, then upper-cased.
func (s SubmissionStatus) Label() string {
	return strings.ToUpper(strings.Replace(string(s), "_", " ", 1))
}

// Title is the human form used in the status filter ("In Progress").
func (s SubmissionStatus) Title() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// SubmissionType is how a platform accepts submissions.
type SubmissionType string

const (
	SubmissionTypeAPI      SubmissionType = "api"
	SubmissionTypeSelenium SubmissionType = "selenium"
)

type Startup struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Tagline       string    `json:"tagline,omitempty"`
	Website       string    `json:"website"`
	Description   string    `json:"description"`
	FoundedYear   *int      `json:"founded_year,omitempty"`
	LogoURL       string    `json:"logo_url,omitempty"`
	TwitterHandle string    `json:"twitter_handle,omitempty"`
	LinkedInURL   string    `json:"linkedin_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// StartupInput is the create/update payload. Optional fields are omitted
// when blank so the API applies its own defaults.
type StartupInput struct {
	Name          string `json:"name"`
	Website       string `json:"website"`
	Description   string `json:"description"`
	Tagline       string `json:"tagline,omitempty"`
	FoundedYear   *int   `json:"founded_year,omitempty"`
	TwitterHandle string `json:"twitter_handle,omitempty"`
	LinkedInURL   string `json:"linkedin_url,omitempty"`
	// LogoURL is not on the form. The API replaces every column on update,
	// so an edit has to send the current one back.
	LogoURL string `json:"logo_url,omitempty"`
}

type Platform struct {
	ID                 int64          `json:"id"`
	Name               string         `json:"name"`
	URL                string         `json:"url"`
	SubmissionType     SubmissionType `json:"submission_type"`
	SubmissionEndpoint string         `json:"submission_endpoint,omitempty"`
	APIKeyRequired     bool           `json:"api_key_required"`
	IsActive           bool           `json:"is_active"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

type Submission struct {
	ID           int64            `json:"id"`
	StartupID    int64            `json:"startup_id"`
	PlatformID   int64            `json:"platform_id"`
	Status       SubmissionStatus `json:"status"`
	ErrorMessage string           `json:"error_message,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	// Startup and Platform are embedded by the list endpoints and may be null.
	Startup  *Startup  `json:"startup,omitempty"`
	Platform *Platform `json:"platform,omitempty"`
}

// StartupName is the related startup's name, or "" when it was not embedded.
func (s *Submission) StartupName() string {
	if s.Startup == nil {
		return ""
	}
	return s.Startup.Name
}

// PlatformName is the related platform's name, or "" when it was not embedded.
func (s *Submission) PlatformName() string {
	if s.Platform == nil {
		return ""
	}
	return s.Platform.Name
}

type SubmissionInput struct {
	StartupID  int64            `json:"startup_id"`
	PlatformID int64            `json:"platform_id"`
	Status     SubmissionStatus `json:"status,omitempty"`
}

// StatusUpdate is the body of PATCH /submissions/{id}/status.
// ErrorMessage is sent as null when nil.
type StatusUpdate struct {
	Status       SubmissionStatus `json:"status"`
	ErrorMessage *string          `json:"error_message"`
}
