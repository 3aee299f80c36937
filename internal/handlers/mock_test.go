package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/csg33k/launchboard/internal/domain"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListStartups(ctx context.Context) ([]domain.Startup, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Startup)
	return list, args.Error(1)
}

func (m *mockAPI) GetStartup(ctx context.Context, id int64) (*domain.Startup, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Startup)
	return s, args.Error(1)
}

func (m *mockAPI) CreateStartup(ctx context.Context, in domain.StartupInput) (*domain.Startup, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*domain.Startup)
	return s, args.Error(1)
}

func (m *mockAPI) UpdateStartup(ctx context.Context, id int64, in domain.StartupInput) (*domain.Startup, error) {
	args := m.Called(ctx, id, in)
	s, _ := args.Get(0).(*domain.Startup)
	return s, args.Error(1)
}

func (m *mockAPI) DeleteStartup(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockAPI) UploadLogo(ctx context.Context, id int64, filename string, r io.Reader) error {
	args := m.Called(ctx, id, filename, r)
	return args.Error(0)
}

func (m *mockAPI) UploadExcel(ctx context.Context, filename string, r io.Reader) error {
	args := m.Called(ctx, filename, r)
	return args.Error(0)
}

func (m *mockAPI) ListPlatforms(ctx context.Context) ([]domain.Platform, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Platform)
	return list, args.Error(1)
}

func (m *mockAPI) GetPlatform(ctx context.Context, id int64) (*domain.Platform, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Platform)
	return p, args.Error(1)
}

func (m *mockAPI) TogglePlatform(ctx context.Context, id int64) (*domain.Platform, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Platform)
	return p, args.Error(1)
}

func (m *mockAPI) ListSubmissions(ctx context.Context) ([]domain.Submission, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]domain.Submission)
	return list, args.Error(1)
}

func (m *mockAPI) GetSubmission(ctx context.Context, id int64) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}

func (m *mockAPI) CreateSubmission(ctx context.Context, in domain.SubmissionInput) (*domain.Submission, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}

func (m *mockAPI) UpdateStatus(ctx context.Context, id int64, u domain.StatusUpdate) (*domain.Submission, error) {
	args := m.Called(ctx, id, u)
	s, _ := args.Get(0).(*domain.Submission)
	return s, args.Error(1)
}

func (m *mockAPI) ListByStartup(ctx context.Context, startupID int64) ([]domain.Submission, error) {
	args := m.Called(ctx, startupID)
	list, _ := args.Get(0).([]domain.Submission)
	return list, args.Error(1)
}

type recordingReport struct {
	subs    []domain.Submission
	caption string
}

func (r *recordingReport) Generate(subs []domain.Submission, caption string, w io.Writer) error {
	r.subs, r.caption = subs, caption
	_, err := w.Write([]byte("%PDF-1.3 stub"))
	return err
}
