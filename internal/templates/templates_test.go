package templates

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
	"github.com/csg33k/launchboard/internal/pipeline"
	"github.com/csg33k/launchboard/internal/toast"
)

func renderString(t *testing.T, ctx context.Context, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(ctx, &buf))
	return buf.String()
}

func TestDashboard_ShellLoadsRows(t *testing.T) {
	out := renderString(t, context.Background(), Dashboard())
	assert.Contains(t, out, `hx-get="/dashboard/rows"`)
	assert.Contains(t, out, `class="spinner"`)
	assert.Contains(t, out, `<div id="toasts"></div>`)
}

func TestDashboardRows(t *testing.T) {
	rows := []DashboardRow{
		{
			Startup:     domain.Startup{ID: 7, Name: "Acme", Tagline: "Rockets", Website: "https://acme.io/about"},
			Submissions: []domain.Submission{{Status: domain.StatusInProgress}},
		},
		{Startup: domain.Startup{ID: 8, Name: "Zed", Website: "https://zed.dev"}},
	}
	out := renderString(t, context.Background(), DashboardRows(page.NewLoading[[]DashboardRow]().Resolve(rows, nil)))

	assert.Contains(t, out, ">acme.io<")
	assert.Contains(t, out, "IN PROGRESS")
	assert.Contains(t, out, "badge-progress")
	assert.Contains(t, out, "No submissions")
	assert.Contains(t, out, `href="/startups/7"`)
	assert.NotContains(t, out, "hx-swap-oob")
}

func TestDashboardRows_Empty(t *testing.T) {
	out := renderString(t, context.Background(), DashboardRows(page.State[[]DashboardRow]{}.Resolve(nil, errors.New("down"))))
	assert.Contains(t, out, "No startups yet.")
}

func TestFragment_AppendsQueuedToastsOutOfBand(t *testing.T) {
	q := &toast.Queue{}
	q.Error("Service unavailable")
	ctx := toast.WithQueue(context.Background(), q)

	out := renderString(t, ctx, PlatformRow(domain.Platform{ID: 3, Name: "Product Hunt", IsActive: true}))
	assert.Contains(t, out, `hx-swap-oob="beforeend:#toasts"`)
	assert.Contains(t, out, "Service unavailable")
	assert.Equal(t, 0, q.Len())
}

func TestPage_RendersQueuedToastsInStack(t *testing.T) {
	q := &toast.Queue{}
	q.Success("Startup added successfully!")
	ctx := toast.WithQueue(context.Background(), q)

	out := renderString(t, ctx, Dashboard())
	assert.Contains(t, out, `class="toast toast-success"`)
	assert.Contains(t, out, "Startup added successfully!")
	assert.NotContains(t, out, "hx-swap-oob")
}

func TestToasts_EmptyQueueRendersNothing(t *testing.T) {
	out := renderString(t, toast.WithQueue(context.Background(), &toast.Queue{}), Toasts())
	assert.Empty(t, out)
}

func TestStartupForm_EchoesValues(t *testing.T) {
	f := page.NewForm(StartupFormValues{Name: "Acme <Labs>", Website: "https://acme.io", FoundedYear: "2020"}).
		Submit().
		Finish(errors.New("boom"))
	out := renderString(t, context.Background(), StartupFormFragment(NewStartupFormView(f, 2026)))

	assert.Contains(t, out, `hx-post="/startups"`)
	assert.Contains(t, out, `value="Acme &lt;Labs&gt;"`)
	assert.Contains(t, out, `value="2020"`)
	assert.Contains(t, out, `min="1900"`)
	assert.Contains(t, out, `max="2026"`)
	assert.Contains(t, out, "Adding...")
	assert.NotContains(t, out, " disabled")
}

func TestStartupForm_EditUsesPut(t *testing.T) {
	out := renderString(t, context.Background(), StartupForm(EditStartupFormView(4, page.NewForm(StartupFormValues{}), 2026)))
	assert.Contains(t, out, `hx-put="/startups/4"`)
	assert.Contains(t, out, "Save Changes")
}

func TestStartupDetail_SanitizesDescription(t *testing.T) {
	year := 2019
	v := StartupDetailView{
		Startup: domain.Startup{
			ID:          2,
			Name:        "Acme",
			Website:     "https://acme.io",
			Description: "<b>Fast</b>\n<script>alert(1)</script>",
			FoundedYear: &year,
		},
		Submissions: page.NewLoading[[]domain.Submission]().Resolve([]domain.Submission{
			{Status: domain.StatusFailed, ErrorMessage: "captcha"},
		}, nil),
	}
	out := renderString(t, context.Background(), StartupDetail(v))

	assert.Contains(t, out, "<b>Fast</b><br>")
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, ">2019<")
	assert.Contains(t, out, `hx-delete="/startups/2"`)
	assert.Contains(t, out, `hx-post="/startups/2/logo"`)
	assert.Contains(t, out, "captcha")
	assert.Contains(t, out, "Unknown Platform")
}

func TestPlatformUpload(t *testing.T) {
	out := renderString(t, context.Background(), PlatformUpload(page.NewForm("")))
	assert.Contains(t, out, `accept=".xlsx"`)
	assert.Contains(t, out, "spreadsheetml.sheet")
	assert.Contains(t, out, "Uploading...")
	assert.NotContains(t, out, "Last attempt")

	out = renderString(t, context.Background(), PlatformUploadForm(page.NewForm("list.csv").Finish(errors.New("bad"))))
	assert.Contains(t, out, "list.csv")
	assert.NotContains(t, out, `value="list.csv"`)
}

func TestPlatformRow_Toggle(t *testing.T) {
	out := renderString(t, context.Background(), PlatformRow(domain.Platform{ID: 9, Name: "BetaList", URL: "https://betalist.com", SubmissionType: domain.SubmissionTypeAPI}))
	assert.Contains(t, out, `hx-patch="/platforms/9/toggle"`)
	assert.Contains(t, out, `hx-target="closest tr"`)
	assert.Contains(t, out, "INACTIVE")
	assert.Contains(t, out, "Activate")
	assert.Contains(t, out, ">API")
}

func TestSubmissionsTable(t *testing.T) {
	created := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)
	v := SubmissionsView{
		ViewID: "v1",
		Filter: pipeline.Filter{Status: domain.StatusPending},
		Sort:   pipeline.Sort{Key: pipeline.SortStartup, Dir: pipeline.Asc},
		Rows: []domain.Submission{
			{ID: 1, Status: domain.StatusPending, CreatedAt: created},
			{
				ID:        2,
				Status:    domain.StatusPending,
				CreatedAt: created,
				Startup:   &domain.Startup{ID: 5, Name: "Acme", Tagline: "Rockets"},
				Platform:  &domain.Platform{Name: "Product Hunt", SubmissionType: domain.SubmissionTypeSelenium},
			},
		},
		Total: 6,
	}
	out := renderString(t, context.Background(), SubmissionsTable(v))

	assert.Contains(t, out, "Unknown Startup")
	assert.Contains(t, out, "Unknown Platform")
	assert.Contains(t, out, "SELENIUM")
	assert.Contains(t, out, `href="/startups/5"`)
	assert.Contains(t, out, "View Startup")
	assert.Contains(t, out, "2 of 6 submissions")
	assert.Contains(t, out, "Startup ↑")
	assert.Contains(t, out, "sort=startup&amp;status=pending&amp;view=v1")
	assert.Contains(t, out, "/submissions/report.pdf?")
	assert.Contains(t, out, `id="filter-view" name="view" value="v1" hx-swap-oob="true"`)
}

func TestSubmissionsPanel(t *testing.T) {
	v := SubmissionsView{ViewID: "v2", Sort: pipeline.DefaultSort}
	out := renderString(t, context.Background(), SubmissionsPanel(page.NewLoading[SubmissionsView]().Resolve(v, nil)))

	assert.Contains(t, out, `id="submission-filters"`)
	assert.Contains(t, out, "All Statuses")
	assert.Contains(t, out, ">In Progress<")
	assert.Contains(t, out, "No submissions found")
	assert.Contains(t, out, "Created At ↓")
	assert.Contains(t, out, "change from:#filter-status")
	assert.NotContains(t, out, "delay:250ms, change\"")
	assert.NotContains(t, out, "hx-swap-oob")
}

func TestSubmissions_ShellLoadsPanel(t *testing.T) {
	out := renderString(t, context.Background(), Submissions())
	assert.Contains(t, out, `hx-get="/submissions/table"`)
	assert.Contains(t, out, `hx-trigger="load"`)
}
