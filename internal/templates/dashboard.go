package templates

import (
	"github.com/a-h/templ"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
)

// DashboardRow is one startup with the submissions fetched for it.
type DashboardRow struct {
	Startup     domain.Startup
	Submissions []domain.Submission
}

var dashboardPage = newPage(dashboardSrc)

// Dashboard renders the page shell in its loading state; the rows are
// fetched by the shell itself once it is on screen.
func Dashboard() templ.Component {
	return pageComponent(dashboardPage, "Startups", NavDashboard, page.NewLoading[[]DashboardRow]())
}

// DashboardRows renders the settled table.
func DashboardRows(st page.State[[]DashboardRow]) templ.Component {
	return fragment(dashboardPage, "dashboard-table", st)
}

const dashboardSrc = `{{define "content"}}
<div style="display:flex;justify-content:space-between;align-items:flex-end;margin-bottom:24px;">
  <div>
    <h1>Startups</h1>
    <div class="lede">A list of all startups and their submission status across different platforms.</div>
  </div>
  <a href="/startups/new" class="btn btn-primary">Add Startup</a>
</div>
{{template "dashboard-table" .}}
{{end}}

{{define "dashboard-table"}}
{{if .Loading}}
<div id="dashboard-table" hx-get="/dashboard/rows" hx-trigger="load" hx-swap="outerHTML">{{template "spinner"}}</div>
{{else}}
<div id="dashboard-table">
<table class="ledger">
  <thead>
    <tr><th>Name</th><th>Website</th><th>Submissions</th><th><span style="display:none;">Actions</span></th></tr>
  </thead>
  <tbody>
  {{range .Data}}
    <tr>
      <td>
        <div style="font-weight:600;">{{.Startup.Name}}</div>
        <div class="sub">{{.Startup.Tagline}}</div>
      </td>
      <td><a href="{{.Startup.Website}}" target="_blank" rel="noopener noreferrer">{{hostname .Startup.Website}}</a></td>
      <td>
        <div style="display:flex;flex-wrap:wrap;gap:6px;">
        {{range .Submissions}}{{template "status-badge" .Status}}{{else}}<span class="sub">No submissions</span>{{end}}
        </div>
      </td>
      <td style="text-align:right;"><a href="/startups/{{itoa .Startup.ID}}">View</a></td>
    </tr>
  {{else}}
    <tr><td colspan="4" class="empty">No startups yet.</td></tr>
  {{end}}
  </tbody>
</table>
</div>
{{end}}
{{end}}`
