package templates

import (
	"github.com/a-h/templ"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
	"github.com/csg33k/launchboard/internal/pipeline"
)

// SubmissionsView is one rendering of a view snapshot: Rows is the
// filtered and sorted subset of the Total fetched submissions.
type SubmissionsView struct {
	ViewID string
	Filter pipeline.Filter
	Sort   pipeline.Sort
	Rows   []domain.Submission
	Total  int
	// OOB also refreshes the filter form's hidden view and sort inputs.
	OOB bool
}

var submissionsPage = newPage(submissionsSrc)

// Submissions renders the page shell in its loading state.
func Submissions() templ.Component {
	return pageComponent(submissionsPage, "Submissions", NavSubmissions, page.NewLoading[SubmissionsView]())
}

// SubmissionsPanel renders the filters and the table after the first fetch.
func SubmissionsPanel(st page.State[SubmissionsView]) templ.Component {
	return fragment(submissionsPage, "submissions-panel", st)
}

// SubmissionsTable renders only the table, for filter and sort changes.
func SubmissionsTable(v SubmissionsView) templ.Component {
	v.OOB = true
	return fragment(submissionsPage, "submissions-table", v)
}

const submissionsSrc = `{{define "content"}}
<div style="margin-bottom:24px;">
  <h1>Submissions</h1>
  <div class="lede">Track every startup's listing attempts across platforms.</div>
</div>
{{template "submissions-panel" .}}
{{end}}

{{define "submissions-panel"}}
{{if .Loading}}
<div id="submissions-panel" hx-get="/submissions/table" hx-trigger="load" hx-swap="outerHTML">{{template "spinner"}}</div>
{{else}}{{with .Data}}{{$v := .}}
<div id="submissions-panel">
  <form id="submission-filters" class="card" style="display:grid;grid-template-columns:1fr 1fr 1fr;gap:16px;margin-bottom:24px;"
    hx-get="/submissions/table" hx-target="#submissions-table" hx-swap="outerHTML"
    hx-trigger="input changed delay:250ms from:#filter-startup, input changed delay:250ms from:#filter-platform, change from:#filter-status">
    <input type="hidden" id="filter-view" name="view" value="{{.ViewID}}">
    <input type="hidden" id="filter-sort" name="sort" value="{{.Sort.Key}}">
    <input type="hidden" id="filter-dir" name="dir" value="{{.Sort.Dir}}">
    <div>
      <label class="field-label" for="filter-status">Status</label>
      <select id="filter-status" name="status">
        <option value="">All Statuses</option>
        {{range statuses}}<option value="{{.}}"{{if eq . $v.Filter.Status}} selected{{end}}>{{.Title}}</option>{{end}}
      </select>
    </div>
    <div>
      <label class="field-label" for="filter-startup">Startup</label>
      <input id="filter-startup" name="startup" type="text" placeholder="Filter by startup name" value="{{.Filter.Startup}}">
    </div>
    <div>
      <label class="field-label" for="filter-platform">Platform</label>
      <input id="filter-platform" name="platform" type="text" placeholder="Filter by platform name" value="{{.Filter.Platform}}">
    </div>
  </form>
  {{template "submissions-table" .}}
</div>
{{end}}{{end}}
{{end}}

{{define "submissions-table"}}{{$v := .}}
<div id="submissions-table">
  <div style="display:flex;justify-content:space-between;align-items:center;margin-bottom:8px;">
    <span class="sub mono">{{len .Rows}} of {{.Total}} submissions</span>
    <a href="{{reportURL .ViewID .Filter .Sort}}" class="btn">Download PDF</a>
  </div>
  <table class="ledger">
    <thead>
      <tr>
        {{range columns}}<th class="sortable" hx-get="{{sortURL $v.ViewID $v.Filter $v.Sort .}}" hx-target="#submissions-table" hx-swap="outerHTML">{{columnTitle .}} {{sortIcon $v.Sort .}}</th>{{end}}
        <th><span style="display:none;">Actions</span></th>
      </tr>
    </thead>
    <tbody>
    {{range .Rows}}
      <tr>
        <td>{{with .Startup}}<div style="font-weight:600;">{{.Name}}</div><div class="sub">{{.Tagline}}</div>{{else}}<span class="sub">Unknown Startup</span>{{end}}</td>
        <td>{{with .Platform}}<div>{{.Name}}</div><div class="sub mono">{{typeLabel .SubmissionType}}</div>{{else}}<span class="sub">Unknown Platform</span>{{end}}</td>
        <td>{{template "status-badge" .Status}}{{if .ErrorMessage}}<div class="error-text">{{.ErrorMessage}}</div>{{end}}</td>
        <td class="mono">{{localTime .CreatedAt}}</td>
        <td style="text-align:right;">{{with .Startup}}<a href="/startups/{{itoa .ID}}">View Startup</a>{{end}}</td>
      </tr>
    {{else}}
      <tr><td colspan="5" class="empty">No submissions found</td></tr>
    {{end}}
    </tbody>
  </table>
</div>
{{if .OOB}}
<input type="hidden" id="filter-view" name="view" value="{{.ViewID}}" hx-swap-oob="true">
<input type="hidden" id="filter-sort" name="sort" value="{{.Sort.Key}}" hx-swap-oob="true">
<input type="hidden" id="filter-dir" name="dir" value="{{.Sort.Dir}}" hx-swap-oob="true">
{{end}}
{{end}}`
