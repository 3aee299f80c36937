package templates

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
)

// StartupFormValues are the raw input values, kept as entered so a failed
// submission can echo them back.
type StartupFormValues struct {
	Name          string
	Website       string
	Description   string
	Tagline       string
	FoundedYear   string
	TwitterHandle string
	LinkedInURL   string
}

// StartupValues pre-fills the form from an existing startup.
func StartupValues(s *domain.Startup) StartupFormValues {
	v := StartupFormValues{
		Name:          s.Name,
		Website:       s.Website,
		Description:   s.Description,
		Tagline:       s.Tagline,
		TwitterHandle: s.TwitterHandle,
		LinkedInURL:   s.LinkedInURL,
	}
	if s.FoundedYear != nil {
		v.FoundedYear = strconv.Itoa(*s.FoundedYear)
	}
	return v
}

// StartupFormView drives both the create and the edit form.
type StartupFormView struct {
	Form    page.Form[StartupFormValues]
	Title   string
	Action  string
	Put     bool
	Submit  string
	Busy    string
	Cancel  string
	MinYear int
	MaxYear int
}

// NewStartupFormView is the create form.
func NewStartupFormView(f page.Form[StartupFormValues], maxYear int) StartupFormView {
	return StartupFormView{
		Form:    f,
		Title:   "Add New Startup",
		Action:  "/startups",
		Submit:  "Add Startup",
		Busy:    "Adding...",
		Cancel:  "/",
		MinYear: domain.MinFoundedYear,
		MaxYear: maxYear,
	}
}

// EditStartupFormView is the edit form for startup id.
func EditStartupFormView(id int64, f page.Form[StartupFormValues], maxYear int) StartupFormView {
	return StartupFormView{
		Form:    f,
		Title:   "Edit Startup",
		Action:  "/startups/" + itoa(id),
		Put:     true,
		Submit:  "Save Changes",
		Busy:    "Saving...",
		Cancel:  "/startups/" + itoa(id),
		MinYear: domain.MinFoundedYear,
		MaxYear: maxYear,
	}
}

var (
	startupFormPage   = newPage(startupFormSrc)
	startupDetailPage = newPage(startupDetailSrc)
)

func StartupForm(v StartupFormView) templ.Component {
	nav := NavAddStartup
	if v.Put {
		nav = NavDashboard
	}
	return pageComponent(startupFormPage, v.Title, nav, v)
}

// StartupFormFragment re-renders the form in place after a failed submit.
func StartupFormFragment(v StartupFormView) templ.Component {
	return fragment(startupFormPage, "startup-form", v)
}

// StartupDetailView is a startup with its submissions.
type StartupDetailView struct {
	Startup     domain.Startup
	Submissions page.State[[]domain.Submission]
}

func StartupDetail(v StartupDetailView) templ.Component {
	return pageComponent(startupDetailPage, v.Startup.Name, NavDashboard, v)
}

// LogoForm renders the logo block, used after an upload attempt.
func LogoForm(s domain.Startup) templ.Component {
	return fragment(startupDetailPage, "logo-form", s)
}

const startupFormSrc = `{{define "content"}}
<div style="max-width:720px;margin:0 auto;">
  <div style="margin-bottom:24px;">
    <h1>{{.Title}}</h1>
    <div class="lede">Fields marked * are required.</div>
  </div>
  {{template "startup-form" .}}
</div>
{{end}}

{{define "startup-form"}}
<form id="startup-form" class="card"
  {{if .Put}}hx-put="{{.Action}}"{{else}}hx-post="{{.Action}}"{{end}}
  hx-target="this" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]">
  {{with .Form.Values}}
  <div style="display:grid;grid-template-columns:1fr 1fr;gap:16px;">
    <div style="grid-column:1 / -1;">
      <label class="field-label" for="name">Name *</label>
      <input id="name" name="name" type="text" required value="{{.Name}}">
    </div>
    <div style="grid-column:1 / -1;">
      <label class="field-label" for="website">Website *</label>
      <input id="website" name="website" type="url" required placeholder="https://" value="{{.Website}}">
    </div>
    <div style="grid-column:1 / -1;">
      <label class="field-label" for="tagline">Tagline</label>
      <input id="tagline" name="tagline" type="text" value="{{.Tagline}}">
    </div>
    <div style="grid-column:1 / -1;">
      <label class="field-label" for="description">Description</label>
      <textarea id="description" name="description" rows="4">{{.Description}}</textarea>
    </div>
    <div>
      <label class="field-label" for="founded_year">Founded Year</label>
      <input id="founded_year" name="founded_year" type="number" min="{{$.MinYear}}" max="{{$.MaxYear}}" value="{{.FoundedYear}}">
    </div>
    <div>
      <label class="field-label" for="twitter_handle">Twitter Handle</label>
      <input id="twitter_handle" name="twitter_handle" type="text" placeholder="@" value="{{.TwitterHandle}}">
    </div>
    <div style="grid-column:1 / -1;">
      <label class="field-label" for="linkedin_url">LinkedIn URL</label>
      <input id="linkedin_url" name="linkedin_url" type="url" value="{{.LinkedInURL}}">
    </div>
  </div>
  {{end}}
  <div style="display:flex;justify-content:flex-end;gap:12px;margin-top:20px;">
    <a href="{{.Cancel}}" class="btn">Cancel</a>
    <button type="submit" class="btn btn-primary"{{if not .Form.Editable}} disabled{{end}}>
      <span class="idle-label">{{.Submit}}</span><span class="busy-label">{{.Busy}}</span>
    </button>
  </div>
</form>
{{end}}`

const startupDetailSrc = `{{define "content"}}
{{with .Startup}}
<div style="display:flex;justify-content:space-between;align-items:flex-end;margin-bottom:24px;">
  <div>
    <h1>{{.Name}}</h1>
    {{if .Tagline}}<div class="lede">{{.Tagline}}</div>{{end}}
  </div>
  <div style="display:flex;gap:12px;">
    <a href="/startups/{{itoa .ID}}/edit" class="btn">Edit</a>
    <button class="btn btn-danger" hx-delete="/startups/{{itoa .ID}}" hx-confirm="Delete {{.Name}}? This cannot be undone." hx-swap="none">Delete</button>
  </div>
</div>
<div style="display:grid;grid-template-columns:2fr 1fr;gap:24px;margin-bottom:32px;">
  <div class="card">
    <div class="section-header">Details</div>
    <div style="margin-bottom:12px;">{{richText .Description}}</div>
    <div><span class="field-label">Website</span><a href="{{.Website}}" target="_blank" rel="noopener noreferrer">{{hostname .Website}}</a></div>
    {{if .FoundedYear}}<div style="margin-top:8px;"><span class="field-label">Founded</span><span class="mono">{{.FoundedYear}}</span></div>{{end}}
    {{if .TwitterHandle}}<div style="margin-top:8px;"><span class="field-label">Twitter</span><span class="mono">{{.TwitterHandle}}</span></div>{{end}}
    {{if .LinkedInURL}}<div style="margin-top:8px;"><span class="field-label">LinkedIn</span><a href="{{.LinkedInURL}}" target="_blank" rel="noopener noreferrer">{{.LinkedInURL}}</a></div>{{end}}
  </div>
  {{template "logo-form" .}}
</div>
{{end}}
<div class="section-header">Submissions</div>
<table class="ledger">
  <thead><tr><th>Platform</th><th>Status</th><th>Created At</th></tr></thead>
  <tbody>
  {{range .Submissions.Data}}
    <tr>
      <td>{{with .Platform}}{{.Name}}{{else}}<span class="sub">Unknown Platform</span>{{end}}</td>
      <td>{{template "status-badge" .Status}}{{if .ErrorMessage}}<div class="error-text">{{.ErrorMessage}}</div>{{end}}</td>
      <td class="mono">{{localTime .CreatedAt}}</td>
    </tr>
  {{else}}
    <tr><td colspan="3" class="empty">No submissions</td></tr>
  {{end}}
  </tbody>
</table>
{{end}}

{{define "logo-form"}}
<form id="logo-form" class="card" hx-post="/startups/{{itoa .ID}}/logo" hx-encoding="multipart/form-data"
  hx-target="this" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]">
  <div class="section-header">Logo</div>
  {{if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.Name}} logo" style="max-width:100%;max-height:120px;display:block;margin-bottom:12px;">{{else}}<div class="sub" style="margin-bottom:12px;">No logo uploaded.</div>{{end}}
  <input type="file" name="file" accept="image/*" required>
  <button type="submit" class="btn btn-primary" style="margin-top:12px;">
    <span class="idle-label">Upload Logo</span><span class="busy-label">Uploading...</span>
  </button>
</form>
{{end}}`
