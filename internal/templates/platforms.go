package templates

import (
	"github.com/a-h/templ"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
)

var (
	uploadPage    = newPage(uploadSrc)
	platformsPage = newPage(platformsSrc)
)

// PlatformUpload renders the upload page. The form value is the name of
// the last file submitted; the file input itself always comes back empty.
func PlatformUpload(f page.Form[string]) templ.Component {
	return pageComponent(uploadPage, "Upload Platforms", NavUpload, f)
}

func PlatformUploadForm(f page.Form[string]) templ.Component {
	return fragment(uploadPage, "upload-form", f)
}

// Platforms renders the list shell in its loading state.
func Platforms() templ.Component {
	return pageComponent(platformsPage, "Platforms", NavPlatforms, page.NewLoading[[]domain.Platform]())
}

func PlatformRows(st page.State[[]domain.Platform]) templ.Component {
	return fragment(platformsPage, "platforms-table", st)
}

// PlatformRow renders a single row, swapped in after a toggle.
func PlatformRow(p domain.Platform) templ.Component {
	return fragment(platformsPage, "platform-row", p)
}

const uploadSrc = `{{define "content"}}
<div style="max-width:720px;margin:0 auto;">
  <div style="margin-bottom:24px;">
    <h1>Upload Platforms</h1>
    <div class="lede">Upload an Excel file (.xlsx) with one platform per row: name, url, submission_type, submission_endpoint, api_key_required.</div>
  </div>
  {{template "upload-form" .}}
</div>
<script>
function launchboardCheckXLSX(input) {
  var f = input.files && input.files[0];
  if (f && f.type !== {{xlsxMime}}) {
    input.value = '';
    launchboardToast('error', 'Please select a valid Excel file (.xlsx)');
  }
}
</script>
{{end}}

{{define "upload-form"}}
<form id="upload-form" class="card" hx-post="/platforms/upload" hx-encoding="multipart/form-data"
  hx-target="this" hx-swap="outerHTML" hx-disabled-elt="find button[type=submit]">
  <label class="field-label" for="platform-file">Excel File</label>
  <input id="platform-file" name="file" type="file" accept=".xlsx" onchange="launchboardCheckXLSX(this)">
  {{if .Values}}<div class="sub" style="margin-top:6px;">Last attempt: <span class="mono">{{.Values}}</span></div>{{end}}
  <div style="display:flex;justify-content:flex-end;gap:12px;margin-top:20px;">
    <a href="/" class="btn">Cancel</a>
    <button type="submit" class="btn btn-primary"{{if not .Editable}} disabled{{end}}>
      <span class="idle-label">Upload Platforms</span><span class="busy-label">Uploading...</span>
    </button>
  </div>
</form>
{{end}}`

const platformsSrc = `{{define "content"}}
<div style="display:flex;justify-content:space-between;align-items:flex-end;margin-bottom:24px;">
  <div>
    <h1>Platforms</h1>
    <div class="lede">Launch platforms startups are submitted to. Inactive platforms are skipped.</div>
  </div>
  <a href="/platforms/upload" class="btn btn-primary">Upload Platforms</a>
</div>
{{template "platforms-table" .}}
{{end}}

{{define "platforms-table"}}
{{if .Loading}}
<div id="platforms-table" hx-get="/platforms/rows" hx-trigger="load" hx-swap="outerHTML">{{template "spinner"}}</div>
{{else}}
<div id="platforms-table">
<table class="ledger">
  <thead><tr><th>Name</th><th>URL</th><th>Type</th><th>Status</th><th></th></tr></thead>
  <tbody>
  {{range .Data}}{{template "platform-row" .}}{{else}}
    <tr><td colspan="5" class="empty">No platforms yet.</td></tr>
  {{end}}
  </tbody>
</table>
</div>
{{end}}
{{end}}

{{define "platform-row"}}
<tr id="platform-{{itoa .ID}}">
  <td style="font-weight:600;">{{.Name}}</td>
  <td><a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{hostname .URL}}</a></td>
  <td class="mono">{{typeLabel .SubmissionType}}{{if .APIKeyRequired}} <span class="sub">(key)</span>{{end}}</td>
  <td>{{if .IsActive}}<span class="badge badge-completed">ACTIVE</span>{{else}}<span class="badge badge-failed">INACTIVE</span>{{end}}</td>
  <td style="text-align:right;">
    <button class="btn" hx-patch="/platforms/{{itoa .ID}}/toggle" hx-target="closest tr" hx-swap="outerHTML">{{if .IsActive}}Deactivate{{else}}Activate{{end}}</button>
  </td>
</tr>
{{end}}`
