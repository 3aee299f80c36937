// Package templates renders every dashboard page and fragment. Pages are
// html/template sets cloned from one base layout and exposed as
// templ.Components so handlers render them the same way.
package templates

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/csg33k/launchboard/internal/toast"
)

// Nav identifiers, used to highlight the current link.
const (
	NavDashboard   = "dashboard"
	NavAddStartup  = "add-startup"
	NavUpload      = "upload"
	NavPlatforms   = "platforms"
	NavSubmissions = "submissions"
)

type layoutData struct {
	Title  string
	Nav    string
	Toasts []toast.Message
	Body   any
}

var base = template.Must(template.New("base").Funcs(funcs).Parse(layoutSrc + partialsSrc))

// newPage clones the layout and adds a page's "content" block.
func newPage(src string) *template.Template {
	return template.Must(template.Must(base.Clone()).Parse(src))
}

// pageComponent renders a full document. Queued toasts are drained into
// the toast stack.
func pageComponent(t *template.Template, title, nav string, body any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return t.ExecuteTemplate(w, "layout", layoutData{
			Title:  title,
			Nav:    nav,
			Toasts: toast.FromContext(ctx).Drain(),
			Body:   body,
		})
	})
}

// fragment renders one named partial of t followed by any queued toasts
// as an out-of-band append to the page's toast stack.
func fragment(t *template.Template, name string, body any) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := t.ExecuteTemplate(w, name, body); err != nil {
			return err
		}
		return Toasts().Render(ctx, w)
	})
}

// Toasts renders only the queued toasts, out of band. Handlers use it for
// responses that swap nothing else.
func Toasts() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		msgs := toast.FromContext(ctx).Drain()
		if len(msgs) == 0 {
			return nil
		}
		return base.ExecuteTemplate(w, "toasts-oob", msgs)
	})
}

const layoutSrc = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}} · Launchboard</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="preconnect" href="https://fonts.googleapis.com">
<link rel="preconnect" href="https://fonts.gstatic.com" crossorigin>
<link href="https://fonts.googleapis.com/css2?family=IBM+Plex+Mono:wght@400;500;600&family=IBM+Plex+Sans:wght@300;400;500;600&display=swap" rel="stylesheet">
<style>
  :root {
    --ink: #0d1117;
    --paper: #f5f0e8;
    --ledger: #e8e0cc;
    --accent: #c0392b;
    --accent2: #2c6e49;
    --muted: #6b5e4e;
    --rule: #b8a898;
  }
  * { box-sizing: border-box; }
  body { background: var(--paper); color: var(--ink); font-family: 'IBM Plex Sans', sans-serif; margin: 0; min-height: 100vh; }
  a { color: var(--ink); }
  .mono { font-family: 'IBM Plex Mono', monospace; }
  nav.shell { background: white; border-bottom: 2px solid var(--ink); }
  nav.shell .inner { max-width: 1200px; margin: 0 auto; padding: 0 24px; display: flex; gap: 28px; align-items: center; height: 60px; }
  nav.shell .brand { font-family: 'IBM Plex Mono', monospace; font-weight: 600; font-size: 1.1rem; text-decoration: none; }
  nav.shell .link { font-family: 'IBM Plex Mono', monospace; font-size: 0.75rem; letter-spacing: 0.08em; text-transform: uppercase; color: var(--muted); text-decoration: none; padding: 20px 0 17px; border-bottom: 3px solid transparent; }
  nav.shell .link.active, nav.shell .link:hover { color: var(--ink); border-bottom-color: var(--accent); }
  main { max-width: 1200px; margin: 0 auto; padding: 32px 24px; }
  h1 { font-family: 'IBM Plex Mono', monospace; font-size: 1.4rem; font-weight: 600; margin: 0; }
  .lede { font-size: 0.85rem; color: var(--muted); margin-top: 4px; }
  .card { background: rgba(255,255,255,0.7); border: 1px solid var(--ledger); border-left: 4px solid var(--ink); padding: 22px; }
  .field-label { font-family: 'IBM Plex Mono', monospace; font-size: 0.6rem; font-weight: 600; letter-spacing: 0.1em; text-transform: uppercase; color: var(--muted); display: block; margin-bottom: 2px; }
  input, select, textarea { background: white; border: 1px solid var(--rule); border-bottom: 2px solid var(--ink); padding: 6px 8px; font-family: 'IBM Plex Mono', monospace; font-size: 0.85rem; width: 100%; outline: none; }
  input:focus, select:focus, textarea:focus { border-bottom-color: var(--accent); }
  .btn { font-family: 'IBM Plex Mono', monospace; font-weight: 600; font-size: 0.8rem; letter-spacing: 0.08em; padding: 8px 18px; border: 2px solid var(--ink); cursor: pointer; text-transform: uppercase; text-decoration: none; display: inline-block; }
  .btn-primary { background: var(--ink); color: white; }
  .btn-primary:hover { background: var(--accent); border-color: var(--accent); }
  .btn-danger { background: white; color: var(--accent); border-color: var(--accent); }
  .btn-danger:hover { background: var(--accent); color: white; }
  .btn[disabled] { opacity: 0.5; cursor: not-allowed; }
  .section-header { font-family: 'IBM Plex Mono', monospace; font-size: 0.7rem; font-weight: 600; letter-spacing: 0.18em; text-transform: uppercase; color: var(--muted); border-bottom: 1px solid var(--rule); padding-bottom: 4px; margin-bottom: 16px; }
  table.ledger { width: 100%; border-collapse: collapse; background: white; border: 1px solid var(--ledger); }
  table.ledger th { font-family: 'IBM Plex Mono', monospace; font-size: 0.7rem; letter-spacing: 0.1em; text-transform: uppercase; text-align: left; padding: 10px 12px; background: var(--ledger); }
  table.ledger th.sortable { cursor: pointer; }
  table.ledger td { padding: 12px; border-top: 1px solid var(--ledger); font-size: 0.85rem; vertical-align: top; }
  .sub { color: var(--muted); font-size: 0.78rem; }
  .empty { text-align: center; color: var(--muted); font-family: 'IBM Plex Mono', monospace; font-size: 0.8rem; padding: 20px; }
  .badge { display: inline-block; padding: 2px 10px; border-radius: 999px; font-family: 'IBM Plex Mono', monospace; font-size: 0.65rem; font-weight: 600; letter-spacing: 0.06em; }
  .badge-pending { background: #fef9c3; color: #854d0e; }
  .badge-progress { background: #dbeafe; color: #1e40af; }
  .badge-completed { background: #dcfce7; color: #166534; }
  .badge-failed { background: #fee2e2; color: #991b1b; }
  .error-text { color: var(--accent); font-size: 0.72rem; margin-top: 4px; }
  .spinner { width: 44px; height: 44px; border: 3px solid var(--ledger); border-bottom-color: var(--ink); border-radius: 50%; animation: spin 0.8s linear infinite; margin: 64px auto; }
  @keyframes spin { to { transform: rotate(360deg); } }
  .busy-label { display: none; }
  .htmx-request .busy-label, .htmx-request.busy-label { display: inline; }
  .htmx-request .idle-label, .htmx-request.idle-label { display: none; }
  #toasts { position: fixed; top: 16px; right: 16px; display: flex; flex-direction: column; gap: 8px; z-index: 50; }
  .toast { background: white; border: 2px solid var(--ink); border-left-width: 6px; padding: 10px 16px; font-size: 0.85rem; min-width: 260px; box-shadow: 0 4px 12px rgba(0,0,0,0.08); }
  .toast-error { border-color: var(--accent); }
  .toast-success { border-color: var(--accent2); }
</style>
</head>
<body>
<nav class="shell">
  <div class="inner">
    <a href="/" class="brand">Launchboard</a>
    <a href="/" class="link{{if eq .Nav "dashboard"}} active{{end}}">Dashboard</a>
    <a href="/startups/new" class="link{{if eq .Nav "add-startup"}} active{{end}}">Add Startup</a>
    <a href="/platforms/upload" class="link{{if eq .Nav "upload"}} active{{end}}">Upload Platforms</a>
    <a href="/platforms" class="link{{if eq .Nav "platforms"}} active{{end}}">Platforms</a>
    <a href="/submissions" class="link{{if eq .Nav "submissions"}} active{{end}}">Submissions</a>
  </div>
</nav>
<main>
{{template "content" .Body}}
</main>
<div id="toasts">{{range .Toasts}}{{template "toast" .}}{{end}}</div>
<script>
function launchboardToast(level, text) {
  var el = document.createElement('div');
  el.className = 'toast toast-' + level;
  el.setAttribute('data-toast', '');
  el.textContent = text;
  document.getElementById('toasts').appendChild(el);
  htmx.process(el);
  scheduleToast(el);
}
function scheduleToast(el) {
  if (el.dataset.scheduled) return;
  el.dataset.scheduled = '1';
  setTimeout(function () { el.remove(); }, {{toastMillis}});
}
htmx.onLoad(function (root) {
  if (root.matches && root.matches('[data-toast]')) scheduleToast(root);
  root.querySelectorAll('[data-toast]').forEach(scheduleToast);
});
</script>
</body>
</html>
{{end}}`

const partialsSrc = `
{{define "toast"}}<div class="toast toast-{{.Level}}" data-toast role="status">{{.Text}}</div>{{end}}

{{define "toasts-oob"}}<div hx-swap-oob="beforeend:#toasts">{{range .}}{{template "toast" .}}{{end}}</div>{{end}}

{{define "status-badge"}}<span class="badge {{statusClass .}}">{{.Label}}</span>{{end}}

{{define "spinner"}}<div class="spinner" aria-label="Loading"></div>{{end}}
`
