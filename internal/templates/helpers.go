package templates

import (
	"html/template"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/pipeline"
)

var funcs = template.FuncMap{
	"itoa":        itoa,
	"hostname":    hostname,
	"localTime":   localTime,
	"statusClass": statusClass,
	"sortIcon":    sortIcon,
	"sortURL":     sortURL,
	"reportURL":   reportURL,
	"richText":    richText,
	"toastMillis": func() int64 { return domain.ToastDuration.Milliseconds() },
	"xlsxMime":    func() string { return domain.XLSXMimeType },
	"statuses":    func() []domain.SubmissionStatus { return domain.Statuses },
	"columns":     func() []pipeline.SortKey { return pipeline.Columns },
	"columnTitle": columnTitle,
	"typeLabel":   typeLabel,
}

// itoa converts an int64 to a string, used for building URL paths.
func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

// hostname shows "acme.io" for "https://acme.io/about"; unparseable values
// are shown as entered.
func hostname(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	return u.Hostname()
}

func localTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006 3:04:05 PM")
}

func statusClass(s domain.SubmissionStatus) string {
	switch s {
	case domain.StatusPending:
		return "badge-pending"
	case domain.StatusInProgress:
		return "badge-progress"
	case domain.StatusCompleted:
		return "badge-completed"
	case domain.StatusFailed:
		return "badge-failed"
	}
	return ""
}

func typeLabel(t domain.SubmissionType) string {
	return strings.ToUpper(string(t))
}

func columnTitle(k pipeline.SortKey) string {
	switch k {
	case pipeline.SortStartup:
		return "Startup"
	case pipeline.SortPlatform:
		return "Platform"
	case pipeline.SortStatus:
		return "Status"
	case pipeline.SortCreatedAt:
		return "Created At"
	}
	return string(k)
}

func sortIcon(s pipeline.Sort, key pipeline.SortKey) string {
	if s.Key != key {
		return ""
	}
	if s.Dir == pipeline.Asc {
		return "↑"
	}
	return "↓"
}

// sortURL is the table request a click on the key's header makes.
func sortURL(viewID string, f pipeline.Filter, s pipeline.Sort, key pipeline.SortKey) string {
	q := pipeline.Query(f, s.Toggle(key))
	q.Set("view", viewID)
	return "/submissions/table?" + q.Encode()
}

func reportURL(viewID string, f pipeline.Filter, s pipeline.Sort) string {
	q := pipeline.Query(f, s)
	q.Set("view", viewID)
	return "/submissions/report.pdf?" + q.Encode()
}

var ugc = bluemonday.UGCPolicy()

// richText renders a startup description. The API stores whatever the
// form sent, so markup is passed through the UGC policy and line breaks
// are kept.
func richText(s string) template.HTML {
	clean := ugc.Sanitize(s)
	return template.HTML(strings.ReplaceAll(clean, "\n", "<br>"))
}
