package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"github.com/csg33k/launchboard/internal/metrics"
	"github.com/csg33k/launchboard/internal/ports"
	"github.com/csg33k/launchboard/internal/templates"
	"github.com/csg33k/launchboard/internal/toast"
)

type Handler struct {
	api    ports.API
	views  ports.ViewStore
	report ports.ReportGenerator
	log    *zap.Logger
	now    func() time.Time
}

func New(api ports.API, views ports.ViewStore, report ports.ReportGenerator, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{api: api, views: views, report: report, log: log, now: time.Now}
}

func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.dashboard)
	mux.HandleFunc("GET /dashboard/rows", h.dashboardRows)
	mux.HandleFunc("GET /startups/new", h.newStartupForm)
	mux.HandleFunc("POST /startups", h.createStartup)
	mux.HandleFunc("GET /startups/{id}", h.viewStartup)
	mux.HandleFunc("GET /startups/{id}/edit", h.editStartupForm)
	mux.HandleFunc("PUT /startups/{id}", h.updateStartup)
	mux.HandleFunc("DELETE /startups/{id}", h.deleteStartup)
	mux.HandleFunc("POST /startups/{id}/logo", h.uploadLogo)
	mux.HandleFunc("GET /platforms", h.platforms)
	mux.HandleFunc("GET /platforms/rows", h.platformRows)
	mux.HandleFunc("PATCH /platforms/{id}/toggle", h.togglePlatform)
	mux.HandleFunc("GET /platforms/upload", h.uploadForm)
	mux.HandleFunc("POST /platforms/upload", h.uploadPlatforms)
	mux.HandleFunc("GET /submissions", h.submissions)
	mux.HandleFunc("GET /submissions/table", h.submissionsTable)
	mux.HandleFunc("GET /submissions/report.pdf", h.submissionsReport)
	mux.Handle("GET /metrics", metrics.Handler())
	mux.HandleFunc("GET /healthz", h.healthz)
	return requestID(toast.Middleware(h.instrument(mux)))
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// render writes a templ component to the response.
func render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := c.Render(r.Context(), w); err != nil {
		http.Error(w, err.Error(), 500)
	}
}

func pathID(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(r.PathValue(key), 10, 64)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// navigate sends the browser to url, carrying queued toasts along.
func navigate(w http.ResponseWriter, r *http.Request, url string) {
	toast.Flash(w, toast.FromContext(r.Context()))
	if isHTMX(r) {
		w.Header().Set("HX-Redirect", url)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}

// reject answers an htmx request that should leave the page as it is.
// Queued toasts are still delivered out of band.
func reject(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("HX-Reswap", "none")
	render(w, r, templates.Toasts())
}

// pick renders the fragment for htmx requests and the full page otherwise.
func pick(w http.ResponseWriter, r *http.Request, fragment, full templ.Component) {
	if isHTMX(r) {
		render(w, r, fragment)
		return
	}
	render(w, r, full)
}
