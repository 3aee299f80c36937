package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
	"github.com/csg33k/launchboard/internal/pipeline"
	"github.com/csg33k/launchboard/internal/templates"
)

func (h *Handler) submissions(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Submissions())
}

// submissionsTable serves both the first load of the panel and every
// later filter or sort change. Only the first load, or a load after the
// view expired, calls the API.
func (h *Handler) submissionsTable(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, s := pipeline.ParseQuery(q)
	subs, viewID, err := h.loadView(r.Context(), q.Get("view"))
	if err != nil {
		h.log.Info("submissions: list failed", zap.Error(err))
	}
	v := templates.SubmissionsView{
		ViewID: viewID,
		Filter: f,
		Sort:   s,
		Rows:   pipeline.Apply(subs, f, s),
		Total:  len(subs),
	}
	if r.Header.Get("HX-Target") == "submissions-table" {
		render(w, r, templates.SubmissionsTable(v))
		return
	}
	render(w, r, templates.SubmissionsPanel(page.NewLoading[templates.SubmissionsView]().Resolve(v, err)))
}

func (h *Handler) submissionsReport(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f, s := pipeline.ParseQuery(q)
	subs, _, err := h.loadView(r.Context(), q.Get("view"))
	if err != nil {
		http.Error(w, "could not load submissions", http.StatusBadGateway)
		return
	}
	var buf bytes.Buffer
	if err := h.report.Generate(pipeline.Apply(subs, f, s), reportCaption(f, s), &buf); err != nil {
		h.log.Error("submissions: report failed", zap.Error(err))
		http.Error(w, err.Error(), 500)
		return
	}
	filename := fmt.Sprintf("submissions_%s.pdf", h.now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Write(buf.Bytes())
}

// loadView returns the snapshot viewID names, or fetches and saves a new
// one when it is unknown or expired. A snapshot that can't be saved is
// still returned, under an empty id.
func (h *Handler) loadView(ctx context.Context, viewID string) ([]domain.Submission, string, error) {
	if viewID != "" {
		subs, ok, err := h.views.Load(ctx, viewID)
		switch {
		case err != nil:
			h.log.Warn("view store load failed", zap.String("view", viewID), zap.Error(err))
		case ok:
			return subs, viewID, nil
		}
	}
	subs, err := h.api.ListSubmissions(ctx)
	if err != nil {
		return nil, "", err
	}
	id, err := h.views.Save(ctx, subs)
	if err != nil {
		h.log.Warn("view store save failed", zap.Error(err))
		return subs, "", nil
	}
	return subs, id, nil
}

func reportCaption(f pipeline.Filter, s pipeline.Sort) string {
	var parts []string
	if !f.Active() {
		parts = append(parts, "All submissions")
	}
	if f.Status != "" {
		parts = append(parts, "Status: "+f.Status.Title())
	}
	if f.Startup != "" {
		parts = append(parts, fmt.Sprintf("Startup contains %q", f.Startup))
	}
	if f.Platform != "" {
		parts = append(parts, fmt.Sprintf("Platform contains %q", f.Platform))
	}
	parts = append(parts, fmt.Sprintf("Sorted by %s %s", s.Key, s.Dir))
	return strings.Join(parts, "; ")
}
