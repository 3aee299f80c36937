package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/csg33k/launchboard/internal/page"
	"github.com/csg33k/launchboard/internal/templates"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Dashboard())
}

// dashboardRows lists startups, then fetches each one's submissions in
// turn. If any fetch fails the startups are still shown, without
// submissions.
func (h *Handler) dashboardRows(w http.ResponseWriter, r *http.Request) {
	st := page.NewLoading[[]templates.DashboardRow]()
	startups, err := h.api.ListStartups(r.Context())
	if err != nil {
		h.log.Info("dashboard: list startups failed", zap.Error(err))
		render(w, r, templates.DashboardRows(st.Resolve(nil, err)))
		return
	}

	rows := make([]templates.DashboardRow, len(startups))
	for i := range startups {
		rows[i].Startup = startups[i]
	}
	for i := range rows {
		subs, err := h.api.ListByStartup(r.Context(), rows[i].Startup.ID)
		if err != nil {
			h.log.Info("dashboard: list submissions failed",
				zap.Int64("startup_id", rows[i].Startup.ID), zap.Error(err))
			for j := range rows {
				rows[j].Submissions = nil
			}
			render(w, r, templates.DashboardRows(st.Resolve(rows, err)))
			return
		}
		rows[i].Submissions = subs
	}
	render(w, r, templates.DashboardRows(st.Resolve(rows, nil)))
}
