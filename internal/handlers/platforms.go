package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
	"github.com/csg33k/launchboard/internal/templates"
	"github.com/csg33k/launchboard/internal/toast"
)

var errNotXLSX = errors.New("file is not an xlsx spreadsheet")

func (h *Handler) platforms(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.Platforms())
}

func (h *Handler) platformRows(w http.ResponseWriter, r *http.Request) {
	list, err := h.api.ListPlatforms(r.Context())
	if err != nil {
		h.log.Info("platforms: list failed", zap.Error(err))
	}
	render(w, r, templates.PlatformRows(page.NewLoading[[]domain.Platform]().Resolve(list, err)))
}

func (h *Handler) togglePlatform(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	p, err := h.api.TogglePlatform(r.Context(), id)
	if err != nil {
		reject(w, r)
		return
	}
	render(w, r, templates.PlatformRow(*p))
}

func (h *Handler) uploadForm(w http.ResponseWriter, r *http.Request) {
	render(w, r, templates.PlatformUpload(page.NewForm("")))
}

// uploadPlatforms trusts the file's declared type, as the browser reports
// it. Anything but an xlsx spreadsheet is refused before the API is called.
func (h *Handler) uploadPlatforms(w http.ResponseWriter, r *http.Request) {
	q := toast.FromContext(r.Context())
	file, hdr, err := r.FormFile("file")
	if err != nil {
		q.Error("Please select a file to upload")
		h.renderUpload(w, r, page.NewForm("").Submit().Finish(err))
		return
	}
	defer file.Close()

	form := page.NewForm(hdr.Filename).Submit()
	if hdr.Header.Get("Content-Type") != domain.XLSXMimeType {
		q.Error("Please select a valid Excel file (.xlsx)")
		h.renderUpload(w, r, form.Finish(errNotXLSX))
		return
	}
	if err := h.api.UploadExcel(r.Context(), hdr.Filename, file); err != nil {
		q.Error("Failed to upload platforms. Please try again.")
		h.renderUpload(w, r, form.Finish(err))
		return
	}
	q.Success("Platforms uploaded successfully!")
	navigate(w, r, "/")
}

func (h *Handler) renderUpload(w http.ResponseWriter, r *http.Request, f page.Form[string]) {
	pick(w, r, templates.PlatformUploadForm(f), templates.PlatformUpload(f))
}
