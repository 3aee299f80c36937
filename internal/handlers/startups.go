package handlers

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/page"
	"github.com/csg33k/launchboard/internal/templates"
	"github.com/csg33k/launchboard/internal/toast"
)

// logoTypes are the image formats accepted for a startup logo.
var logoTypes = []string{"image/png", "image/jpeg", "image/gif", "image/webp", "image/svg+xml"}

func (h *Handler) newStartupForm(w http.ResponseWriter, r *http.Request) {
	year := h.now().Year()
	values := templates.StartupFormValues{FoundedYear: strconv.Itoa(year)}
	render(w, r, templates.StartupForm(templates.NewStartupFormView(page.NewForm(values), year)))
}

func (h *Handler) createStartup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	form := page.NewForm(startupFormValues(r)).Submit()
	_, err := h.api.CreateStartup(r.Context(), startupInput(form.Values))
	form = form.Finish(err)

	q := toast.FromContext(r.Context())
	if err != nil {
		q.Error("Failed to add startup. Please try again.")
		v := templates.NewStartupFormView(form, h.now().Year())
		pick(w, r, templates.StartupFormFragment(v), templates.StartupForm(v))
		return
	}
	q.Success("Startup added successfully!")
	navigate(w, r, "/")
}

func (h *Handler) viewStartup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	s, err := h.api.GetStartup(r.Context(), id)
	if err != nil {
		navigate(w, r, "/")
		return
	}
	subs, err := h.api.ListByStartup(r.Context(), id)
	if err != nil {
		h.log.Info("startup detail: list submissions failed", zap.Int64("startup_id", id), zap.Error(err))
	}
	render(w, r, templates.StartupDetail(templates.StartupDetailView{
		Startup:     *s,
		Submissions: page.NewLoading[[]domain.Submission]().Resolve(subs, err),
	}))
}

func (h *Handler) editStartupForm(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	s, err := h.api.GetStartup(r.Context(), id)
	if err != nil {
		navigate(w, r, "/")
		return
	}
	f := page.NewForm(templates.StartupValues(s))
	render(w, r, templates.StartupForm(templates.EditStartupFormView(id, f, h.now().Year())))
}

func (h *Handler) updateStartup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	form := page.NewForm(startupFormValues(r)).Submit()
	cur, err := h.api.GetStartup(r.Context(), id)
	if err == nil {
		in := startupInput(form.Values)
		in.LogoURL = cur.LogoURL
		_, err = h.api.UpdateStartup(r.Context(), id, in)
	}
	form = form.Finish(err)

	q := toast.FromContext(r.Context())
	if err != nil {
		q.Error("Failed to update startup. Please try again.")
		v := templates.EditStartupFormView(id, form, h.now().Year())
		pick(w, r, templates.StartupFormFragment(v), templates.StartupForm(v))
		return
	}
	q.Success("Startup updated successfully!")
	navigate(w, r, fmt.Sprintf("/startups/%d", id))
}

func (h *Handler) deleteStartup(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	if err := h.api.DeleteStartup(r.Context(), id); err != nil {
		reject(w, r)
		return
	}
	toast.FromContext(r.Context()).Success("Startup deleted successfully!")
	navigate(w, r, "/")
}

// uploadLogo checks the file's content, not its declared type, before
// handing it to the API.
func (h *Handler) uploadLogo(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "invalid id", 400)
		return
	}
	q := toast.FromContext(r.Context())
	file, hdr, err := r.FormFile("file")
	if err != nil {
		q.Error("Please select an image to upload")
		reject(w, r)
		return
	}
	defer file.Close()

	mt, err := mimetype.DetectReader(file)
	if err != nil || !mimetype.EqualsAny(mt.String(), logoTypes...) {
		q.Error("Please select a PNG, JPEG, GIF, WebP or SVG image")
		reject(w, r)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if err := h.api.UploadLogo(r.Context(), id, hdr.Filename, file); err != nil {
		q.Error("Failed to upload logo. Please try again.")
		reject(w, r)
		return
	}

	s, err := h.api.GetStartup(r.Context(), id)
	if err != nil {
		reject(w, r)
		return
	}
	q.Success("Logo uploaded successfully!")
	render(w, r, templates.LogoForm(*s))
}

func startupFormValues(r *http.Request) templates.StartupFormValues {
	return templates.StartupFormValues{
		Name:          r.FormValue("name"),
		Website:       r.FormValue("website"),
		Description:   r.FormValue("description"),
		Tagline:       r.FormValue("tagline"),
		FoundedYear:   r.FormValue("founded_year"),
		TwitterHandle: r.FormValue("twitter_handle"),
		LinkedInURL:   r.FormValue("linkedin_url"),
	}
}

// startupInput sends the values as entered. A founded year that isn't a
// number is left out.
func startupInput(v templates.StartupFormValues) domain.StartupInput {
	in := domain.StartupInput{
		Name:          v.Name,
		Website:       v.Website,
		Description:   v.Description,
		Tagline:       v.Tagline,
		TwitterHandle: v.TwitterHandle,
		LinkedInURL:   v.LinkedInURL,
	}
	if y, err := strconv.Atoi(strings.TrimSpace(v.FoundedYear)); err == nil {
		in.FoundedYear = &y
	}
	return in
}
