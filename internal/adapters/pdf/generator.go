// Package pdf renders the submissions table as a printable report. The
// rows arrive already filtered and sorted; the report draws them in the
// order given, repeating the column header on every page.
package pdf

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/csg33k/launchboard/internal/domain"
)

type Generator struct {
	now func() time.Time
}

func New() *Generator {
	return &Generator{now: time.Now}
}

type column struct {
	title string
	width float64 // share of the content width
}

var columns = []column{
	{"Startup", 0.22},
	{"Platform", 0.20},
	{"Type", 0.09},
	{"Status", 0.12},
	{"Created At", 0.15},
	{"Error", 0.22},
}

const rowH = 6.5

// Generate writes a landscape Letter report. caption describes the active
// filters and sort and is printed under the title.
func (g *Generator) Generate(subs []domain.Submission, caption string, w io.Writer) error {
	pdf := fpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(14, 14, 14)
	pdf.SetAutoPageBreak(false, 14)
	pdf.AliasNbPages("{nb}")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, pageH := pdf.GetPageSize()
	marginL, marginT, marginR, marginB := pdf.GetMargins()
	contentW := pageW - marginL - marginR
	generated := g.now().Format("Jan 02, 2006 15:04")

	var y float64
	newPage := func() {
		pdf.AddPage()
		y = drawHeader(pdf, tr, marginL, marginT, contentW, caption)
		y = drawColumnHeader(pdf, marginL, y, contentW)
		drawFooter(pdf, marginL, pageH-marginB-5, contentW, len(subs), generated)
	}
	newPage()

	if len(subs) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetXY(marginL, y)
		pdf.CellFormat(contentW, rowH, "No submissions found", "1", 1, "C", false, 0, "")
		return pdf.Output(w)
	}

	pdf.SetFont("Helvetica", "", 8.5)
	for i := range subs {
		if y+rowH > pageH-marginB-7 {
			newPage()
			pdf.SetFont("Helvetica", "", 8.5)
		}
		drawRow(pdf, tr, marginL, y, contentW, i, &subs[i])
		y += rowH
	}
	return pdf.Output(w)
}

func drawHeader(pdf *fpdf.Fpdf, tr func(string) string, x, y, contentW float64, caption string) float64 {
	pdf.SetFillColor(30, 30, 30)
	pdf.Rect(x, y, contentW, 10, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetXY(x+2, y+1.5)
	pdf.CellFormat(contentW-40, 7, "LAUNCHBOARD  SUBMISSIONS REPORT", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(36, 7, "Page "+fmt.Sprint(pdf.PageNo())+" of {nb}", "", 1, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	y += 12

	if caption != "" {
		pdf.SetFont("Helvetica", "I", 8.5)
		pdf.SetTextColor(90, 90, 90)
		pdf.SetXY(x, y)
		pdf.CellFormat(contentW, 5, tr(caption), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		y += 6
	}
	return y
}

func drawColumnHeader(pdf *fpdf.Fpdf, x, y, contentW float64) float64 {
	pdf.SetFillColor(30, 30, 30)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.SetXY(x, y)
	for i, c := range columns {
		ln := 0
		if i == len(columns)-1 {
			ln = 1
		}
		pdf.CellFormat(contentW*c.width, 7, c.title, "1", ln, "L", true, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)
	return y + 7
}

func drawRow(pdf *fpdf.Fpdf, tr func(string) string, x, y, contentW float64, i int, s *domain.Submission) {
	startup, platform, kind := "Unknown Startup", "Unknown Platform", ""
	if s.Startup != nil {
		startup = s.Startup.Name
	}
	if s.Platform != nil {
		platform = s.Platform.Name
		kind = string(s.Platform.SubmissionType)
	}
	cells := []string{
		startup,
		platform,
		strings.ToUpper(kind),
		s.Status.Label(),
		s.CreatedAt.Local().Format("Jan 02, 2006 15:04"),
		s.ErrorMessage,
	}

	pdf.SetXY(x, y)
	for j, text := range cells {
		// Alternating row background; the status cell carries its own colour.
		if i%2 == 0 {
			pdf.SetFillColor(250, 250, 250)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		if j == 3 {
			r, g, b := statusFill(s.Status)
			pdf.SetFillColor(r, g, b)
		}
		w := contentW * columns[j].width
		ln := 0
		if j == len(cells)-1 {
			ln = 1
		}
		pdf.CellFormat(w, rowH, fit(pdf, tr(text), w-2), "1", ln, "L", true, 0, "")
	}
}

func drawFooter(pdf *fpdf.Fpdf, x, y, contentW float64, total int, generated string) {
	pdf.SetXY(x, y)
	pdf.SetFont("Helvetica", "I", 7.5)
	pdf.SetTextColor(130, 130, 130)
	pdf.CellFormat(contentW/2, 5, "Generated by Launchboard | "+generated, "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 5, fmt.Sprintf("%d submission(s)", total), "", 0, "R", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func statusFill(s domain.SubmissionStatus) (int, int, int) {
	switch s {
	case domain.StatusPending:
		return 254, 249, 195
	case domain.StatusInProgress:
		return 219, 234, 254
	case domain.StatusCompleted:
		return 220, 252, 231
	case domain.StatusFailed:
		return 254, 226, 226
	}
	return 255, 255, 255
}

// fit truncates s with "..." until it is at most w wide in the current
// font. s is already in the single-byte font encoding.
func fit(pdf *fpdf.Fpdf, s string, w float64) string {
	if pdf.GetStringWidth(s) <= w {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > w {
		s = s[:len(s)-1]
	}
	return s + "..."
}
