// Package pipeline derives the displayed submissions list from the fetched
// one: conjunctive filters, then a stable sort on one key.
package pipeline

import (
	"cmp"
	"net/url"
	"slices"
	"strings"

	"github.com/csg33k/launchboard/internal/domain"
)

type SortKey string

const (
	SortStartup   SortKey = "startup"
	SortPlatform  SortKey = "platform"
	SortStatus    SortKey = "status"
	SortCreatedAt SortKey = "created_at"
)

// Columns is the header order of the submissions table.
var Columns = []SortKey{SortStartup, SortPlatform, SortStatus, SortCreatedAt}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Filter holds the three independent filters. Zero values are inactive.
type Filter struct {
	Status   domain.SubmissionStatus
	Startup  string
	Platform string
}

type Sort struct {
	Key SortKey
	Dir Direction
}

// DefaultSort is newest first.
var DefaultSort = Sort{Key: SortCreatedAt, Dir: Desc}

// Toggle is the column-header click: the active key flips direction, any
// other key becomes active ascending.
func (s Sort) Toggle(key SortKey) Sort {
	if s.Key == key && s.Dir == Asc {
		return Sort{Key: key, Dir: Desc}
	}
	return Sort{Key: key, Dir: Asc}
}

// Active reports whether any filter is set.
func (f Filter) Active() bool {
	return f.Status != "" || f.Startup != "" || f.Platform != ""
}

func (f Filter) match(s *domain.Submission) bool {
	if f.Status != "" && s.Status != f.Status {
		return false
	}
	if f.Startup != "" && (s.Startup == nil || !containsFold(s.Startup.Name, f.Startup)) {
		return false
	}
	if f.Platform != "" && (s.Platform == nil || !containsFold(s.Platform.Name, f.Platform)) {
		return false
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (s Sort) compare(a, b *domain.Submission) int {
	var c int
	switch s.Key {
	case SortStartup:
		c = cmp.Compare(a.StartupName(), b.StartupName())
	case SortPlatform:
		c = cmp.Compare(a.PlatformName(), b.PlatformName())
	case SortStatus:
		c = cmp.Compare(a.Status, b.Status)
	default:
		c = a.CreatedAt.Compare(b.CreatedAt)
	}
	if s.Dir == Desc {
		return -c
	}
	return c
}

// Apply returns a new slice; src is never reordered or modified.
func Apply(src []domain.Submission, f Filter, s Sort) []domain.Submission {
	out := make([]domain.Submission, 0, len(src))
	for i := range src {
		if f.match(&src[i]) {
			out = append(out, src[i])
		}
	}
	slices.SortStableFunc(out, func(a, b domain.Submission) int {
		return s.compare(&a, &b)
	})
	return out
}

// ParseQuery reads the page inputs. An unknown status is ignored. A missing
// sort key yields DefaultSort; an unknown key sorts by creation time like
// the default branch does.
func ParseQuery(q url.Values) (Filter, Sort) {
	f := Filter{
		Status:   domain.SubmissionStatus(strings.TrimSpace(q.Get("status"))),
		Startup:  q.Get("startup"),
		Platform: q.Get("platform"),
	}
	if !f.Status.Valid() {
		f.Status = ""
	}
	key := q.Get("sort")
	if key == "" {
		return f, DefaultSort
	}
	s := Sort{Key: SortKey(key), Dir: Asc}
	if !slices.Contains(Columns, s.Key) {
		s.Key = SortCreatedAt
	}
	if q.Get("dir") == string(Desc) {
		s.Dir = Desc
	}
	return f, s
}

// Query encodes f and s back into the form ParseQuery reads.
func Query(f Filter, s Sort) url.Values {
	q := url.Values{}
	if f.Status != "" {
		q.Set("status", string(f.Status))
	}
	if f.Startup != "" {
		q.Set("startup", f.Startup)
	}
	if f.Platform != "" {
		q.Set("platform", f.Platform)
	}
	q.Set("sort", string(s.Key))
	q.Set("dir", string(s.Dir))
	return q
}
