package pipeline_test

import (
	"fmt"
	"net/url"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/csg33k/launchboard/internal/domain"
	"github.com/csg33k/launchboard/internal/pipeline"
)

var t0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func sub(id int64, startup, platform string, status domain.SubmissionStatus, created time.Time) domain.Submission {
	s := domain.Submission{ID: id, Status: status, CreatedAt: created}
	if startup != "" {
		s.Startup = &domain.Startup{Name: startup}
	}
	if platform != "" {
		s.Platform = &domain.Platform{Name: platform}
	}
	return s
}

func ids(subs []domain.Submission) []int64 {
	out := make([]int64, len(subs))
	for i, s := range subs {
		out[i] = s.ID
	}
	return out
}

func fixture() []domain.Submission {
	return []domain.Submission{
		sub(1, "Acme Rockets", "Product Hunt", domain.StatusPending, t0.Add(3*time.Hour)),
		sub(2, "Beta Labs", "Hacker News", domain.StatusFailed, t0.Add(1*time.Hour)),
		sub(3, "acme widgets", "BetaList", domain.StatusCompleted, t0.Add(5*time.Hour)),
		sub(4, "", "Product Hunt", domain.StatusFailed, t0.Add(2*time.Hour)),
		sub(5, "Zed", "", domain.StatusInProgress, t0.Add(4*time.Hour)),
		sub(6, "Beta Labs", "Indie Hackers", domain.StatusFailed, t0),
	}
}

func TestApply_SpecExample(t *testing.T) {
	t1, t2 := t0, t0.Add(time.Minute)
	src := []domain.Submission{
		sub(1, "B", "", domain.StatusFailed, t1),
		sub(2, "A", "", domain.StatusPending, t2),
	}

	got := pipeline.Apply(src, pipeline.Filter{}, pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Desc})
	assert.Equal(t, []int64{2, 1}, ids(got))

	got = pipeline.Apply(src, pipeline.Filter{}, pipeline.Sort{Key: pipeline.SortStartup, Dir: pipeline.Asc})
	assert.Equal(t, []int64{2, 1}, ids(got))
}

func TestApply_StatusExactMatch(t *testing.T) {
	got := pipeline.Apply(fixture(), pipeline.Filter{Status: domain.StatusFailed}, pipeline.DefaultSort)
	for _, s := range got {
		assert.Equal(t, domain.StatusFailed, s.Status)
	}
	assert.ElementsMatch(t, []int64{2, 4, 6}, ids(got))
}

func TestApply_NameFiltersCaseInsensitive(t *testing.T) {
	tests := []struct {
		name   string
		filter pipeline.Filter
		want   []int64
	}{
		{"startup substring", pipeline.Filter{Startup: "ACME"}, []int64{1, 3}},
		{"platform substring", pipeline.Filter{Platform: "hunt"}, []int64{1, 4}},
		{"missing relation never matches", pipeline.Filter{Startup: "E"}, []int64{1, 2, 3, 5, 6}},
		{"conjunction", pipeline.Filter{Startup: "beta", Status: domain.StatusFailed, Platform: "news"}, []int64{2}},
		{"no match", pipeline.Filter{Startup: "nobody"}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pipeline.Apply(fixture(), tt.filter, pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Asc})
			assert.ElementsMatch(t, tt.want, ids(got))
		})
	}
}

// Every record kept matches all predicates and every record dropped fails one.
func TestApply_FilterIsExactSubset(t *testing.T) {
	src := fixture()
	filters := []pipeline.Filter{{}}
	for _, st := range append([]domain.SubmissionStatus{""}, domain.Statuses...) {
		for _, su := range []string{"", "a", "BETA", "zed"} {
			for _, pl := range []string{"", "h", "LIST"} {
				filters = append(filters, pipeline.Filter{Status: st, Startup: su, Platform: pl})
			}
		}
	}
	for _, f := range filters {
		got := pipeline.Apply(src, f, pipeline.DefaultSort)
		kept := map[int64]bool{}
		for _, s := range got {
			kept[s.ID] = true
		}
		for _, s := range src {
			want := (f.Status == "" || s.Status == f.Status) &&
				(f.Startup == "" || strings.Contains(strings.ToLower(s.StartupName()), strings.ToLower(f.Startup)) && s.Startup != nil) &&
				(f.Platform == "" || strings.Contains(strings.ToLower(s.PlatformName()), strings.ToLower(f.Platform)) && s.Platform != nil)
			assert.Equal(t, want, kept[s.ID], "filter %+v record %d", f, s.ID)
		}
	}
}

func TestApply_SortKeys(t *testing.T) {
	tests := []struct {
		sort pipeline.Sort
		want []int64
	}{
		{pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Asc}, []int64{6, 2, 4, 1, 5, 3}},
		{pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Desc}, []int64{3, 5, 1, 4, 2, 6}},
		// Missing startup sorts as "" first; equal names keep input order.
		{pipeline.Sort{Key: pipeline.SortStartup, Dir: pipeline.Asc}, []int64{4, 1, 2, 6, 5, 3}},
		{pipeline.Sort{Key: pipeline.SortPlatform, Dir: pipeline.Asc}, []int64{5, 3, 2, 6, 1, 4}},
		{pipeline.Sort{Key: pipeline.SortStatus, Dir: pipeline.Asc}, []int64{3, 2, 4, 6, 5, 1}},
		{pipeline.Sort{Key: pipeline.SortStatus, Dir: pipeline.Desc}, []int64{1, 5, 2, 4, 6, 3}},
		{pipeline.Sort{Key: "bogus", Dir: pipeline.Asc}, []int64{6, 2, 4, 1, 5, 3}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%s", tt.sort.Key, tt.sort.Dir), func(t *testing.T) {
			assert.Equal(t, tt.want, ids(pipeline.Apply(fixture(), pipeline.Filter{}, tt.sort)))
		})
	}
}

func TestApply_IdempotentAndReversible(t *testing.T) {
	src := fixture()
	for _, key := range pipeline.Columns {
		for _, dir := range []pipeline.Direction{pipeline.Asc, pipeline.Desc} {
			s := pipeline.Sort{Key: key, Dir: dir}
			once := pipeline.Apply(src, pipeline.Filter{}, s)
			twice := pipeline.Apply(once, pipeline.Filter{}, s)
			assert.Equal(t, ids(once), ids(twice), "%v", s)
		}
	}

	// created_at keys are all distinct, so flipping direction reverses exactly.
	asc := ids(pipeline.Apply(src, pipeline.Filter{}, pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Asc}))
	desc := ids(pipeline.Apply(src, pipeline.Filter{}, pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Desc}))
	slices.Reverse(desc)
	assert.Equal(t, asc, desc)
}

func TestApply_DoesNotMutateSource(t *testing.T) {
	src := fixture()
	before := ids(src)
	_ = pipeline.Apply(src, pipeline.Filter{Status: domain.StatusFailed}, pipeline.Sort{Key: pipeline.SortStartup, Dir: pipeline.Desc})
	assert.Equal(t, before, ids(src))

	got := pipeline.Apply(src, pipeline.Filter{}, pipeline.DefaultSort)
	require.NotEmpty(t, got)
	got[0].Status = "changed"
	for _, s := range src {
		assert.NotEqual(t, domain.SubmissionStatus("changed"), s.Status)
	}
}

func TestSort_Toggle(t *testing.T) {
	s := pipeline.DefaultSort

	s = s.Toggle(pipeline.SortStartup)
	assert.Equal(t, pipeline.Sort{Key: pipeline.SortStartup, Dir: pipeline.Asc}, s)

	s = s.Toggle(pipeline.SortStartup)
	assert.Equal(t, pipeline.Sort{Key: pipeline.SortStartup, Dir: pipeline.Desc}, s)

	s = s.Toggle(pipeline.SortStartup)
	assert.Equal(t, pipeline.Sort{Key: pipeline.SortStartup, Dir: pipeline.Asc}, s)

	s = s.Toggle(pipeline.SortStatus)
	assert.Equal(t, pipeline.Sort{Key: pipeline.SortStatus, Dir: pipeline.Asc}, s)

	// Clicking the default column while it is descending goes back to ascending.
	assert.Equal(t, pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Asc}, pipeline.DefaultSort.Toggle(pipeline.SortCreatedAt))
}

func TestParseQuery(t *testing.T) {
	f, s := pipeline.ParseQuery(url.Values{})
	assert.False(t, f.Active())
	assert.Equal(t, pipeline.DefaultSort, s)

	f, s = pipeline.ParseQuery(url.Values{
		"status":   {"failed"},
		"startup":  {"Acme"},
		"platform": {"hunt"},
		"sort":     {"platform"},
		"dir":      {"desc"},
	})
	assert.Equal(t, pipeline.Filter{Status: domain.StatusFailed, Startup: "Acme", Platform: "hunt"}, f)
	assert.Equal(t, pipeline.Sort{Key: pipeline.SortPlatform, Dir: pipeline.Desc}, s)

	_, s = pipeline.ParseQuery(url.Values{"sort": {"nope"}, "dir": {"sideways"}})
	assert.Equal(t, pipeline.Sort{Key: pipeline.SortCreatedAt, Dir: pipeline.Asc}, s)

	f, _ = pipeline.ParseQuery(url.Values{"status": {"archived"}})
	assert.False(t, f.Active())
}

func TestQuery_RoundTrip(t *testing.T) {
	f := pipeline.Filter{Status: domain.StatusInProgress, Startup: "a b", Platform: "x"}
	s := pipeline.Sort{Key: pipeline.SortStatus, Dir: pipeline.Desc}
	gotF, gotS := pipeline.ParseQuery(pipeline.Query(f, s))
	assert.Equal(t, f, gotF)
	assert.Equal(t, s, gotS)
}
