package filter

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/KOFI-GYIMAH/contribution-tracker/internal/models"
)

const dateLayout = "2006-01-02"

// Query is a compiled repository search: the q string plus the provider-side
// sort and order.
type Query struct {
	Q     string
	Sort  string
	Order string
}

// Compile translates opts into the search mini-language scoped to org. The
// advanced qualifiers are only appended when opts.IsAdvanced(); dates are
// computed relative to now in UTC.
func Compile(org string, opts Options, now time.Time) Query {
	parts := []string{"org:" + org}

	if term := strings.TrimSpace(opts.Search); term != "" {
		parts = append(parts, term)
	}
	if lang := strings.TrimSpace(opts.Language); lang != "" {
		parts = append(parts, "language:"+lang)
	}

	if opts.IsAdvanced() {
		parts = append(parts, qualifiers(opts, now.UTC())...)
	}

	return Query{
		Q:     strings.Join(parts, " "),
		Sort:  ProviderSort(opts.SortBy),
		Order: opts.SortOrder.String(),
	}
}

func qualifiers(opts Options, now time.Time) []string {
	var q []string

	if opts.MinStars > 0 {
		q = append(q, fmt.Sprintf("stars:>=%d", opts.MinStars))
	}

	switch opts.Size {
	case SizeSmall:
		q = append(q, "stars:<100")
	case SizeMedium:
		q = append(q, "stars:100..1000")
	case SizeLarge:
		q = append(q, "stars:>1000")
	}

	switch opts.Activity {
	case ActivityRecent:
		q = append(q, "pushed:>"+now.AddDate(0, -1, 0).Format(dateLayout))
	case ActivityActive:
		q = append(q, "pushed:>"+now.AddDate(0, -6, 0).Format(dateLayout))
	case ActivityStale:
		q = append(q, "pushed:<"+now.AddDate(-1, 0, 0).Format(dateLayout))
	}

	if opts.HasRecentActivity {
		q = append(q, "pushed:>"+now.AddDate(0, 0, -7).Format(dateLayout))
	}

	return q
}

// ProviderSort maps a sort key to one the search API understands. The API
// cannot sort by name, so name sorts fetch by last update and are reordered
// with SortByName afterwards.
func ProviderSort(key SortKey) string {
	if key == SortName {
		return SortUpdated.String()
	}
	return key.String()
}

// SortByName orders repos in place by case-sensitive name comparison.
func SortByName(repos []models.Repository, order SortOrder) {
	sort.SliceStable(repos, func(i, j int) bool {
		if order == Asc {
			return repos[i].Name < repos[j].Name
		}
		return repos[i].Name > repos[j].Name
	})
}
