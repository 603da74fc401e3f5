package filter

import (
	"fmt"
	"strings"
)

type SortKey int

const (
	SortUpdated SortKey = iota
	SortStars
	SortName
)

type SortOrder int

const (
	Desc SortOrder = iota
	Asc
)

type Activity int

const (
	ActivityAny Activity = iota
	ActivityRecent
	ActivityActive
	ActivityStale
)

type Friendliness int

const (
	FriendlyAny Friendliness = iota
	FriendlyGoodFirstIssues
	FriendlyHighlyActive
	FriendlyWellMaintained
)

type Size int

const (
	SizeAny Size = iota
	SizeSmall
	SizeMedium
	SizeLarge
)

// Options is the structured repository filter. The zero value filters
// nothing and sorts by most recent update first.
type Options struct {
	Search              string
	Language            string
	SortBy              SortKey
	SortOrder           SortOrder
	Activity            Activity
	ContributorFriendly Friendliness
	Size                Size
	MinStars            int
	HasRecentActivity   bool
}

// IsAdvanced reports whether any criterion beyond search, language and sort
// is active.
func (o Options) IsAdvanced() bool {
	return o.Activity != ActivityAny ||
		o.ContributorFriendly != FriendlyAny ||
		o.Size != SizeAny ||
		o.MinStars > 0 ||
		o.HasRecentActivity
}

var (
	sortKeys = map[SortKey]string{
		SortUpdated: "updated",
		SortStars:   "stars",
		SortName:    "name",
	}
	sortOrders = map[SortOrder]string{
		Desc: "desc",
		Asc:  "asc",
	}
	activities = map[Activity]string{
		ActivityAny:    "all",
		ActivityRecent: "recent",
		ActivityActive: "active",
		ActivityStale:  "stale",
	}
	friendliness = map[Friendliness]string{
		FriendlyAny:             "all",
		FriendlyGoodFirstIssues: "good-first-issues",
		FriendlyHighlyActive:    "highly-active",
		FriendlyWellMaintained:  "well-maintained",
	}
	sizes = map[Size]string{
		SizeAny:    "all",
		SizeSmall:  "small",
		SizeMedium: "medium",
		SizeLarge:  "large",
	}
)

func (k SortKey) String() string      { return sortKeys[k] }
func (o SortOrder) String() string    { return sortOrders[o] }
func (a Activity) String() string     { return activities[a] }
func (f Friendliness) String() string { return friendliness[f] }
func (s Size) String() string         { return sizes[s] }

func parse[T comparable](kind string, values map[T]string, s string) (T, error) {
	var zero T
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zero, nil
	}
	for k, v := range values {
		if v == s {
			return k, nil
		}
	}
	return zero, fmt.Errorf("invalid %s %q", kind, s)
}

// ParseSortKey accepts "updated", "stars" or "name"; empty means updated.
func ParseSortKey(s string) (SortKey, error) { return parse("sort key", sortKeys, s) }

func ParseSortOrder(s string) (SortOrder, error) { return parse("sort order", sortOrders, s) }

// ParseActivity accepts "all", "recent", "active" or "stale".
func ParseActivity(s string) (Activity, error) { return parse("activity filter", activities, s) }

func ParseFriendliness(s string) (Friendliness, error) {
	return parse("contributor friendly filter", friendliness, s)
}

func ParseSize(s string) (Size, error) { return parse("repository size", sizes, s) }
