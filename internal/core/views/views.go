// Package views computes read-side projections of the directory
// Snapshot. Every function is pure: it never mutates its inputs and is
// safe to re-run on every request without memoization.
package views

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

// Sort keys accepted by ListFarms. Any other value preserves input order.
const (
	SortByRating  = "rating"
	SortByName    = "name"
	SortByReviews = "reviews"
)

// FilterAll disables a tag or region filter.
const FilterAll = "all"

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// ListFarms filters and sorts farms for the listing view. Filters are
// conjunctive: a case-insensitive substring match of searchTerm against
// name, location, description, or any tag; an exact tag match unless
// tagFilter is "all"; an exact region match unless regionFilter is "all".
// Unrecognized sort keys keep the farms in input order.
func ListFarms(farms []domain.Farm, searchTerm, tagFilter, regionFilter, sortKey string) []domain.Farm {
	searchLower := strings.ToLower(searchTerm)

	out := make([]domain.Farm, 0, len(farms))
	for _, f := range farms {
		if !matchesSearch(&f, searchLower) {
			continue
		}
		if tagFilter != FilterAll && tagFilter != "" && !hasTag(&f, tagFilter) {
			continue
		}
		if regionFilter != FilterAll && regionFilter != "" && f.Region != regionFilter {
			continue
		}
		out = append(out, f)
	}

	switch sortKey {
	case SortByRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	case SortByName:
		sort.SliceStable(out, func(i, j int) bool {
			return nameCollator.CompareString(out[i].Name, out[j].Name) < 0
		})
	case SortByReviews:
		sort.SliceStable(out, func(i, j int) bool { return len(out[i].Reviews) > len(out[j].Reviews) })
	}
	return out
}

// ListJobs returns jobs sorted by posting time, newest first.
func ListJobs(jobs []domain.Job) []domain.Job {
	out := append([]domain.Job(nil), jobs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Posted.After(out[j].Posted) })
	return out
}

// FarmsOwnedBy returns the farms owned by userID in snapshot order.
func FarmsOwnedBy(farms []domain.Farm, userID string) []domain.Farm {
	out := make([]domain.Farm, 0)
	for _, f := range farms {
		if f.OwnerID == userID {
			out = append(out, f)
		}
	}
	return out
}

// JobsAppliedToBy returns the jobs userID has applied to, snapshot order.
func JobsAppliedToBy(jobs []domain.Job, userID string) []domain.Job {
	out := make([]domain.Job, 0)
	for _, j := range jobs {
		if j.HasApplicant(userID) {
			out = append(out, j)
		}
	}
	return out
}

// DistinctTags returns the unique tags across all farms, ascending.
func DistinctTags(farms []domain.Farm) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, f := range farms {
		for _, t := range f.Tags {
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				out = append(out, t)
			}
		}
	}
	sort.Strings(out)
	return out
}

// DistinctRegions returns the unique regions across all farms, ascending.
func DistinctRegions(farms []domain.Farm) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, f := range farms {
		if _, ok := seen[f.Region]; !ok {
			seen[f.Region] = struct{}{}
			out = append(out, f.Region)
		}
	}
	sort.Strings(out)
	return out
}

func matchesSearch(f *domain.Farm, searchLower string) bool {
	if searchLower == "" {
		return true
	}
	if strings.Contains(strings.ToLower(f.Name), searchLower) ||
		strings.Contains(strings.ToLower(f.Location), searchLower) ||
		strings.Contains(strings.ToLower(f.Description), searchLower) {
		return true
	}
	for _, t := range f.Tags {
		if strings.Contains(strings.ToLower(t), searchLower) {
			return true
		}
	}
	return false
}

func hasTag(f *domain.Farm, tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
