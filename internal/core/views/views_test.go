package views

import (
	"reflect"
	"testing"
	"time"

	"github.com/ruralroots/directory-api/internal/core/domain"
)

func testFarms() []domain.Farm {
	return []domain.Farm{
		{ID: "f1", OwnerID: "u2", Name: "Green Valley", Location: "Sonoma, CA", Region: "North America",
			Description: "organic vegetables", Tags: []string{"organic", "vegetables"}, Rating: 4.5,
			Reviews: []domain.Review{{Rating: 5}, {Rating: 4}}},
		{ID: "f2", OwnerID: "u2", Name: "Alpine Dairy", Location: "Bern", Region: "Europe",
			Description: "cheese and milk", Tags: []string{"dairy", "cheese"}, Rating: 4.8,
			Reviews: []domain.Review{{Rating: 5}}},
		{ID: "f3", OwnerID: "u9", Name: "Savanna Blooms", Location: "Naivasha", Region: "Africa",
			Description: "fair-trade roses", Tags: []string{"flowers", "organic"}, Rating: 3.9,
			Reviews: []domain.Review{}},
	}
}

func ids(farms []domain.Farm) []string {
	out := make([]string, len(farms))
	for i, f := range farms {
		out[i] = f.ID
	}
	return out
}

func TestListFarms_NoFiltersPreservesOrder(t *testing.T) {
	farms := testFarms()
	got := ListFarms(farms, "", FilterAll, FilterAll, "unrecognized")
	if !reflect.DeepEqual(ids(got), []string{"f1", "f2", "f3"}) {
		t.Fatalf("order changed: %v", ids(got))
	}
}

func TestListFarms_SearchIsCaseInsensitive(t *testing.T) {
	farms := testFarms()

	if got := ListFarms(farms, "GREEN", FilterAll, FilterAll, ""); len(got) != 1 || got[0].ID != "f1" {
		t.Fatalf("name search: %v", ids(got))
	}
	if got := ListFarms(farms, "naivasha", FilterAll, FilterAll, ""); len(got) != 1 || got[0].ID != "f3" {
		t.Fatalf("location search: %v", ids(got))
	}
	if got := ListFarms(farms, "cheese and", FilterAll, FilterAll, ""); len(got) != 1 || got[0].ID != "f2" {
		t.Fatalf("description search: %v", ids(got))
	}
	// Tag substring also matches.
	if got := ListFarms(farms, "veget", FilterAll, FilterAll, ""); len(got) != 1 || got[0].ID != "f1" {
		t.Fatalf("tag search: %v", ids(got))
	}
	if got := ListFarms(farms, "nothing-matches", FilterAll, FilterAll, ""); len(got) != 0 {
		t.Fatalf("expected empty, got %v", ids(got))
	}
}

func TestListFarms_FiltersAreConjunctive(t *testing.T) {
	farms := testFarms()

	// Tag filter is an exact match, not substring.
	if got := ListFarms(farms, "", "organic", FilterAll, ""); !reflect.DeepEqual(ids(got), []string{"f1", "f3"}) {
		t.Fatalf("tag filter: %v", ids(got))
	}
	if got := ListFarms(farms, "", "organ", FilterAll, ""); len(got) != 0 {
		t.Fatalf("tag filter must be exact: %v", ids(got))
	}

	if got := ListFarms(farms, "", FilterAll, "Europe", ""); !reflect.DeepEqual(ids(got), []string{"f2"}) {
		t.Fatalf("region filter: %v", ids(got))
	}

	// search AND tag AND region together.
	if got := ListFarms(farms, "roses", "organic", "Africa", ""); !reflect.DeepEqual(ids(got), []string{"f3"}) {
		t.Fatalf("combined filters: %v", ids(got))
	}
	if got := ListFarms(farms, "roses", "organic", "Europe", ""); len(got) != 0 {
		t.Fatalf("conjunction violated: %v", ids(got))
	}
}

func TestListFarms_SortByRating(t *testing.T) {
	got := ListFarms(testFarms(), "", FilterAll, FilterAll, SortByRating)
	for i := 1; i < len(got); i++ {
		if got[i].Rating > got[i-1].Rating {
			t.Fatalf("ratings not non-increasing: %v", ids(got))
		}
	}
	if got[0].ID != "f2" {
		t.Fatalf("highest rated first, got %v", ids(got))
	}
}

func TestListFarms_SortByName(t *testing.T) {
	got := ListFarms(testFarms(), "", FilterAll, FilterAll, SortByName)
	if !reflect.DeepEqual(ids(got), []string{"f2", "f1", "f3"}) {
		t.Fatalf("name sort: %v", ids(got))
	}
}

func TestListFarms_SortByReviewCount(t *testing.T) {
	got := ListFarms(testFarms(), "", FilterAll, FilterAll, SortByReviews)
	if !reflect.DeepEqual(ids(got), []string{"f1", "f2", "f3"}) {
		t.Fatalf("review count sort: %v", ids(got))
	}
}

func TestListFarms_DoesNotMutateInput(t *testing.T) {
	farms := testFarms()
	_ = ListFarms(farms, "", FilterAll, FilterAll, SortByRating)
	if !reflect.DeepEqual(ids(farms), []string{"f1", "f2", "f3"}) {
		t.Fatalf("input mutated: %v", ids(farms))
	}
}

func TestListJobs_NewestFirst(t *testing.T) {
	base := time.Date(2023, 11, 1, 9, 0, 0, 0, time.UTC)
	jobs := []domain.Job{
		{ID: "j1", Posted: base},
		{ID: "j2", Posted: base.Add(48 * time.Hour)},
		{ID: "j3", Posted: base.Add(24 * time.Hour)},
	}

	got := ListJobs(jobs)
	want := []string{"j2", "j3", "j1"}
	for i, j := range got {
		if j.ID != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
	// Input untouched.
	if jobs[0].ID != "j1" {
		t.Fatal("input mutated")
	}
}

func TestFarmsOwnedBy(t *testing.T) {
	got := FarmsOwnedBy(testFarms(), "u2")
	if !reflect.DeepEqual(ids(got), []string{"f1", "f2"}) {
		t.Fatalf("owned farms: %v", ids(got))
	}
	if got := FarmsOwnedBy(testFarms(), "nobody"); len(got) != 0 {
		t.Fatalf("expected none, got %v", ids(got))
	}
}

func TestJobsAppliedToBy(t *testing.T) {
	jobs := []domain.Job{
		{ID: "j1", Applications: []string{"u1", "u3"}},
		{ID: "j2", Applications: []string{}},
		{ID: "j3", Applications: []string{"u3"}},
	}

	got := JobsAppliedToBy(jobs, "u3")
	if len(got) != 2 || got[0].ID != "j1" || got[1].ID != "j3" {
		t.Fatalf("applied jobs wrong: %+v", got)
	}
	if got := JobsAppliedToBy(jobs, "u2"); len(got) != 0 {
		t.Fatalf("expected none, got %+v", got)
	}
}

func TestDistinctTagsAndRegions(t *testing.T) {
	tags := DistinctTags(testFarms())
	want := []string{"cheese", "dairy", "flowers", "organic", "vegetables"}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("tags = %v, want %v", tags, want)
	}

	regions := DistinctRegions(testFarms())
	wantRegions := []string{"Africa", "Europe", "North America"}
	if !reflect.DeepEqual(regions, wantRegions) {
		t.Fatalf("regions = %v, want %v", regions, wantRegions)
	}
}
