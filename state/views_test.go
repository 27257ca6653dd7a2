package state

import (
	"testing"
	"time"

	"github.com/snap-point/tour-guide-api/models"
)

func ids(attractions []models.Attraction) []string {
	out := make([]string, 0, len(attractions))
	for _, a := range attractions {
		out = append(out, a.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchAttractions(t *testing.T) {
	s := New(testSeed(0))

	tests := []struct {
		name     string
		query    string
		category models.Category
		want     []string
	}{
		{name: "everything", want: []string{"1", "2", "3"}},
		{name: "all category", category: models.CategoryAll, want: []string{"1", "2", "3"}},
		{name: "case insensitive", query: "MUSEUM", want: []string{"2"}},
		{name: "category only", category: models.CategoryHistorical, want: []string{"3"}},
		{name: "query and category disagree", query: "grill", category: models.CategoryMuseum, want: []string{}},
		{name: "no match", query: "zoo", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ids(s.SearchAttractions(tt.query, tt.category)); !equalIDs(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBookmarkedSorting(t *testing.T) {
	s := New(testSeed(0))
	for _, id := range []string{"3", "1", "2"} {
		s.ToggleBookmark(id)
	}

	tests := []struct {
		key  SortKey
		want []string
	}{
		{key: SortByName, want: []string{"2", "1", "3"}},
		{key: SortByDistance, want: []string{"2", "1", "3"}},
		{key: SortByRating, want: []string{"2", "1", "3"}},
		{key: "", want: []string{"2", "1", "3"}},
	}
	for _, tt := range tests {
		if got := ids(s.Bookmarked(tt.key)); !equalIDs(got, tt.want) {
			t.Errorf("Bookmarked(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}

	s.ToggleBookmark("2")
	if got := ids(s.Bookmarked(SortByDistance)); !equalIDs(got, []string{"1", "3"}) {
		t.Errorf("after removing 2: %v", got)
	}
	if got := ids(s.Bookmarked(SortByRating)); !equalIDs(got, []string{"1", "3"}) {
		t.Errorf("rating order: %v", got)
	}
}

func TestSortKeyCycle(t *testing.T) {
	key := SortByName
	var seen []SortKey
	for i := 0; i < 4; i++ {
		key = key.Next()
		seen = append(seen, key)
	}
	want := []SortKey{SortByDistance, SortByRating, SortByName, SortByDistance}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("cycle = %v, want %v", seen, want)
		}
	}
	if got := SortKey("bogus").Next(); got != SortByName {
		t.Fatalf("unknown key next = %q, want name", got)
	}
	if got := SortByRating.Label(); got != "Rating" {
		t.Fatalf("label = %q", got)
	}
}

func TestBookmarkStats(t *testing.T) {
	s := New(testSeed(0))
	s.ToggleBookmark("1")
	s.ToggleBookmark("3")

	want := BookmarkStats{Total: 2, Restaurants: 1, WithQrCode: 1}
	if got := s.BookmarkStats(); got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}

func TestActiveRewards(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	seed := testSeed(0)
	seed.Rewards = []models.QrCodeReward{
		{ID: "r1", AttractionID: "1", ValidUntil: now.Add(time.Hour)},
		{ID: "r2", AttractionID: "2", ValidUntil: now},
		{ID: "r3", AttractionID: "3", ValidUntil: now.Add(-time.Hour)},
	}
	s := New(seed)

	active := s.ActiveRewards(now)
	if len(active) != 1 || active[0].ID != "r1" {
		t.Fatalf("active = %+v, want only r1", active)
	}
}

func TestProgressAndAchievements(t *testing.T) {
	s := New(testSeed(50))

	unlocked := func() map[string]bool {
		out := map[string]bool{}
		for _, a := range s.Achievements() {
			out[a.Key] = a.Unlocked
		}
		return out
	}

	if got := unlocked(); got["first_scan"] || got["point_collector"] || got["explorer"] {
		t.Fatalf("fresh user has achievements: %v", got)
	}

	s.AddScannedQrCode("1", 75)
	for _, id := range []string{"1", "2", "3"} {
		s.ToggleBookmark(id)
	}

	got := unlocked()
	if !got["first_scan"] || !got["point_collector"] || !got["explorer"] {
		t.Fatalf("achievements = %v, want all unlocked", got)
	}

	p := s.Progress()
	want := Progress{Points: 125, Level: 2, PointsIntoLevel: 25, PointsToNext: 75, Scanned: 1}
	if p != want {
		t.Fatalf("progress = %+v, want %+v", p, want)
	}
}
