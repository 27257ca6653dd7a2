package state

import (
	"sort"
	"strings"
	"time"

	"github.com/snap-point/tour-guide-api/models"
	"github.com/snap-point/tour-guide-api/types"
)

// SortKey orders the bookmark list.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
)

var sortCycle = []SortKey{SortByName, SortByDistance, SortByRating}

// Next returns the key following k in the name, distance, rating cycle.
// Unknown keys restart the cycle.
func (k SortKey) Next() SortKey {
	for i, key := range sortCycle {
		if key == k {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return SortByName
}

func (k SortKey) Label() string {
	switch k {
	case SortByDistance:
		return "Distance"
	case SortByRating:
		return "Rating"
	default:
		return "Name"
	}
}

// SearchAttractions matches attraction names case-insensitively against query
// and filters by category. An empty category or "all" matches everything.
func (s *Store) SearchAttractions(query string, category models.Category) []models.Attraction {
	needle := strings.ToLower(query)
	var out []models.Attraction
	for _, a := range s.Attractions() {
		if !strings.Contains(strings.ToLower(a.Name), needle) {
			continue
		}
		if category != "" && category != models.CategoryAll && a.Category != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Bookmarked returns the bookmarked attractions ordered by key. Names sort
// ascending, distances nearest first, ratings highest first.
func (s *Store) Bookmarked(key SortKey) []models.Attraction {
	var out []models.Attraction
	for _, a := range s.Attractions() {
		if a.IsBookmarked {
			out = append(out, a)
		}
	}

	var less func(i, j int) bool
	switch key {
	case SortByDistance:
		less = func(i, j int) bool { return out[i].Distance < out[j].Distance }
	case SortByRating:
		less = func(i, j int) bool { return out[i].Rating > out[j].Rating }
	default:
		less = func(i, j int) bool { return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name) }
	}
	sort.SliceStable(out, less)
	return out
}

type BookmarkStats struct {
	Total       int `json:"total"`
	Restaurants int `json:"restaurants"`
	WithQrCode  int `json:"withQrCode"`
}

func (s *Store) BookmarkStats() BookmarkStats {
	var stats BookmarkStats
	for _, a := range s.Bookmarked(SortByName) {
		stats.Total++
		if a.Category == models.CategoryRestaurant {
			stats.Restaurants++
		}
		if a.HasQrCode {
			stats.WithQrCode++
		}
	}
	return stats
}

// ActiveRewards returns the rewards whose validity has not ended at now.
func (s *Store) ActiveRewards(now time.Time) []models.QrCodeReward {
	var out []models.QrCodeReward
	for _, r := range s.Rewards() {
		if r.IsActive(now) {
			out = append(out, r)
		}
	}
	return out
}

type Progress struct {
	Points          int `json:"points"`
	Level           int `json:"level"`
	PointsIntoLevel int `json:"pointsIntoLevel"`
	PointsToNext    int `json:"pointsToNext"`
	Scanned         int `json:"scanned"`
}

func (s *Store) Progress() Progress {
	u := s.User()
	into := types.PointsIntoLevel(u.Points)
	return Progress{
		Points:          u.Points,
		Level:           u.Level(),
		PointsIntoLevel: into,
		PointsToNext:    types.POINTS_PER_LEVEL - into,
		Scanned:         len(u.ScannedQrCodes),
	}
}

type Achievement struct {
	Key      string `json:"key"`
	Title    string `json:"title"`
	Unlocked bool   `json:"unlocked"`
}

func (s *Store) Achievements() []Achievement {
	u := s.User()
	cfg := types.GetPointsConfig()
	return []Achievement{
		{Key: "first_scan", Title: "First Scan", Unlocked: len(u.ScannedQrCodes) >= cfg.FirstScanThreshold},
		{Key: "point_collector", Title: "Point Collector", Unlocked: u.Points >= cfg.PointCollectorThreshold},
		{Key: "explorer", Title: "Explorer", Unlocked: len(u.BookmarkedPlaces) >= cfg.ExplorerThreshold},
	}
}
