// Package state holds the per-session domain state: the user profile, the
// attraction list and the audio tours, and the four operations that mutate it.
//
// Bookmark and unlock flags are not stored on attractions or tours. They are
// derived on read from the user's membership sets, so the two can never
// disagree.
package state

import (
	"sync"

	"github.com/snap-point/tour-guide-api/models"
)

// Seed is the reference data a store starts from.
type Seed struct {
	User        models.User
	Attractions []models.Attraction
	AudioTours  []models.AudioTour
	Rewards     []models.QrCodeReward
}

type Store struct {
	mu sync.Mutex

	profile  models.User
	points   int
	scanned  *idSet
	bookmark *idSet
	unlocked *idSet

	attractions []models.Attraction
	byAttr      map[string]int
	tours       []models.AudioTour
	byTour      map[string]int
	rewards     []models.QrCodeReward
}

// New builds a store from seed. Seed slices are copied; membership ids in the
// seed user that do not reference a known record are dropped.
func New(seed Seed) *Store {
	s := &Store{
		profile:     seed.User,
		attractions: make([]models.Attraction, len(seed.Attractions)),
		byAttr:      make(map[string]int, len(seed.Attractions)),
		tours:       make([]models.AudioTour, len(seed.AudioTours)),
		byTour:      make(map[string]int, len(seed.AudioTours)),
		rewards:     make([]models.QrCodeReward, len(seed.Rewards)),
	}
	copy(s.attractions, seed.Attractions)
	copy(s.tours, seed.AudioTours)
	copy(s.rewards, seed.Rewards)
	for i := range s.attractions {
		s.attractions[i].IsBookmarked = false
		s.byAttr[s.attractions[i].ID] = i
	}
	for i := range s.tours {
		s.tours[i].IsUnlocked = false
		s.byTour[s.tours[i].ID] = i
	}

	s.points = clampPoints(seed.User.Points)
	s.scanned = newIDSet(seed.User.ScannedQrCodes...)
	s.bookmark = newIDSet()
	for _, id := range seed.User.BookmarkedPlaces {
		if _, ok := s.byAttr[id]; ok {
			s.bookmark.add(id)
		}
	}
	s.unlocked = newIDSet()
	for _, id := range seed.User.UnlockedAudioTours {
		if _, ok := s.byTour[id]; ok {
			s.unlocked.add(id)
		}
	}
	return s
}

// ToggleBookmark adds or removes the attraction from the user's bookmarks.
// Unknown ids are ignored.
func (s *Store) ToggleBookmark(attractionID string) {
	s.FlipBookmark(attractionID)
}

// FlipBookmark is ToggleBookmark that returns the attraction and the full
// bookmark list as they stand right after the flip. ok is false, and nothing
// changes, for an unknown id.
func (s *Store) FlipBookmark(attractionID string) (a models.Attraction, bookmarks []string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byAttr[attractionID]
	if !ok {
		return models.Attraction{}, nil, false
	}
	if s.bookmark.has(attractionID) {
		s.bookmark.remove(attractionID)
	} else {
		s.bookmark.add(attractionID)
	}

	a = s.attractions[i]
	a.IsBookmarked = s.bookmark.has(attractionID)
	return a, s.bookmark.slice(), true
}

// UnlockAudioTour spends pointsCost to unlock the tour. It returns false, and
// changes nothing, when the user cannot afford it, the tour is unknown or the
// cost is negative. A
// tour that is already unlocked reports true without being charged again.
func (s *Store) UnlockAudioTour(tourID string, pointsCost int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byTour[tourID]; !ok || pointsCost < 0 {
		return false
	}
	if s.unlocked.has(tourID) {
		return true
	}
	if s.points < pointsCost {
		return false
	}
	s.setPoints(s.points - pointsCost)
	s.unlocked.add(tourID)
	return true
}

// AddScannedQrCode credits pointsAwarded the first time an attraction's code is
// scanned. Repeat scans of the same attraction are ignored.
func (s *Store) AddScannedQrCode(attractionID string, pointsAwarded int) {
	s.ClaimQrCode(attractionID, pointsAwarded)
}

// ClaimQrCode is AddScannedQrCode that reports whether points were credited.
func (s *Store) ClaimQrCode(attractionID string, pointsAwarded int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.scanned.add(attractionID) {
		return false
	}
	s.setPoints(s.points + pointsAwarded)
	return true
}

// UpdateUserPoints adds delta to the user's points.
func (s *Store) UpdateUserPoints(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.setPoints(s.points + delta)
}

// setPoints is the only writer of points; level follows from it.
func (s *Store) setPoints(points int) {
	s.points = clampPoints(points)
}

func clampPoints(points int) int {
	if points < 0 {
		return 0
	}
	return points
}

// User returns a snapshot of the profile.
func (s *Store) User() models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userLocked()
}

func (s *Store) userLocked() models.User {
	u := s.profile
	u.Points = s.points
	u.ScannedQrCodes = s.scanned.slice()
	u.BookmarkedPlaces = s.bookmark.slice()
	u.UnlockedAudioTours = s.unlocked.slice()
	return u
}

// Attractions returns every attraction in catalog order with IsBookmarked set.
func (s *Store) Attractions() []models.Attraction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attractionsLocked()
}

func (s *Store) attractionsLocked() []models.Attraction {
	out := make([]models.Attraction, len(s.attractions))
	for i, a := range s.attractions {
		a.IsBookmarked = s.bookmark.has(a.ID)
		out[i] = a
	}
	return out
}

func (s *Store) Attraction(id string) (models.Attraction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byAttr[id]
	if !ok {
		return models.Attraction{}, false
	}
	a := s.attractions[i]
	a.IsBookmarked = s.bookmark.has(id)
	return a, true
}

// AudioTours returns every tour in catalog order with IsUnlocked set.
func (s *Store) AudioTours() []models.AudioTour {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.AudioTour, len(s.tours))
	for i, t := range s.tours {
		t.IsUnlocked = s.unlocked.has(t.ID)
		out[i] = t
	}
	return out
}

func (s *Store) AudioTour(id string) (models.AudioTour, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byTour[id]
	if !ok {
		return models.AudioTour{}, false
	}
	t := s.tours[i]
	t.IsUnlocked = s.unlocked.has(id)
	return t, true
}

func (s *Store) Rewards() []models.QrCodeReward {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.QrCodeReward, len(s.rewards))
	copy(out, s.rewards)
	return out
}
