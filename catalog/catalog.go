// Package catalog holds the reference data every session starts from:
// attractions, audio tours, QR rewards and the seed profile.
package catalog

import (
	"github.com/snap-point/tour-guide-api/models"
	"github.com/snap-point/tour-guide-api/state"
)

type Catalog struct {
	User        models.User
	Attractions []models.Attraction
	AudioTours  []models.AudioTour
	Rewards     []models.QrCodeReward
}

// NewStore returns a fresh session store seeded from the catalog.
func (c *Catalog) NewStore() *state.Store {
	user := c.User
	user.ScannedQrCodes = append([]string(nil), c.User.ScannedQrCodes...)
	user.BookmarkedPlaces = append([]string(nil), c.User.BookmarkedPlaces...)
	user.UnlockedAudioTours = append([]string(nil), c.User.UnlockedAudioTours...)

	return state.New(state.Seed{
		User:        user,
		Attractions: c.Attractions,
		AudioTours:  c.AudioTours,
		Rewards:     c.Rewards,
	})
}

func (c *Catalog) Attraction(id string) (models.Attraction, bool) {
	for _, a := range c.Attractions {
		if a.ID == id {
			return a, true
		}
	}
	return models.Attraction{}, false
}
