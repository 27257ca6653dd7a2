package catalog

import (
	"time"

	"github.com/lib/pq"
	"github.com/snap-point/tour-guide-api/models"
)

func intPtr(v int) *int { return &v }

// OpenEnded is the validity given to seeded rewards that should stay
// claimable. Seeded rows outlive the process, so it is fixed rather than
// relative to boot; operators shorten valid_until in the database.
var OpenEnded = time.Date(2099, time.December, 31, 23, 59, 59, 0, time.UTC)

// Default returns the built-in catalog. The first reward is open-ended and the
// second expired the day before now.
func Default(now time.Time) *Catalog {
	return &Catalog{
		User: models.User{
			ID:     "1",
			Name:   "Alex Johnson",
			Email:  "alex.johnson@example.com",
			Points: 50,
		},
		Attractions: []models.Attraction{
			{
				ID:           "1",
				Name:         "The Golden Spoon",
				Category:     models.CategoryRestaurant,
				Description:  "Farm-to-table dining with a seasonal menu and a rooftop terrace.",
				Address:      "123 Main Street, Downtown",
				Rating:       4.8,
				Distance:     0.5,
				ImageURL:     "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg",
				Latitude:     40.7128,
				Longitude:    -74.0060,
				HasQrCode:    true,
				PointsReward: 60,
				Features:     pq.StringArray{"outdoor_seating", "wifi"},
				SortOrder:    1,
			},
			{
				ID:           "2",
				Name:         "City Art Museum",
				Category:     models.CategoryMuseum,
				Description:  "Contemporary and classical collections across four floors.",
				Address:      "456 Culture Avenue",
				Rating:       4.6,
				Distance:     1.2,
				ImageURL:     "https://images.pexels.com/photos/1839919/pexels-photo-1839919.jpeg",
				Latitude:     40.7614,
				Longitude:    -73.9776,
				HasQrCode:    true,
				PointsReward: 40,
				Features:     pq.StringArray{"wheelchair", "audio_guide"},
				SortOrder:    2,
			},
			{
				ID:           "3",
				Name:         "Old Town Cathedral",
				Category:     models.CategoryHistorical,
				Description:  "Gothic cathedral dating back to the fourteenth century.",
				Address:      "1 Cathedral Square",
				Rating:       4.7,
				Distance:     2.1,
				ImageURL:     "https://images.pexels.com/photos/208701/pexels-photo-208701.jpeg",
				Latitude:     40.7061,
				Longitude:    -74.0087,
				HasQrCode:    true,
				PointsReward: 50,
				SortOrder:    3,
			},
			{
				ID:           "4",
				Name:         "Riverside Park",
				Category:     models.CategoryPark,
				Description:  "Waterfront trails, gardens and picnic lawns.",
				Address:      "Riverside Drive",
				Rating:       4.5,
				Distance:     0.8,
				ImageURL:     "https://images.pexels.com/photos/1179229/pexels-photo-1179229.jpeg",
				Latitude:     40.8007,
				Longitude:    -73.9701,
				HasQrCode:    false,
				PointsReward: 20,
				Features:     pq.StringArray{"pet_friendly"},
				SortOrder:    4,
			},
			{
				ID:           "5",
				Name:         "Starlight Theater",
				Category:     models.CategoryEntertainment,
				Description:  "Live shows and concerts in a restored art deco hall.",
				Address:      "789 Broadway",
				Rating:       4.4,
				Distance:     1.5,
				ImageURL:     "https://images.pexels.com/photos/713149/pexels-photo-713149.jpeg",
				Latitude:     40.7590,
				Longitude:    -73.9845,
				HasQrCode:    true,
				PointsReward: 30,
				SortOrder:    5,
			},
			{
				ID:           "6",
				Name:         "Market Street Bazaar",
				Category:     models.CategoryShopping,
				Description:  "Local crafts, vintage stalls and street food.",
				Address:      "22 Market Street",
				Rating:       4.2,
				Distance:     0.3,
				ImageURL:     "https://images.pexels.com/photos/264636/pexels-photo-264636.jpeg",
				Latitude:     40.7209,
				Longitude:    -73.9961,
				HasQrCode:    false,
				PointsReward: 15,
				SortOrder:    6,
			},
		},
		AudioTours: []models.AudioTour{
			{
				ID:          "1",
				Title:       "Historic Downtown Walk",
				Description: "Stories behind the oldest streets and buildings in the city.",
				Duration:    "45 min",
				PointsCost:  50,
				ImageURL:    "https://images.pexels.com/photos/208701/pexels-photo-208701.jpeg",
				PreviewURL:  "tours/historic-downtown/preview.mp3",
				FullURL:     "tours/historic-downtown/full.mp3",
				SortOrder:   1,
			},
			{
				ID:          "2",
				Title:       "Museum Masterpieces",
				Description: "A curator-led walk through the museum's highlights.",
				Duration:    "30 min",
				PointsCost:  75,
				ImageURL:    "https://images.pexels.com/photos/1839919/pexels-photo-1839919.jpeg",
				PreviewURL:  "tours/museum-masterpieces/preview.mp3",
				FullURL:     "tours/museum-masterpieces/full.mp3",
				SortOrder:   2,
			},
			{
				ID:          "3",
				Title:       "Riverside Nature Trail",
				Description: "Birds, plants and history along the waterfront.",
				Duration:    "60 min",
				PointsCost:  100,
				ImageURL:    "https://images.pexels.com/photos/1179229/pexels-photo-1179229.jpeg",
				FullURL:     "tours/riverside-nature/full.mp3",
				SortOrder:   3,
			},
		},
		Rewards: []models.QrCodeReward{
			{
				ID:                 "1",
				AttractionID:       "1",
				Title:              "Welcome Bonus",
				Description:        "Thanks for visiting The Golden Spoon!",
				PointsAwarded:      60,
				DiscountPercentage: intPtr(15),
				ValidUntil:         OpenEnded,
			},
			{
				ID:            "2",
				AttractionID:  "2",
				Title:         "Art Lover",
				Description:   "Discover the city's finest collection.",
				PointsAwarded: 40,
				ValidUntil:    now.AddDate(0, 0, -1),
			},
		},
	}
}
