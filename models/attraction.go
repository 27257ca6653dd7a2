package models

import (
	"github.com/lib/pq"
)

type Attraction struct {
	ID           string         `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name         string         `json:"name" gorm:"not null"`
	Category     Category       `json:"category" gorm:"not null;type:varchar(32);index"`
	Description  string         `json:"description" gorm:"type:text"`
	Address      string         `json:"address" gorm:"not null"`
	Rating       float64        `json:"rating" gorm:"not null;default:0;type:decimal(3,2)"`
	Distance     float64        `json:"distance" gorm:"not null;default:0"` // kilometers, static
	ImageURL     string         `json:"imageUrl"`
	Latitude     float64        `json:"latitude" gorm:"not null;type:decimal(10,8)"`
	Longitude    float64        `json:"longitude" gorm:"not null;type:decimal(11,8)"`
	HasQrCode    bool           `json:"hasQrCode" gorm:"default:false"`
	PointsReward int            `json:"pointsReward" gorm:"not null;default:0"`
	Features     pq.StringArray `json:"features,omitempty" gorm:"type:text[]"` // ["wifi", "wheelchair"]
	SortOrder    int            `json:"-" gorm:"not null;default:0"`

	// IsBookmarked is filled in on read from the session's bookmark set.
	IsBookmarked bool `json:"isBookmarked" gorm:"-"`
}
