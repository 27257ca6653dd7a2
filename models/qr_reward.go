package models

import "time"

type QrCodeReward struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(64)"`
	AttractionID       string    `json:"attractionId" gorm:"not null;type:varchar(64);index"`
	Title              string    `json:"title" gorm:"not null"`
	Description        string    `json:"description" gorm:"type:text"`
	PointsAwarded      int       `json:"pointsAwarded" gorm:"not null;default:0"`
	DiscountPercentage *int      `json:"discountPercentage,omitempty" gorm:"check:discount_percentage between 0 and 100"`
	ValidUntil         time.Time `json:"validUntil" gorm:"not null"`
}

// IsActive reports whether the reward can still be claimed at now.
func (r QrCodeReward) IsActive(now time.Time) bool {
	return r.ValidUntil.After(now)
}
