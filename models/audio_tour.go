package models

type AudioTour struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Duration    string `json:"duration"` // display string, e.g. "45 min"
	PointsCost  int    `json:"pointsCost" gorm:"not null;default:0"`
	ImageURL    string `json:"imageUrl"`
	PreviewURL  string `json:"previewUrl,omitempty"`
	FullURL     string `json:"fullUrl,omitempty"`
	SortOrder   int    `json:"-" gorm:"not null;default:0"`

	// IsUnlocked is filled in on read from the session's unlocked set.
	IsUnlocked bool `json:"isUnlocked" gorm:"-"`
}
