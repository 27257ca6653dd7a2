package models

import (
	"encoding/json"

	"github.com/snap-point/tour-guide-api/types"
)

// User is the session's profile. Level is never stored: it is always derived
// from Points.
type User struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Points             int      `json:"points"`
	ScannedQrCodes     []string `json:"scannedQrCodes"`
	BookmarkedPlaces   []string `json:"bookmarkedPlaces"`
	UnlockedAudioTours []string `json:"unlockedAudioTours"`
}

func (u User) Level() int {
	return types.LevelFor(u.Points)
}

// MarshalJSON adds the derived level to the wire form.
func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return json.Marshal(struct {
		plain
		Level int `json:"level"`
	}{plain: plain(u), Level: u.Level()})
}
