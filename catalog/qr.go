package catalog

import (
	"errors"
	"strings"

	"github.com/snap-point/tour-guide-api/models"
)

const payloadMarker = "attraction_"

var ErrUnknownPayload = errors.New("qr payload does not match any reward")

// ResolvePayload maps a scanned QR payload to a reward. Codes are not decoded:
// a payload names its attraction as "attraction_<id>" anywhere in the text,
// e.g. "mock_qr_code_attraction_1".
func (c *Catalog) ResolvePayload(payload string) (models.QrCodeReward, error) {
	i := strings.LastIndex(payload, payloadMarker)
	if i < 0 {
		return models.QrCodeReward{}, ErrUnknownPayload
	}
	id := payload[i+len(payloadMarker):]
	if end := strings.IndexFunc(id, func(r rune) bool { return r == '/' || r == '?' || r == '&' || r == ' ' }); end >= 0 {
		id = id[:end]
	}
	if id == "" {
		return models.QrCodeReward{}, ErrUnknownPayload
	}

	for _, r := range c.Rewards {
		if r.AttractionID == id {
			return r, nil
		}
	}
	return models.QrCodeReward{}, ErrUnknownPayload
}
