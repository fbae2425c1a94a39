package entity

import (
	"github.com/google/uuid"
)

// AdImpressionCounter tracks how often one ad was shown on one UTC day.
// A row is created lazily on the first impression of that day and its count
// never exceeds the ad's effective daily cap.
type AdImpressionCounter struct {
	AdID            uuid.UUID // Ad being shown
	ImpressionDate  string    // UTC day key (YYYY-MM-DD)
	ImpressionCount int       // Impressions recorded today
}

// Exhausted reports whether the counter has reached the given cap
func (c *AdImpressionCounter) Exhausted(limit int) bool {
	return c.ImpressionCount >= limit
}
