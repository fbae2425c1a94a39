package dto

// EligibilityResponse reports whether an ad may still be shown today
type EligibilityResponse struct {
	AdID     string `json:"adId"`
	Eligible bool   `json:"eligible"`
}

// ImpressionResponse confirms a recorded ad impression
type ImpressionResponse struct {
	AdID     string `json:"adId"`
	Recorded bool   `json:"recorded"`
}
