package domain

import "time"

// Photo is an image attached to a trip. The backend stores only the URI;
// capture and hosting happen elsewhere.
type Photo struct {
	ID        int64
	TripID    int64
	URI       string
	Caption   string
	CreatedAt time.Time
}
