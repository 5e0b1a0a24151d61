package ownerrequest

import "time"

// Image is an uploaded photo attached to a request or to one of its sub-venues.
// Key is the storage key, not a URL.
type Image struct {
	ID             int64
	OwnerRequestID *int64
	QuadraID       *int64
	Key            string
	UploadedAt     time.Time
}

func NewRequestImage(requestID int64, key string, now time.Time) (Image, error) {
	if requestID <= 0 {
		return Image{}, ErrImageOwnerMissing
	}
	return Image{OwnerRequestID: &requestID, Key: key, UploadedAt: now}, nil
}

func NewSubVenueImage(subVenueID int64, key string, now time.Time) (Image, error) {
	if subVenueID <= 0 {
		return Image{}, ErrImageOwnerMissing
	}
	return Image{QuadraID: &subVenueID, Key: key, UploadedAt: now}, nil
}
