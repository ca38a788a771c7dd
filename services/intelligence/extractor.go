// File: services/intelligence/extractor.go
package ai

import (
	"context"
	"errors"

	"attendai/models"
)

// FailureMessage is what callers show for any extraction failure.
const FailureMessage = "Failed to process schedule image. Please try again."

var (
	ErrMissingCredentials = errors.New("timetable extraction is not configured")
	ErrExtractionFailed   = errors.New("timetable extraction request failed")
	ErrEmptyExtraction    = errors.New("no classes found in image")
	ErrMalformedResponse  = errors.New("extraction response is not a valid schedule")
)

// Image is one uploaded timetable photo.
type Image struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Extractor turns a timetable photo into schedule items. Returned items
// carry no ids; the caller assigns them.
type Extractor interface {
	Extract(ctx context.Context, img Image) ([]models.ScheduleItem, error)
}

// ImageArchive keeps a copy of uploaded photos.
type ImageArchive interface {
	Store(ctx context.Context, userID string, img Image) (string, error)
}
