package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultImageGroup is the bucket for images uploaded without a type.
const DefaultImageGroup = "Others"

// NormalizeImageType maps a blank or whitespace-only type to the default group.
func NormalizeImageType(imageType string) string {
	trimmed := strings.TrimSpace(imageType)
	if trimmed == "" {
		return DefaultImageGroup
	}
	return trimmed
}

// Image is metadata for one uploaded asset. Rows are immutable after creation.
type Image struct {
	ID          uuid.UUID `db:"id"`
	FileName    string    `db:"file_name"`
	ImageType   string    `db:"image_type"`
	ImageTag    string    `db:"image_tag"`
	URL         string    `db:"url"`
	ContentType string    `db:"content_type"`
	Size        int64     `db:"size"`
	UploadedAt  time.Time `db:"uploaded_at"`
}

// ImageGroupEntry is one image as it appears inside a grouped listing.
type ImageGroupEntry struct {
	Tag string `json:"tag"`
	URL string `json:"url"`
}

// ImageGroup is one bucket produced by the group-by-type aggregation.
type ImageGroup struct {
	Type   string
	Images []ImageGroupEntry
}
