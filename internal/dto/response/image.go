package response

import (
	"time"

	"meem-backend/internal/data/entity"
)

type ImageResponse struct {
	FileName    string    `json:"fileName"`
	ImageType   string    `json:"imageType"`
	ImageTag    string    `json:"imageTag"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// ImageListResponse pages over individual images, newest first.
type ImageListResponse struct {
	Images      []ImageResponse `json:"images"`
	CurrentPage int             `json:"currentPage"`
	TotalItems  int64           `json:"totalItems"`
	TotalPages  int             `json:"totalPages"`
}

// GroupedImagesResponse pages over groups: totalItems counts distinct groups,
// not underlying images.
type GroupedImagesResponse struct {
	Data        map[string][]entity.ImageGroupEntry `json:"data"`
	CurrentPage int                                 `json:"currentPage"`
	TotalPages  int                                 `json:"totalPages"`
	TotalItems  int64                               `json:"totalItems"`
}

func ImageToResponse(image *entity.Image) ImageResponse {
	return ImageResponse{
		FileName:    image.FileName,
		ImageType:   image.ImageType,
		ImageTag:    image.ImageTag,
		URL:         image.URL,
		ContentType: image.ContentType,
		Size:        image.Size,
		UploadedAt:  image.UploadedAt,
	}
}
