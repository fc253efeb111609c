package wire

import (
	"meem-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireImage(r chi.Router, imageHandler *adaptor.ImageHandler) {
	r.Post("/api/images/upload", imageHandler.Upload)
	r.Post("/api/images/upload-batch", imageHandler.UploadBatch)
	r.Get("/api/images/list", imageHandler.List)
	r.Get("/api/images/grouped-images", imageHandler.Grouped)
}
