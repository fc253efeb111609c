package adaptor

import (
	"io"
	"mime/multipart"
	"net/http"

	"meem-backend/internal/dto/request"
	"meem-backend/internal/usecase"
	"meem-backend/pkg/utils"

	"go.uber.org/zap"
)

// 20 MB cap on multipart memory, matches nginx client_max_body_size upstream
const maxUploadMemory = 20 << 20

type ImageHandler struct {
	service usecase.ImageService
	log     *zap.Logger
}

func NewImageHandler(service usecase.ImageService, log *zap.Logger) *ImageHandler {
	return &ImageHandler{
		service: service,
		log:     log,
	}
}

// Upload handles POST /api/images/upload (multipart: file, tag, type, folder)
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.ResponseBadRequest(w, "File is required", nil)
		return
	}
	defer file.Close()

	req, err := buildUploadRequest(r, file, header)
	if err != nil {
		h.log.Error("Failed to read upload", zap.Error(err))
		utils.ResponseBadRequest(w, "Failed to read file", nil)
		return
	}

	response, err := h.service.Upload(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "upload image")
		return
	}

	utils.ResponseCreated(w, "Image uploaded successfully", response)
}

// UploadBatch handles POST /api/images/upload-batch (multipart: files[])
func (h *ImageHandler) UploadBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	if r.MultipartForm == nil || len(r.MultipartForm.File["files"]) == 0 {
		utils.ResponseBadRequest(w, "At least one file is required", nil)
		return
	}

	headers := r.MultipartForm.File["files"]
	reqs := make([]*request.UploadImageRequest, 0, len(headers))

	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			h.log.Error("Failed to open uploaded file", zap.Error(err), zap.String("filename", header.Filename))
			utils.ResponseBadRequest(w, "Failed to read file "+header.Filename, nil)
			return
		}

		req, err := buildUploadRequest(r, file, header)
		file.Close()
		if err != nil {
			h.log.Error("Failed to read uploaded file", zap.Error(err), zap.String("filename", header.Filename))
			utils.ResponseBadRequest(w, "Failed to read file "+header.Filename, nil)
			return
		}
		reqs = append(reqs, req)
	}

	responses, err := h.service.UploadBatch(r.Context(), reqs)
	if err != nil {
		handleServiceError(w, h.log, err, "upload image batch")
		return
	}

	utils.ResponseCreated(w, "Images uploaded successfully", responses)
}

// List handles GET /api/images/list?page=0&size=10
func (h *ImageHandler) List(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)

	response, err := h.service.GetPaginated(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list images")
		return
	}

	utils.ResponseSuccess(w, "Images retrieved successfully", response)
}

// Grouped handles GET /api/images/grouped-images?page=0&size=10
func (h *ImageHandler) Grouped(w http.ResponseWriter, r *http.Request) {
	page := pageFromQuery(r)

	response, err := h.service.GetGroupedPaginated(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list grouped images")
		return
	}

	utils.ResponseSuccess(w, "Images retrieved successfully", response)
}

func pageFromQuery(r *http.Request) *request.PageRequest {
	return &request.PageRequest{
		Page: utils.ParseIntDefault(r.URL.Query().Get("page"), 0),
		Size: utils.ParseIntDefault(r.URL.Query().Get("size"), 10),
	}
}

func buildUploadRequest(r *http.Request, file multipart.File, header *multipart.FileHeader) (*request.UploadImageRequest, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &request.UploadImageRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
		Tag:         r.FormValue("tag"),
		Type:        r.FormValue("type"),
		Folder:      r.FormValue("folder"),
	}, nil
}
