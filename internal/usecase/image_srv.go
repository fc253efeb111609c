package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"meem-backend/internal/data/entity"
	"meem-backend/internal/data/repository"
	"meem-backend/internal/dto/request"
	"meem-backend/internal/dto/response"
	"meem-backend/pkg/cache"
	"meem-backend/pkg/storage"
	"meem-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultImageType   = "Self"
	defaultImageFolder = "uploads"
)

type ImageService interface {
	Upload(ctx context.Context, req *request.UploadImageRequest) (*response.ImageResponse, error)
	UploadBatch(ctx context.Context, reqs []*request.UploadImageRequest) ([]response.ImageResponse, error)
	GetPaginated(ctx context.Context, page *request.PageRequest) (*response.ImageListResponse, error)
	GetGroupedPaginated(ctx context.Context, page *request.PageRequest) (*response.GroupedImagesResponse, error)
}

type imageService struct {
	repo   *repository.Repository
	store  storage.ObjectUploader
	cache  *cache.Store
	config *utils.Config
	log    *zap.Logger
}

func NewImageService(
	repo *repository.Repository,
	store storage.ObjectUploader,
	pageCache *cache.Store,
	config *utils.Config,
	log *zap.Logger,
) ImageService {
	return &imageService{
		repo:   repo,
		store:  store,
		cache:  pageCache,
		config: config,
		log:    log.With(zap.String("service", "image")),
	}
}

// Upload stores one file and its metadata, then evicts the whole listing
// cache so the next read sees the new row.
func (s *imageService) Upload(ctx context.Context, req *request.UploadImageRequest) (*response.ImageResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Upload validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	resp, err := s.uploadSingle(ctx, req)
	if err != nil {
		return nil, err
	}

	s.cache.InvalidateAll()
	return resp, nil
}

// UploadBatch uploads files in order; the first failure aborts the batch.
// Files uploaded before the failure stay uploaded, there is no rollback.
func (s *imageService) UploadBatch(ctx context.Context, reqs []*request.UploadImageRequest) ([]response.ImageResponse, error) {
	results := make([]response.ImageResponse, 0, len(reqs))

	for i, req := range reqs {
		if errs := utils.ValidateStruct(req); len(errs) > 0 {
			s.log.Warn("Batch upload validation failed",
				zap.Int("index", i),
				zap.Any("errors", errs),
			)
			if len(results) > 0 {
				s.cache.InvalidateAll()
			}
			return results, fmt.Errorf("validation failed for file %d: %s", i, utils.FormatValidationErrors(errs))
		}

		resp, err := s.uploadSingle(ctx, req)
		if err != nil {
			s.log.Error("Batch upload aborted",
				zap.Error(err),
				zap.Int("index", i),
				zap.Int("uploaded", len(results)),
			)
			// Earlier files already have metadata persisted
			if len(results) > 0 {
				s.cache.InvalidateAll()
			}
			return results, err
		}
		results = append(results, *resp)
	}

	if len(results) > 0 {
		s.cache.InvalidateAll()
	}

	s.log.Info("Batch upload completed", zap.Int("count", len(results)))
	return results, nil
}

func (s *imageService) uploadSingle(ctx context.Context, req *request.UploadImageRequest) (*response.ImageResponse, error) {
	imageType := req.Type
	if strings.TrimSpace(imageType) == "" {
		imageType = defaultImageType
	}
	folder := req.Folder
	if folder == "" {
		folder = defaultImageFolder
	}

	sanitized := utils.SanitizeFileName(req.FileName)
	uniqueName := utils.GenerateUniqueFileName(sanitized)
	key := folder + "/" + uniqueName

	// Upload dulu; metadata hanya disimpan setelah upload sukses
	if err := s.store.Put(ctx, key, req.ContentType, req.Data); err != nil {
		s.log.Error("Failed to upload object",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("upload object: %w", err)
	}

	url := strings.TrimRight(s.config.Storage.CDNBaseURL, "/") + "/" + key

	image := &entity.Image{
		ID:          uuid.New(),
		FileName:    sanitized,
		ImageType:   imageType,
		ImageTag:    req.Tag,
		URL:         url,
		ContentType: req.ContentType,
		Size:        int64(len(req.Data)),
		UploadedAt:  time.Now(),
	}

	if err := s.repo.Image.Create(ctx, image); err != nil {
		s.log.Error("Failed to save image metadata",
			zap.Error(err),
			zap.String("key", key),
		)
		return nil, fmt.Errorf("save image metadata: %w", err)
	}

	s.log.Info("Image uploaded",
		zap.String("key", key),
		zap.String("image_type", imageType),
		zap.Int64("size", image.Size),
	)

	resp := response.ImageToResponse(image)
	resp.FileName = uniqueName // expose the stored name, collision-free
	return &resp, nil
}

// GetPaginated returns one page of images, newest first, memoized per
// (page, size) until the next upload.
func (s *imageService) GetPaginated(ctx context.Context, page *request.PageRequest) (*response.ImageListResponse, error) {
	if errs := utils.ValidateStruct(page); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cacheKey := fmt.Sprintf("list:%d-%d", page.Page, page.Size)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if resp, ok := cached.(*response.ImageListResponse); ok {
			return resp, nil
		}
	}

	images, err := s.repo.Image.FindPage(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get images",
			zap.Error(err),
			zap.Int("page", page.Page),
			zap.Int("size", page.Size),
		)
		return nil, fmt.Errorf("get images: %w", err)
	}

	total, err := s.repo.Image.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count images", zap.Error(err))
		return nil, fmt.Errorf("count images: %w", err)
	}

	imageResponses := make([]response.ImageResponse, len(images))
	for i, image := range images {
		imageResponses[i] = response.ImageToResponse(image)
	}

	resp := &response.ImageListResponse{
		Images:      imageResponses,
		CurrentPage: page.Page,
		TotalItems:  total,
		TotalPages:  utils.CalculateTotalPages(total, page.Limit()),
	}

	s.cache.Set(cacheKey, resp)
	return resp, nil
}

// GetGroupedPaginated groups the whole collection by normalized type and
// paginates over the groups: a page is a page of categories, not of images,
// and totalItems counts distinct groups.
func (s *imageService) GetGroupedPaginated(ctx context.Context, page *request.PageRequest) (*response.GroupedImagesResponse, error) {
	if errs := utils.ValidateStruct(page); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	cacheKey := fmt.Sprintf("grouped:%d-%d", page.Page, page.Size)
	if cached, ok := s.cache.Get(cacheKey); ok {
		if resp, ok := cached.(*response.GroupedImagesResponse); ok {
			return resp, nil
		}
	}

	groups, err := s.repo.Image.FindGroupedPage(ctx, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to get grouped images",
			zap.Error(err),
			zap.Int("page", page.Page),
			zap.Int("size", page.Size),
		)
		return nil, fmt.Errorf("get grouped images: %w", err)
	}

	totalGroups, err := s.repo.Image.CountGroups(ctx)
	if err != nil {
		s.log.Error("Failed to count image groups", zap.Error(err))
		return nil, fmt.Errorf("count image groups: %w", err)
	}

	data := make(map[string][]entity.ImageGroupEntry, len(groups))
	for _, group := range groups {
		data[group.Type] = group.Images
	}

	resp := &response.GroupedImagesResponse{
		Data:        data,
		CurrentPage: page.Page,
		TotalPages:  utils.CalculateTotalPages(totalGroups, page.Limit()),
		TotalItems:  totalGroups,
	}

	s.cache.Set(cacheKey, resp)
	return resp, nil
}
