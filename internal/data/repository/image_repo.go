package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"meem-backend/internal/data/entity"
	"meem-backend/pkg/database"

	"go.uber.org/zap"
)

type ImageRepository interface {
	Create(ctx context.Context, image *entity.Image) error
	FindPage(ctx context.Context, limit, offset int) ([]*entity.Image, error)
	CountAll(ctx context.Context) (int64, error)
	FindGroupedPage(ctx context.Context, limit, offset int) ([]*entity.ImageGroup, error)
	CountGroups(ctx context.Context) (int64, error)
}

type imageRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewImageRepository(db database.PgxIface, log *zap.Logger) ImageRepository {
	return &imageRepository{
		db:  db,
		log: log.With(zap.String("repository", "image")),
	}
}

func (r *imageRepository) Create(ctx context.Context, image *entity.Image) error {
	query := `
		INSERT INTO images (id, file_name, image_type, image_tag, url,
		                    content_type, size, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		image.ID,
		image.FileName,
		image.ImageType,
		image.ImageTag,
		image.URL,
		image.ContentType,
		image.Size,
		image.UploadedAt,
	)

	if err != nil {
		r.log.Error("Failed to create image metadata",
			zap.Error(err),
			zap.String("file_name", image.FileName),
		)
		return fmt.Errorf("create image metadata %s: %w", image.FileName, err)
	}

	return nil
}

// FindPage retrieves one page of image metadata, newest first.
func (r *imageRepository) FindPage(ctx context.Context, limit, offset int) ([]*entity.Image, error) {
	query := `
		SELECT id, file_name, image_type, image_tag, url,
		       content_type, size, uploaded_at
		FROM images
		ORDER BY uploaded_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get images",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find images limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var images []*entity.Image
	for rows.Next() {
		var image entity.Image
		err := rows.Scan(
			&image.ID,
			&image.FileName,
			&image.ImageType,
			&image.ImageTag,
			&image.URL,
			&image.ContentType,
			&image.Size,
			&image.UploadedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan image row", zap.Error(err))
			return nil, fmt.Errorf("scan image row: %w", err)
		}
		images = append(images, &image)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate image rows: %w", err)
	}

	return images, nil
}

func (r *imageRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM images`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count images", zap.Error(err))
		return 0, fmt.Errorf("count images: %w", err)
	}

	return count, nil
}

// FindGroupedPage groups the whole collection by normalized type and paginates
// over the groups themselves. Blank types collapse into the default group, so
// skip/limit apply to groups, not to the underlying images.
func (r *imageRepository) FindGroupedPage(ctx context.Context, limit, offset int) ([]*entity.ImageGroup, error) {
	query := `
		SELECT COALESCE(NULLIF(TRIM(image_type), ''), 'Others') AS group_type,
		       json_agg(json_build_object('tag', image_tag, 'url', url)
		                ORDER BY uploaded_at DESC) AS images
		FROM images
		GROUP BY group_type
		ORDER BY group_type ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to get grouped images",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find grouped images limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var groups []*entity.ImageGroup
	for rows.Next() {
		var (
			group  entity.ImageGroup
			rawAgg []byte
		)
		if err := rows.Scan(&group.Type, &rawAgg); err != nil {
			r.log.Error("Failed to scan image group row", zap.Error(err))
			return nil, fmt.Errorf("scan image group row: %w", err)
		}
		if err := json.Unmarshal(rawAgg, &group.Images); err != nil {
			r.log.Error("Failed to decode aggregated images",
				zap.Error(err),
				zap.String("group_type", group.Type),
			)
			return nil, fmt.Errorf("decode aggregated images for group %s: %w", group.Type, err)
		}
		groups = append(groups, &group)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate image group rows: %w", err)
	}

	return groups, nil
}

// CountGroups counts distinct normalized types across the whole collection.
func (r *imageRepository) CountGroups(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(DISTINCT COALESCE(NULLIF(TRIM(image_type), ''), 'Others'))
		FROM images
	`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count image groups", zap.Error(err))
		return 0, fmt.Errorf("count image groups: %w", err)
	}

	return count, nil
}
