package usecase

import (
	"meem-backend/internal/data/repository"
	"meem-backend/pkg/cache"
	"meem-backend/pkg/mailer"
	"meem-backend/pkg/storage"
	"meem-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	OTP   OTPService
	Image ImageService
	User  UserService
}

func NewService(
	repo *repository.Repository,
	store storage.ObjectUploader,
	mail mailer.Mailer,
	pageCache *cache.Store,
	config *utils.Config,
	log *zap.Logger,
) *Service {
	return &Service{
		OTP:   NewOTPService(repo, mail, config, log),
		Image: NewImageService(repo, store, pageCache, config, log),
		User:  NewUserService(repo, store, mail, config, log),
	}
}
