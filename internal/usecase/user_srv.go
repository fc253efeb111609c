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
	"meem-backend/pkg/mailer"
	"meem-backend/pkg/storage"
	"meem-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const logoFolder = "logo"

type UserService interface {
	SaveProfile(ctx context.Context, req *request.SaveProfileRequest) (*response.UserResponse, error)
	GetByEmail(ctx context.Context, email string) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error)
	SendWelcomeEmail(ctx context.Context, email string) error
}

type userService struct {
	repo   *repository.Repository
	store  storage.ObjectUploader
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	store storage.ObjectUploader,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) UserService {
	return &userService{
		repo:   repo,
		store:  store,
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "user")),
	}
}

// SaveProfile uploads the logo and upserts the profile by email.
// Logo uploads go straight to object storage; they are not catalog images.
func (s *userService) SaveProfile(ctx context.Context, req *request.SaveProfileRequest) (*response.UserResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Save profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}
	if req.Logo == nil || len(req.Logo.Data) == 0 {
		return nil, fmt.Errorf("validation failed: Logo: This field is required")
	}

	// 2. Upload logo
	sanitized := utils.SanitizeFileName(req.Logo.FileName)
	uniqueName := utils.GenerateUniqueFileName(sanitized)
	key := logoFolder + "/" + uniqueName

	if err := s.store.Put(ctx, key, req.Logo.ContentType, req.Logo.Data); err != nil {
		s.log.Error("Failed to upload logo", zap.Error(err), zap.String("key", key))
		return nil, fmt.Errorf("upload logo: %w", err)
	}

	url := strings.TrimRight(s.config.Storage.CDNBaseURL, "/") + "/" + key

	// 3. Lookup dulu; update jika ada, create jika belum
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}

	now := time.Now()

	if user != nil {
		user.Username = req.UserName
		user.LogoURL = &url
		user.LogoFileName = &sanitized
		if req.MobileNumber != "" {
			user.MobileNumber = &req.MobileNumber
		}
		if req.Gender != "" {
			user.Gender = &req.Gender
		}
		user.UpdatedAt = now

		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Error("Failed to update profile", zap.Error(err), zap.String("email", req.Email))
			return nil, fmt.Errorf("update profile: %w", err)
		}

		s.log.Info("Profile updated", zap.String("email", req.Email))
		return response.UserToResponse(user), nil
	}

	user = &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     req.UserName,
		Email:        req.Email,
		LogoURL:      &url,
		LogoFileName: &sanitized,
	}
	if req.MobileNumber != "" {
		user.MobileNumber = &req.MobileNumber
	}
	if req.Gender != "" {
		user.Gender = &req.Gender
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create profile", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.log.Info("Profile created", zap.String("email", req.Email))
	return response.UserToResponse(user), nil
}

func (s *userService) GetByEmail(ctx context.Context, email string) (*response.UserResponse, error) {
	if email == "" {
		return nil, fmt.Errorf("validation failed: Email: This field is required")
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return response.UserToResponse(user), nil
}

// Login compares against the stored hash. Unknown email and wrong password
// return the same error so the response leaks nothing.
func (s *userService) Login(ctx context.Context, req *request.LoginRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil || !user.HasPassword() {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, *user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User logged in", zap.String("email", req.Email))
	return response.UserToResponse(user), nil
}

func (s *userService) SendWelcomeEmail(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("validation failed: Email: This field is required")
	}

	if err := s.mail.Send(email, "Welcome to Meem!", "Thanks for registering with Meem."); err != nil {
		s.log.Warn("Failed to send welcome email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("%w: %s", ErrMailDelivery, email)
	}

	s.log.Info("Welcome email sent", zap.String("email", email))
	return nil
}
