package usecase

import (
	"context"
	"fmt"
	"time"

	"meem-backend/internal/data/entity"
	"meem-backend/internal/data/repository"
	"meem-backend/internal/dto/request"
	"meem-backend/internal/dto/response"
	"meem-backend/pkg/mailer"
	"meem-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OTPService interface {
	RequestOTP(ctx context.Context, req *request.GenerateOTPRequest) (*response.GenerateOTPResponse, error)
	VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error)
}

type otpService struct {
	repo   *repository.Repository // grouping userRepo & otpRepo
	mail   mailer.Mailer
	config *utils.Config
	log    *zap.Logger
}

func NewOTPService(
	repo *repository.Repository,
	mail mailer.Mailer,
	config *utils.Config,
	log *zap.Logger,
) OTPService {
	return &otpService{
		repo:   repo,
		mail:   mail,
		config: config,
		log:    log.With(zap.String("service", "otp")),
	}
}

// RequestOTP issues a fresh code for the email. Every request supersedes the
// prior pending code and resets the expiry window; there is no idempotent
// resend of an unexpired code.
func (s *otpService) RequestOTP(ctx context.Context, req *request.GenerateOTPRequest) (*response.GenerateOTPResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("OTP request validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	flow, ok := entity.ParseOTPFlow(req.FlowType)
	if !ok {
		s.log.Warn("Unknown OTP flow requested",
			zap.String("email", req.Email),
			zap.String("flow_type", req.FlowType),
		)
		return nil, ErrInvalidFlow
	}

	// 2. Untuk login flow, buat identity kosong jika belum ada.
	// Register dan forgot-password tidak membuat identity di sini: register
	// harus bisa gagal Conflict saat verifikasi.
	if flow == entity.FlowLogin {
		if err := s.ensureIdentity(ctx, req.Email); err != nil {
			return nil, err
		}
	}

	// 3. Generate fresh code
	code, err := utils.GenerateOTP()
	if err != nil {
		s.log.Error("Failed to generate OTP code", zap.Error(err))
		return nil, fmt.Errorf("generate OTP: %w", err)
	}

	// 4. Hash pending password at request time; verification reuses this hash
	// verbatim and never sees the plaintext again.
	var pendingUsername, pendingPassword *string
	if req.FullName != "" {
		pendingUsername = &req.FullName
	}
	if req.Password != "" {
		hashed, err := utils.HashPassword(req.Password)
		if err != nil {
			s.log.Error("Failed to hash pending password", zap.Error(err))
			return nil, fmt.Errorf("process password: %w", err)
		}
		pendingPassword = &hashed
	}

	// 5. Replace the single OTP slot for this email
	now := time.Now()
	otp := &entity.OTP{
		Email:           req.Email,
		OTPCode:         code,
		Flow:            flow,
		PendingUsername: pendingUsername,
		PendingPassword: pendingPassword,
		ExpiresAt:       now.Add(s.expiryWindow()),
		CreatedAt:       now,
	}

	if err := s.repo.OTP.Upsert(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("save OTP: %w", err)
	}

	s.log.Info("OTP generated",
		zap.String("email", req.Email),
		zap.String("flow_type", string(flow)),
		zap.Time("expires_at", otp.ExpiresAt),
	)

	// 6. Kirim email. Delivery failure is a soft fail: the record stays
	// persisted and valid, caller may retry verification or request again.
	subject, body := otpEmailCopy(flow, code, s.expiryWindow())
	if err := s.mail.Send(req.Email, subject, body); err != nil {
		s.log.Warn("Failed to deliver OTP email",
			zap.Error(err),
			zap.String("email", req.Email),
		)
		return nil, fmt.Errorf("%w: %s", ErrMailDelivery, req.Email)
	}

	return &response.GenerateOTPResponse{
		Email:    req.Email,
		FlowType: string(flow),
		Message:  "OTP sent successfully",
	}, nil
}

// VerifyOTP checks the submitted code against the pending record and, if it
// holds, runs the commit for the flow captured at request time.
func (s *otpService) VerifyOTP(ctx context.Context, req *request.VerifyOTPRequest) (*response.VerifyOTPResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("OTP verify validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if _, ok := entity.ParseOTPFlow(req.FlowType); !ok {
		return nil, ErrInvalidFlow
	}

	// 2. Pending record harus ada
	otp, err := s.repo.OTP.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to fetch OTP", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("fetch OTP: %w", err)
	}
	if otp == nil {
		return nil, ErrOTPNotFound
	}

	// 3. Exact string compare dulu, baru expiry
	if req.OTP != otp.OTPCode {
		s.log.Warn("OTP code mismatch", zap.String("email", req.Email))
		return nil, ErrOTPInvalid
	}
	if otp.Expired(time.Now()) {
		s.log.Warn("Expired OTP submitted",
			zap.String("email", req.Email),
			zap.Time("expires_at", otp.ExpiresAt),
		)
		return nil, ErrOTPExpired
	}

	// 4. Flow commit mengikuti record yang tersimpan; record memegang
	// pending credentials, bukan request.
	switch otp.Flow {
	case entity.FlowRegister:
		if err := s.commitRegister(ctx, otp); err != nil {
			return nil, err
		}
	case entity.FlowForgotPassword:
		if err := s.commitPasswordReset(ctx, otp); err != nil {
			return nil, err
		}
	case entity.FlowLogin:
		// Proof of email control only; no identity mutation.
	default:
		return nil, ErrInvalidFlow
	}

	// 5. Consume: sukses verifikasi menghapus record
	if err := s.repo.OTP.DeleteByEmail(ctx, req.Email); err != nil {
		s.log.Warn("Failed to consume OTP", zap.Error(err), zap.String("email", req.Email))
		// Continue anyway
	}

	s.log.Info("OTP verified",
		zap.String("email", req.Email),
		zap.String("flow_type", string(otp.Flow)),
	)

	return &response.VerifyOTPResponse{
		Token:   utils.GenerateToken(),
		Message: "OTP verified successfully",
	}, nil
}

// ==================== HELPER METHODS ====================

func (s *otpService) expiryWindow() time.Duration {
	minutes := s.config.OTP.ExpiryMinutes
	if minutes <= 0 {
		minutes = 3
	}
	return time.Duration(minutes) * time.Minute
}

// ensureIdentity looks up the identity and creates a bare one if absent.
// Explicit two-step: lookup; if absent, construct-and-persist.
func (s *otpService) ensureIdentity(ctx context.Context, email string) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check identity", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("check identity: %w", err)
	}
	if user != nil {
		return nil
	}

	now := time.Now()
	user = &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email: email,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create implicit identity", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("create identity: %w", err)
	}

	s.log.Info("Implicit identity created for OTP login", zap.String("email", email))
	return nil
}

func (s *otpService) commitRegister(ctx context.Context, otp *entity.OTP) error {
	existing, err := s.repo.User.FindByEmail(ctx, otp.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", otp.Email))
		return fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}

	username := ""
	if otp.PendingUsername != nil {
		username = *otp.PendingUsername
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:     username,
		Email:        otp.Email,
		PasswordHash: otp.PendingPassword,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", otp.Email))
		return fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User registered via OTP",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)
	return nil
}

func (s *otpService) commitPasswordReset(ctx context.Context, otp *entity.OTP) error {
	user, err := s.repo.User.FindByEmail(ctx, otp.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", otp.Email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.PasswordHash = otp.PendingPassword
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to reset password", zap.Error(err), zap.String("email", otp.Email))
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info("Password reset via OTP", zap.String("email", otp.Email))
	return nil
}

// otpEmailCopy selects the subject and body for the flow.
func otpEmailCopy(flow entity.OTPFlow, code string, ttl time.Duration) (string, string) {
	minutes := int(ttl.Minutes())

	switch flow {
	case entity.FlowRegister:
		return "Meem - Confirm your registration",
			fmt.Sprintf("Use this code to finish creating your account: %s\nIt expires in %d minutes.\n\nThanks,\nMeem", code, minutes)
	case entity.FlowForgotPassword:
		return "Meem - Reset your password",
			fmt.Sprintf("Use this code to reset your password: %s\nIt expires in %d minutes.\nIf you did not request this, you can ignore this email.\n\nThanks,\nMeem", code, minutes)
	default:
		return "Meem - Your login code",
			fmt.Sprintf("Use this code to sign in: %s\nIt expires in %d minutes.\n\nThanks,\nMeem", code, minutes)
	}
}
