package repository

import (
	"context"
	"fmt"

	"meem-backend/internal/data/entity"
	"meem-backend/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OTPRepository interface {
	Upsert(ctx context.Context, otp *entity.OTP) error
	FindByEmail(ctx context.Context, email string) (*entity.OTP, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type otpRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOTPRepository(db database.PgxIface, log *zap.Logger) OTPRepository {
	return &otpRepository{
		db:  db,
		log: log.With(zap.String("repository", "otp")),
	}
}

// Upsert writes the single OTP slot for an email. The primary key on email
// makes the replace atomic; concurrent requests are last-writer-wins.
func (r *otpRepository) Upsert(ctx context.Context, otp *entity.OTP) error {
	query := `
		INSERT INTO otps (email, otp_code, flow_type, pending_username,
		                  pending_password, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (email) DO UPDATE
		SET otp_code         = EXCLUDED.otp_code,
		    flow_type        = EXCLUDED.flow_type,
		    pending_username = EXCLUDED.pending_username,
		    pending_password = EXCLUDED.pending_password,
		    expires_at       = EXCLUDED.expires_at,
		    created_at       = EXCLUDED.created_at
	`

	_, err := r.db.Exec(ctx, query,
		otp.Email,
		otp.OTPCode,
		otp.Flow,
		otp.PendingUsername,
		otp.PendingPassword,
		otp.ExpiresAt,
		otp.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert OTP",
			zap.Error(err),
			zap.String("email", otp.Email),
			zap.String("flow_type", string(otp.Flow)),
		)
		return fmt.Errorf("upsert OTP for %s: %w", otp.Email, err)
	}

	return nil
}

func (r *otpRepository) FindByEmail(ctx context.Context, email string) (*entity.OTP, error) {
	query := `
		SELECT email, otp_code, flow_type, pending_username,
		       pending_password, expires_at, created_at
		FROM otps
		WHERE email = $1
	`

	var otp entity.OTP
	err := r.db.QueryRow(ctx, query, email).Scan(
		&otp.Email,
		&otp.OTPCode,
		&otp.Flow,
		&otp.PendingUsername,
		&otp.PendingPassword,
		&otp.ExpiresAt,
		&otp.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find OTP for %s: %w", email, err)
	}

	return &otp, nil
}

func (r *otpRepository) DeleteByEmail(ctx context.Context, email string) error {
	query := `DELETE FROM otps WHERE email = $1`

	result, err := r.db.Exec(ctx, query, email)
	if err != nil {
		r.log.Error("Failed to delete OTP",
			zap.Error(err),
			zap.String("email", email),
		)
		return fmt.Errorf("delete OTP for %s: %w", email, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("no OTP found for %s", email)
	}

	return nil
}
