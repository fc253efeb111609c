package repository

import (
	"meem-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	OTP   OTPRepository
	Image ImageRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		OTP:   NewOTPRepository(db, log),
		Image: NewImageRepository(db, log),
	}
}
