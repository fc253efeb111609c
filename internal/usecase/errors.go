package usecase

import (
	"errors"
)

// Sentinel domain errors. Handlers map these to HTTP statuses with errors.Is;
// services wrap them with context where useful.
var (
	ErrOTPNotFound        = errors.New("no pending OTP for this email")
	ErrOTPInvalid         = errors.New("incorrect OTP code")
	ErrOTPExpired         = errors.New("OTP has expired")
	ErrInvalidFlow        = errors.New("unrecognized OTP flow type")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMailDelivery       = errors.New("email delivery failed")
)
