package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// OTPLength is the fixed width of generated OTP codes.
const OTPLength = 6

var otpMax = big.NewInt(1000000)

// GenerateOTP creates a 6-digit numeric OTP, uniform over [0, 999999],
// zero-padded to width 6.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpMax)
	if err != nil {
		return "", fmt.Errorf("generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// GenerateUniqueFileName prefixes a sanitized file name with a fresh UUID
// to avoid key collisions in object storage.
func GenerateUniqueFileName(sanitizedName string) string {
	return uuid.NewString() + "-" + sanitizedName
}

// GenerateToken returns an opaque token marker. Real token signing is not
// wired in; verification hands out this placeholder.
func GenerateToken() string {
	return uuid.NewString()
}
