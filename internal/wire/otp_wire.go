package wire

import (
	"meem-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireOTP(r chi.Router, otpHandler *adaptor.OTPHandler) {
	// Passwordless flows, semua public
	r.Post("/api/otp/generate", otpHandler.Generate)
	r.Post("/api/otp/verify", otpHandler.Verify)
}
