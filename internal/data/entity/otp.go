package entity

import (
	"strings"
	"time"
)

type OTPFlow string

const (
	FlowRegister       OTPFlow = "REGISTER"
	FlowForgotPassword OTPFlow = "FORGOT_PASSWORD"
	FlowLogin          OTPFlow = "LOGIN"
)

// ParseOTPFlow maps a free-text flow string to a known flow.
// Empty input defaults to the login flow; anything else unknown is rejected.
func ParseOTPFlow(s string) (OTPFlow, bool) {
	switch OTPFlow(strings.ToUpper(strings.TrimSpace(s))) {
	case FlowRegister:
		return FlowRegister, true
	case FlowForgotPassword:
		return FlowForgotPassword, true
	case FlowLogin, "":
		return FlowLogin, true
	default:
		return "", false
	}
}

// OTP is a single-slot record: at most one live row per email.
// A new request for the same email replaces the previous row.
type OTP struct {
	Email           string    `db:"email"`
	OTPCode         string    `db:"otp_code"`
	Flow            OTPFlow   `db:"flow_type"`
	PendingUsername *string   `db:"pending_username"`
	PendingPassword *string   `db:"pending_password"`
	ExpiresAt       time.Time `db:"expires_at"`
	CreatedAt       time.Time `db:"created_at"`
}

func (o *OTP) Expired(now time.Time) bool {
	return !now.Before(o.ExpiresAt)
}
