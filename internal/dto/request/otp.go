package request

type GenerateOTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
	FullName string `json:"fullName,omitempty" validate:"omitempty,max=100"`
	FlowType string `json:"flowType,omitempty"`
}

type VerifyOTPRequest struct {
	Email    string `json:"email" validate:"required,email"`
	OTP      string `json:"otp" validate:"required,len=6,numeric"`
	FlowType string `json:"flowType,omitempty"`
}
