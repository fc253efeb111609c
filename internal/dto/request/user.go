package request

// SaveProfileRequest carries the multipart profile form. The logo file rides
// along as an UploadImageRequest built by the handler.
type SaveProfileRequest struct {
	UserName     string `validate:"required,min=3,max=50"`
	MobileNumber string `validate:"omitempty,min=10,max=15"`
	Gender       string `validate:"omitempty,oneof=male female other"`
	Email        string `validate:"required,email"`
	Logo         *UploadImageRequest
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type WelcomeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
