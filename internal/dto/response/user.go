package response

import (
	"meem-backend/internal/data/entity"
)

type UserResponse struct {
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	MobileNumber *string `json:"mobileNumber,omitempty"`
	Gender       *string `json:"gender,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	LogoFileName *string `json:"logoFileName,omitempty"`
}

func UserToResponse(user *entity.User) *UserResponse {
	return &UserResponse{
		Username:     user.Username,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		Gender:       user.Gender,
		LogoURL:      user.LogoURL,
		LogoFileName: user.LogoFileName,
	}
}
