package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"meem-backend/internal/usecase"
	"meem-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	OTP   *OTPHandler
	Image *ImageHandler
	User  *UserHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		OTP:   NewOTPHandler(service.OTP, log),
		Image: NewImageHandler(service.Image, log),
		User:  NewUserHandler(service.User, log),
	}
}

// handleServiceError maps domain errors to HTTP responses
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrOTPNotFound),
		errors.Is(err, usecase.ErrUserNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrOTPInvalid),
		errors.Is(err, usecase.ErrOTPExpired),
		errors.Is(err, usecase.ErrInvalidFlow):
		log.Warn(operation+" failed - OTP rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrEmailTaken):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrMailDelivery):
		log.Warn(operation+" failed - delivery", zap.Error(err))
		utils.ResponseBadGateway(w, err.Error())

	case strings.Contains(err.Error(), "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
