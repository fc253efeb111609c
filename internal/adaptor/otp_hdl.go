package adaptor

import (
	"encoding/json"
	"net/http"

	"meem-backend/internal/dto/request"
	"meem-backend/internal/usecase"
	"meem-backend/pkg/utils"

	"go.uber.org/zap"
)

type OTPHandler struct {
	service usecase.OTPService
	log     *zap.Logger
}

func NewOTPHandler(service usecase.OTPService, log *zap.Logger) *OTPHandler {
	return &OTPHandler{
		service: service,
		log:     log,
	}
}

// Generate handles POST /api/otp/generate
func (h *OTPHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.GenerateOTPRequest

	// Decode request body
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.RequestOTP(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "generate OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP generated successfully", response)
}

// Verify handles POST /api/otp/verify
func (h *OTPHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.VerifyOTP(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "verify OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP verified successfully", response)
}
