package adaptor

import (
	"encoding/json"
	"io"
	"net/http"

	"meem-backend/internal/dto/request"
	"meem-backend/internal/usecase"
	"meem-backend/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Save handles POST /api/user/save (multipart: logo, userName, mobileNumber, gender, email)
func (h *UserHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := &request.SaveProfileRequest{
		UserName:     r.FormValue("userName"),
		MobileNumber: r.FormValue("mobileNumber"),
		Gender:       r.FormValue("gender"),
		Email:        r.FormValue("email"),
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		utils.ResponseBadRequest(w, "Logo is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.log.Error("Failed to read logo", zap.Error(err))
		utils.ResponseBadRequest(w, "Failed to read logo", nil)
		return
	}

	req.Logo = &request.UploadImageRequest{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	response, err := h.service.SaveProfile(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "save profile")
		return
	}

	utils.ResponseSuccess(w, "Profile saved successfully", response)
}

// GetByEmail handles GET /api/user/by-email?email=...
func (h *UserHandler) GetByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		utils.ResponseBadRequest(w, "Email is required", nil)
		return
	}

	response, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", response)
}

// Login handles POST /api/user/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	response, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", response)
}

// SendWelcomeEmail handles POST /api/user/send-welcome-email
func (h *UserHandler) SendWelcomeEmail(w http.ResponseWriter, r *http.Request) {
	var req request.WelcomeEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SendWelcomeEmail(r.Context(), req.Email); err != nil {
		handleServiceError(w, h.log, err, "send welcome email")
		return
	}

	utils.ResponseSuccess(w, "Welcome email sent successfully", nil)
}
