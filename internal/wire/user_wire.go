package wire

import (
	"meem-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, userHandler *adaptor.UserHandler) {
	r.Post("/api/user/save", userHandler.Save)
	r.Get("/api/user/by-email", userHandler.GetByEmail)
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/send-welcome-email", userHandler.SendWelcomeEmail)
}
