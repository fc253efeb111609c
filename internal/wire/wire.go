// internal/wire/wire.go
package wire

import (
	"meem-backend/internal/adaptor"
	"meem-backend/internal/data/repository"
	"meem-backend/internal/usecase"
	"meem-backend/pkg/cache"
	"meem-backend/pkg/mailer"
	"meem-backend/pkg/middleware"
	"meem-backend/pkg/storage"
	"meem-backend/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(
	repo *repository.Repository,
	store storage.ObjectUploader,
	mail mailer.Mailer,
	pageCache *cache.Store,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	// Initialize services dan handlers
	service := usecase.NewService(repo, store, mail, pageCache, config, logger)
	handler := adaptor.NewHandler(service, logger)

	// Setup router
	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireOTP(r, handler.OTP)
	wireImage(r, handler.Image)
	wireUser(r, handler.User)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
