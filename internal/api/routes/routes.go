package routes

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Techwolf78/Movie-App-Backend/docs"
	"github.com/Techwolf78/Movie-App-Backend/internal/api/auth"
	"github.com/Techwolf78/Movie-App-Backend/internal/api/booking"
	"github.com/Techwolf78/Movie-App-Backend/internal/api/health"
	"github.com/Techwolf78/Movie-App-Backend/internal/api/payment"
	"github.com/Techwolf78/Movie-App-Backend/internal/api/user"
	"github.com/Techwolf78/Movie-App-Backend/internal/config"
	"github.com/Techwolf78/Movie-App-Backend/internal/db"
	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
	"github.com/Techwolf78/Movie-App-Backend/internal/mail"
)

func SetupRoutes(database *sql.DB, cfg *config.Config, log *logger.Logger) http.Handler {
	r := chi.NewRouter()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Origin", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300, // max time in seconds for OPTIONS preflight response cache
	})

	r.Use(corsMiddleware.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(2 * time.Minute))

	// init services & handlers
	store := user.NewMySQLStore(database)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost, cfg.Auth.HashWorkers)
	tokens := auth.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.NewService(store, hasher, tokens, log)
	authHandler := auth.NewHandler(authService, log)

	paymentHandler := payment.NewHandler(cfg.Stripe.SecretKey, log)
	bookingHandler := booking.NewHandler(mail.NewSMTPSender(cfg.Mail), log)

	r.Get("/health", health.HealthHandler)

	r.Route("/api/v1/auth", func(r chi.Router) {
		// public auth routes
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/forgot-password", authHandler.ForgotPassword)

		// protected auth routes: identity extraction always runs before any
		// role gate
		r.Group(func(r chi.Router) {
			r.Use(authHandler.RequireAuth)
			r.Put("/profile", authHandler.UpdateProfile)
			r.Get("/me", authHandler.Me)

			r.Group(func(r chi.Router) {
				r.Use(authHandler.RequireRole(db.RoleAdmin))
				r.Get("/admin", authHandler.Admin)
			})
		})
	})

	r.Post("/create-payment-intent", paymentHandler.CreatePaymentIntent)
	r.Post("/confirm-booking", bookingHandler.ConfirmBooking)

	// init swagger
	r.Get("/docs", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs/index.html", http.StatusMovedPermanently)
	})
	r.Get("/docs/*", httpSwagger.WrapHandler)

	return r
}
