package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/kingresort/booking-api/internal/domain"
	"github.com/kingresort/booking-api/internal/http/handlers"
	"github.com/kingresort/booking-api/internal/mailer"
	"github.com/kingresort/booking-api/internal/notify"
	"github.com/kingresort/booking-api/internal/repository"
	"github.com/kingresort/booking-api/internal/service"
	"github.com/kingresort/booking-api/pkg/config"
	"github.com/kingresort/booking-api/pkg/database"
	"github.com/kingresort/booking-api/pkg/events"
	"github.com/kingresort/booking-api/pkg/logger"
	mw "github.com/kingresort/booking-api/pkg/middleware"
)

func main() {
	cfg := config.Load()

	// Connect to database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := repository.EnsureSchema(ctx, pool); err != nil {
		logger.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	// Connect to event bus
	eventBus, err := events.NewNATSEventBus(cfg.NATS.URL)
	if err != nil {
		logger.Error("Failed to connect to NATS", "error", err)
		os.Exit(1)
	}
	defer eventBus.Close()

	// Idempotency cache for booking submissions
	idemStore, err := repository.NewRedisIdempotencyStore(cfg.Redis.URL, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}
	defer idemStore.Close()

	// Initialize repositories and services
	bookingRepo := repository.NewBookingRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	inventory := domain.NewInventory(cfg.Rooms.Limits)

	bookingService := service.NewBookingService(bookingRepo, inventory, eventBus)
	contactService := service.NewContactService(contactRepo, eventBus)

	// Email goes out through the notify consumer, decoupled from requests.
	consumer := notify.NewConsumer(eventBus, selectMailer(cfg))
	if err := consumer.Start(); err != nil {
		logger.Error("Failed to start notify consumer", "error", err)
		os.Exit(1)
	}

	h := handlers.New(bookingService, contactService, cfg.Admin)

	// Setup router
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("booking-api"))
	r.Use(mw.Logging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.With(mw.Idempotency(idemStore)).Post("/book", h.Book)
		r.Post("/check-availability", h.CheckAvailability)
		r.Post("/contact", h.Contact)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", h.AdminLogin)
		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)
			r.Get("/", func(w http.ResponseWriter, req *http.Request) {
				http.Redirect(w, req, "/admin/bookings", http.StatusTemporaryRedirect)
			})
			r.Get("/bookings", h.ListBookings)
			r.Get("/contacts", h.ListContacts)
			r.Patch("/bookings/{id}", h.UpdateBooking)
			r.Delete("/bookings/{id}", h.DeleteBooking)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down booking API...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting booking API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

func selectMailer(cfg *config.Config) mailer.Service {
	if cfg.Email.DevMode {
		return mailer.NewDevMailer()
	}
	if cfg.Email.MailerSendKey != "" {
		return mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom, cfg.Email.HotelInbox)
	}
	return mailer.NewSMTPMailer(
		cfg.Email.SMTPHost, cfg.Email.SMTPPort,
		cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass,
		cfg.Email.SMTPUseTLS, cfg.Email.HotelInbox,
	)
}
