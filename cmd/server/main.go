package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/hromada/hromada-api/internal/auth"
	"github.com/hromada/hromada-api/internal/config"
	"github.com/hromada/hromada-api/internal/handler"
	"github.com/hromada/hromada-api/internal/mailer"
	"github.com/hromada/hromada-api/internal/server"
	"github.com/hromada/hromada-api/internal/service"
	"github.com/hromada/hromada-api/internal/storage"
	"github.com/hromada/hromada-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.New(cfg.Logging.Level)
	defer log.Sync()

	ctx := context.Background()
	log.Info(ctx, "Starting application")

	repo, err := storage.Open(cfg.Database.DSN)
	if err != nil {
		log.Fatal(ctx, "Failed to open database",
			"error", err,
		)
	}
	log.Info(ctx, "Repository initialized",
		"dsn", cfg.Database.DSN,
	)

	var mail mailer.Mailer
	if cfg.Mail.Enabled() {
		mail = mailer.NewSMTP(cfg.Mail, log)
		log.Info(ctx, "SMTP mailer initialized",
			"host", cfg.Mail.SMTPHost,
		)
	} else {
		mail = mailer.NewNop()
		log.Info(ctx, "Mail disabled, notifications will be skipped")
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)

	submissionService := service.NewSubmissionService(repo, mail, log)
	reviewService := service.NewReviewService(repo, mail, log)
	projectService := service.NewProjectService(repo, log)
	donationService := service.NewDonationService(repo, mail, log)
	wireTransferService := service.NewWireTransferService(repo, log)
	contactService := service.NewContactService(repo, mail, log)
	userService := service.NewUserService(repo, log)
	newsletterService := service.NewNewsletterService(repo, log)
	log.Info(ctx, "Services initialized")

	handlers := server.Handlers{
		Health:       handler.NewHealthHandler(),
		Auth:         handler.NewAuthHandler(userService, tokens, cfg.Auth.CookieName, log),
		Submission:   handler.NewSubmissionHandler(submissionService, reviewService, log),
		Partner:      handler.NewPartnerHandler(submissionService, log),
		Project:      handler.NewProjectHandler(projectService, log),
		Donation:     handler.NewDonationHandler(donationService, log),
		WireTransfer: handler.NewWireTransferHandler(wireTransferService, log),
		Contact:      handler.NewContactHandler(contactService, log),
		User:         handler.NewUserHandler(userService, log),
		Newsletter:   handler.NewNewsletterHandler(newsletterService, log),
	}
	log.Info(ctx, "Handlers initialized")

	srv := server.New(cfg, log, tokens, handlers)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatal(ctx, "Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	log.Info(ctx, "Application started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info(ctx, "Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(shutdownCtx, "HTTP server shutdown error",
			"error", err,
		)
	}

	log.Info(ctx, "Application stopped gracefully")
}
