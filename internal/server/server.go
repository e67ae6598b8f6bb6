package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/hromada/hromada-api/internal/auth"
	"github.com/hromada/hromada-api/internal/config"
	"github.com/hromada/hromada-api/internal/domain"
	"github.com/hromada/hromada-api/internal/handler"
	"github.com/hromada/hromada-api/internal/middleware"
	"github.com/hromada/hromada-api/pkg/logger"
)

type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Submission   *handler.SubmissionHandler
	Partner      *handler.PartnerHandler
	Project      *handler.ProjectHandler
	Donation     *handler.DonationHandler
	WireTransfer *handler.WireTransferHandler
	Contact      *handler.ContactHandler
	User         *handler.UserHandler
	Newsletter   *handler.NewsletterHandler
}

type Server struct {
	echo     *echo.Echo
	cfg      *config.Config
	logger   *logger.Logger
	tokens   *auth.TokenManager
	handlers Handlers
}

func New(cfg *config.Config, log *logger.Logger, tokens *auth.TokenManager, handlers Handlers) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	return &Server{
		echo:     e,
		cfg:      cfg,
		logger:   log,
		tokens:   tokens,
		handlers: handlers,
	}
}

func (s *Server) Start() error {
	s.setupMiddleware()
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%s", s.cfg.Server.Host, s.cfg.Server.Port)
	s.logger.Info(context.Background(), "Starting HTTP server",
		"address", addr,
	)

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupMiddleware() {
	s.echo.Use(echoMiddleware.Recover())
	s.echo.Use(echoMiddleware.CORS())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Logging(s.logger))
	s.echo.Use(middleware.Session(s.tokens, s.cfg.Auth.CookieName))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.handlers.Health.Check)

	api := s.echo.Group("/api")

	api.POST("/auth/login", s.handlers.Auth.Login)
	api.POST("/auth/logout", s.handlers.Auth.Logout)
	api.GET("/auth/status", s.handlers.Auth.Status)

	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	partnerOrAdmin := middleware.RequireRole(domain.RolePartner, domain.RoleAdmin)
	managerOrAdmin := middleware.RequireRole(domain.RoleNonprofitManager, domain.RoleAdmin)
	donorOrAdmin := middleware.RequireRole(domain.RoleDonor, domain.RoleAdmin)

	// Submission intake and admin review. The static "submissions"
	// segment takes precedence over the :id routes below it.
	api.POST("/projects/submissions", s.handlers.Submission.Create,
		middleware.RateLimit(s.cfg.RateLimit.SubmissionsPerHour, time.Hour))
	api.GET("/projects/submissions", s.handlers.Submission.List, adminOnly)
	api.GET("/projects/submissions/:id", s.handlers.Submission.Get, adminOnly)
	api.PATCH("/projects/submissions/:id", s.handlers.Submission.Review, adminOnly)
	api.DELETE("/projects/submissions/:id", s.handlers.Submission.Delete, adminOnly)

	// Published projects.
	api.GET("/projects", s.handlers.Project.List)
	api.GET("/projects/:id", s.handlers.Project.Get)
	api.PATCH("/projects/:id", s.handlers.Project.UpdateStatus, adminOnly)

	// Partner self-service, ownership-scoped.
	api.GET("/partner/projects", s.handlers.Partner.List, partnerOrAdmin)
	api.POST("/partner/projects", s.handlers.Partner.Create, partnerOrAdmin)
	api.GET("/partner/projects/:id", s.handlers.Partner.Get, partnerOrAdmin)
	api.PATCH("/partner/projects/:id", s.handlers.Partner.Update, partnerOrAdmin)

	// Donation pipeline.
	api.POST("/donations/confirm", s.handlers.Donation.Confirm,
		middleware.RateLimit(s.cfg.RateLimit.DonationsPerMinute, time.Minute))
	api.GET("/donations/list", s.handlers.Donation.List, managerOrAdmin)
	api.PATCH("/donations/:id/status", s.handlers.Donation.UpdateStatus, managerOrAdmin)
	api.GET("/donor/donations", s.handlers.Donation.ListOwn, donorOrAdmin)

	// Outbound wire transfers.
	api.GET("/wire-transfers/list", s.handlers.WireTransfer.List, managerOrAdmin)
	api.POST("/wire-transfers", s.handlers.WireTransfer.Create, managerOrAdmin)
	api.PATCH("/wire-transfers/:id/status", s.handlers.WireTransfer.UpdateStatus, managerOrAdmin)

	// Contact inquiries.
	api.POST("/contact", s.handlers.Contact.Create,
		middleware.RateLimit(s.cfg.RateLimit.ContactsPerMinute, time.Minute))
	api.GET("/contact", s.handlers.Contact.List, adminOnly)
	api.PATCH("/contact/:id", s.handlers.Contact.SetHandled, adminOnly)

	// Newsletter.
	api.POST("/newsletter", s.handlers.Newsletter.Subscribe)
	api.POST("/newsletter/unsubscribe", s.handlers.Newsletter.Unsubscribe)

	// Account management.
	api.GET("/admin/users", s.handlers.User.List, adminOnly)
	api.POST("/admin/users", s.handlers.User.Create, adminOnly)
	api.GET("/admin/users/:id", s.handlers.User.Get, adminOnly)
	api.PATCH("/admin/users/:id", s.handlers.User.Update, adminOnly)
	api.DELETE("/admin/users/:id", s.handlers.User.Delete, adminOnly)
	api.GET("/admin/subscribers", s.handlers.Newsletter.List, adminOnly)
	api.DELETE("/admin/subscribers/:id", s.handlers.Newsletter.Delete, adminOnly)
}

func (s *Server) Handler() *echo.Echo {
	s.setupMiddleware()
	s.setupRoutes()
	return s.echo
}
