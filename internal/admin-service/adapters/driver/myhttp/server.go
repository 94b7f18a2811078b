package myhttp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ride-hail-admin/internal/admin-service/adapters/driven/bm"
	"ride-hail-admin/internal/admin-service/adapters/driven/db"
	"ride-hail-admin/internal/admin-service/adapters/driver/myhttp/handle"
	"ride-hail-admin/internal/admin-service/adapters/driver/myhttp/middleware"
	"ride-hail-admin/internal/admin-service/adapters/driver/myhttp/ws"
	"ride-hail-admin/internal/admin-service/core/ports"
	"ride-hail-admin/internal/admin-service/core/services"
	"ride-hail-admin/internal/config"
	"ride-hail-admin/internal/mylogger"
)

var ErrServerClosed = errors.New("Server closed")

const WaitTime = 10

type Server struct {
	mux    *http.ServeMux
	cfg    *config.Config
	srv    *http.Server
	mylog  mylogger.Logger
	db     ports.IDB
	broker ports.ISessionBroker
	ctx    context.Context
	appCtx context.Context
	mu     sync.Mutex
	wg     sync.WaitGroup
}

func NewServer(ctx, appCtx context.Context, mylog mylogger.Logger, cfg *config.Config) *Server {
	return &Server{
		ctx:    ctx,
		appCtx: appCtx,
		cfg:    cfg,
		mylog:  mylog,
		mux:    http.NewServeMux(),
	}
}

// Run initializes routes and starts listening. It returns when the server stops.
func (s *Server) Run() error {
	mylog := s.mylog.Action("server_started")
	// Initialize database connection
	if err := s.initializeDatabase(); err != nil {
		mylog.Action("db_connection_failed").Error("Failed to connect to database", err)
		return err
	}
	mylog.Action("db_connected").Info("Successful database connection")

	// Initialize session event broker
	if err := s.initializeBroker(); err != nil {
		mylog.Action("broker_connection_failed").Error("Failed to connect to rabbitmq", err)
		return err
	}
	mylog.Action("broker_connected").Info("Successful rabbitmq connection")

	// Configure routes and handlers
	if err := s.Configure(); err != nil {
		mylog.Action("configure_failed").Error("Failed to configure routes", err)
		return err
	}

	s.mu.Lock()
	s.srv = &http.Server{
		Addr:    fmt.Sprintf(":%v", s.cfg.Srv.AdminServicePort),
		Handler: s.mux,
	}
	s.mu.Unlock()

	mylog = mylog.WithGroup("details").With("port", s.cfg.Srv.AdminServicePort)

	mylog.Info("server is running")
	// Start the HTTP server and handle graceful shutdown
	return s.startHTTPServer()
}

// Stop provides a programmatic shutdown. Accepts a context for timeout control.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mylog.Action("graceful_shutdown_started").Info("Shutting down HTTP server...")

	s.wg.Wait()

	if s.srv != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, WaitTime*time.Second)
		defer cancel()

		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.mylog.Action("graceful_shutdown_failed").Error("Failed to shut down HTTP server gracefully", err)
			return fmt.Errorf("http server shutdown: %w", err)
		}
	}

	if s.broker != nil {
		if err := s.broker.Close(); err != nil {
			s.mylog.Action("broker_close_failed").Error("Failed to close rabbitmq connection", err)
			return fmt.Errorf("broker close: %w", err)
		}
		s.mylog.Action("broker_closed").Info("RabbitMQ connection closed")
	}

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.mylog.Action("db_close_failed").Error("Failed to close database", err)
			return fmt.Errorf("db close: %w", err)
		}
		s.mylog.Action("db_closed").Info("Database closed")
	}

	s.mylog.Action("graceful_shutdown_completed").Info("HTTP server shut down gracefully")

	return nil
}

func (s *Server) startHTTPServer() error {
	errCh := make(chan error, 1)

	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		} else {
			errCh <- nil
		}
	}()

	select {
	case <-s.ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Configure sets up the HTTP handlers for auth, driver, ride, user and
// analytics APIs plus the dashboard websocket and health check.
func (s *Server) Configure() error {
	// Repositories
	accountsRepo := db.NewAccountsRepo(s.db)
	profilesRepo := db.NewProfilesRepo(s.db)
	driversRepo := db.NewDriversRepo(s.db)
	ridesRepo := db.NewRidesRepo(s.db)
	analyticsRepo := db.NewAnalyticsRepo(s.db)

	// Dashboard push channel, also the notifier the services publish through
	dispatcher := ws.NewDispatcher(s.mylog)

	// Services
	sessionService := services.NewSessionService(s.ctx, s.cfg, s.mylog, accountsRepo, profilesRepo, s.broker)
	driversService := services.NewDriversService(s.ctx, s.mylog, driversRepo, profilesRepo, dispatcher)
	ridesService := services.NewRidesService(s.ctx, s.mylog, ridesRepo, profilesRepo, dispatcher, s.cfg.App.RideListLimit)
	analyticsService := services.NewAnalyticsService(s.ctx, s.mylog, analyticsRepo, s.cfg.App.HistogramSample)

	debouncer := services.NewDebouncer(time.Duration(s.cfg.App.SearchDebounceMs) * time.Millisecond)
	usersService := services.NewUsersService(s.ctx, s.mylog, profilesRepo, dispatcher, s.cfg.App.UserListLimit, debouncer)
	dispatcher.SetUsersService(usersService)

	// Session store consumes broker events for the lifetime of the server
	store := services.NewSessionStore(s.mylog, sessionService.CurrentUser)
	events, err := s.broker.ConsumeSessionEvents(s.ctx)
	if err != nil {
		return fmt.Errorf("consume session events: %w", err)
	}
	go store.Run(s.ctx, events, dispatcher)

	// Handlers
	authHandler := handle.NewAuthHandler(s.mylog, sessionService, store)
	driversHandler := handle.NewDriversHandler(s.mylog, driversService)
	ridesHandler := handle.NewRidesHandler(s.mylog, ridesService)
	usersHandler := handle.NewUsersHandler(s.mylog, usersService)
	analyticsHandler := handle.NewAnalyticsHandler(s.mylog, analyticsService)
	healthHandler := handle.NewHealthHandler(s.mylog, s.db, s.broker)

	authMiddleware := middleware.NewAuthMiddleware(s.cfg.App.JwtSecret)

	// Register routes
	s.mux.Handle("POST /auth/login", authHandler.Login())
	s.mux.Handle("POST /auth/logout", authMiddleware.Wrap(authHandler.Logout()))
	s.mux.Handle("GET /auth/me", authMiddleware.Wrap(authHandler.Me()))

	s.mux.Handle("GET /admin/drivers", authMiddleware.WrapAdmin(driversHandler.List()))
	s.mux.Handle("GET /admin/drivers/available", authMiddleware.WrapAdmin(driversHandler.ListAvailable()))
	s.mux.Handle("POST /admin/drivers/{id}/approve", authMiddleware.WrapAdmin(driversHandler.Approve()))
	s.mux.Handle("POST /admin/drivers/{id}/availability", authMiddleware.WrapAdmin(driversHandler.ToggleAvailability()))
	s.mux.Handle("DELETE /admin/drivers/{id}", authMiddleware.WrapAdmin(driversHandler.Remove()))

	s.mux.Handle("GET /admin/rides", authMiddleware.WrapAdmin(ridesHandler.List()))
	s.mux.Handle("POST /admin/rides/{id}/assign", authMiddleware.WrapAdmin(ridesHandler.Assign()))
	s.mux.Handle("POST /admin/rides/{id}/status", authMiddleware.WrapAdmin(ridesHandler.AdvanceStatus()))

	s.mux.Handle("GET /admin/users", authMiddleware.WrapAdmin(usersHandler.List()))
	s.mux.Handle("POST /admin/users/{id}/role", authMiddleware.WrapAdmin(usersHandler.ChangeRole()))

	s.mux.Handle("GET /admin/analytics", authMiddleware.WrapAdmin(analyticsHandler.Stats()))

	s.mux.Handle("GET /admin/ws", authMiddleware.WrapAdmin(dispatcher.Handler()))

	s.mux.Handle("GET /health", healthHandler.Health())

	return nil
}

func (s *Server) initializeDatabase() error {
	db, err := db.Start(s.ctx, s.cfg.DB, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.db = db
	return nil
}

func (s *Server) initializeBroker() error {
	broker, err := bm.New(s.ctx, *s.cfg.RabbitMq, s.mylog)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	s.broker = broker
	return nil
}
