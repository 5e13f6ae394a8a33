package appServer

import (
	"context"
	"crypto/tls"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"event-booking/config"
	"event-booking/internal/auth"
	"event-booking/internal/clock"
	repository "event-booking/internal/database/postgres"
	"event-booking/internal/monitoring"
	"event-booking/internal/service"
	"event-booking/internal/transport"
	"event-booking/pkg/postgres"
	"event-booking/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags),
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)

	db, err := postgres.NewPostgresDB(&cfg.Database)
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunMigrations(db); err != nil {
		logrus.Fatalf("Failed to run migrations: %v", err)
	}

	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logrus.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer redisClient.Close()

	// Repositories
	eventRepo := repository.NewEventRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	// Auth
	sessionStore := auth.NewRedisSessionStore(redisClient)
	authenticator := auth.NewAuthenticator(sessionStore, cfg.Admin)

	// Services
	clk := clock.NewSystem()
	catalogService := service.NewCatalogService(eventRepo, clk)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, clk, cfg.Booking)
	adminService := service.NewAdminService(eventRepo, bookingRepo, clk)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Catalog gauges refresh in the background
	monitor := monitoring.NewMonitor(eventRepo, 30*time.Second)
	go monitor.Start(ctx)
	logrus.Info("Catalog monitor started")

	// Handlers
	catalogHandler := transport.NewCatalogHandler(catalogService)
	bookingHandler := transport.NewBookingHandler(bookingService)
	adminHandler := transport.NewAdminHandler(adminService, authenticator, int(cfg.Admin.SessionTTL.Seconds()))

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(catalogHandler, bookingHandler, adminHandler, authenticator, cfg.Server.Timeout)); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}
}
