package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"karaoke/internal/config"
	"karaoke/internal/database"
	"karaoke/internal/middleware"
	"karaoke/internal/modules/billing"
	"karaoke/internal/modules/booking"
	"karaoke/internal/modules/catalog"
	"karaoke/internal/modules/order"
	"karaoke/internal/modules/session"
	"karaoke/internal/pkg/logger"
	"karaoke/internal/repository"
)

func main() {
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogPath, cfg.Debug)
	if err != nil {
		log.Printf("logger init failed: %v, using production defaults", err)
		zlog, _ = zap.NewProduction()
	}
	defer zlog.Sync()

	zlog.Info("starting karaoke service",
		zap.String("addr", cfg.Addr),
		zap.Bool("debug", cfg.Debug),
		zap.String("hourly_rate", cfg.HourlyRate.String()),
	)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		zlog.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zlog.Fatal("migration failed", zap.Error(err))
	}
	if err := database.Seed(db); err != nil {
		zlog.Fatal("catalog seeding failed", zap.Error(err))
	}

	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billRepo := repository.NewBillRepository(db)

	queueHub := session.NewHub()

	catalogService := catalog.NewService(roomRepo, menuRepo, bookingRepo, zlog)
	bookingService := booking.NewService(bookingRepo, roomRepo, cfg.HourlyRate, zlog)
	sessionService := session.NewService(sessionRepo, roomRepo, bookingRepo, queueHub, zlog)
	orderService := order.NewService(orderRepo, sessionRepo, menuRepo, zlog)
	billingService := billing.NewService(billRepo, sessionRepo, orderRepo, cfg.HourlyRate, billing.NoDiscount, zlog)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(zlog))
	r.Use(middleware.RequestLogger(zlog))
	r.Use(middleware.CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		catalog.NewHandler(catalogService).RegisterRoutes(v1)
		booking.NewHandler(bookingService).RegisterRoutes(v1)
		session.NewHandler(sessionService, queueHub).RegisterRoutes(v1)
		order.NewHandler(orderService).RegisterRoutes(v1)
		billing.NewHandler(billingService).RegisterRoutes(v1)
	}

	if err := r.Run(cfg.Addr); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
