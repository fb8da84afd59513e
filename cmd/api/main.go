package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-event-hotel-booking/internal/api"
	"github.com/sanosuguru/go-event-hotel-booking/internal/api/handler"
	"github.com/sanosuguru/go-event-hotel-booking/internal/api/middleware"
	"github.com/sanosuguru/go-event-hotel-booking/internal/application"
	"github.com/sanosuguru/go-event-hotel-booking/internal/config"
	"github.com/sanosuguru/go-event-hotel-booking/internal/infrastructure/postgres"
	redisinfra "github.com/sanosuguru/go-event-hotel-booking/internal/infrastructure/redis"
	"github.com/sanosuguru/go-event-hotel-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-event-hotel-booking/internal/pkg/metrics"
	"github.com/sanosuguru/go-event-hotel-booking/internal/worker"
)

func main() {
	cfg := config.Load()
	defer func() { _ = logger.Sync() }()

	m := metrics.Init()

	// PostgreSQL接続とマイグレーション
	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		logger.Get().Fatal("データベース接続失敗", zap.Error(err))
	}
	defer db.Close()

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}
	if err := postgres.RunMigrations(db.DB, migrationsPath); err != nil {
		logger.Get().Fatal("マイグレーション失敗", zap.Error(err))
	}

	// Redis接続（分散ロックとホテルカタログキャッシュ）
	redisClient := redisinfra.NewClient(&cfg.Redis)
	defer redisClient.Close()

	// リポジトリ
	enrollmentRepo := postgres.NewEnrollmentRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	hotelRepo := postgres.NewHotelRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	txManager := postgres.NewTxManager(db)

	lockManager := redisinfra.NewLockManager(redisClient)
	hotelCache := redisinfra.NewHotelCache(redisClient)

	// アプリケーションサービス
	hotelService := application.NewHotelService(hotelRepo, enrollmentRepo, ticketRepo, hotelCache)
	bookingService := application.NewBookingService(txManager, bookingRepo, hotelRepo, enrollmentRepo, ticketRepo, lockManager)
	ticketService := application.NewTicketService(ticketRepo, enrollmentRepo)
	paymentService := application.NewPaymentService(txManager, paymentRepo, ticketRepo, enrollmentRepo)

	// ハンドラー
	healthHandler := handler.NewHealthHandler()
	hotelHandler := handler.NewHotelHandler(hotelService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Echo セットアップ
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	middleware.SetupMiddleware(e)
	e.Use(middleware.PrometheusMiddleware(m))

	// 認証不要のエンドポイント
	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), middleware.MetricsBasicAuth())

	// 認証必須のエンドポイント
	auth := middleware.JWTAuth(cfg.Auth.JWTSecret)

	hotels := e.Group("/hotels", auth)
	hotels.GET("", hotelHandler.List)
	hotels.GET("/:hotelId", hotelHandler.GetByID)

	bookings := e.Group("/booking", auth)
	bookings.GET("", bookingHandler.Get)
	bookings.POST("", bookingHandler.Create)
	bookings.PUT("/:bookingId", bookingHandler.Update)

	tickets := e.Group("/tickets", auth)
	tickets.GET("/types", ticketHandler.ListTypes)
	tickets.GET("", ticketHandler.Get)
	tickets.POST("", ticketHandler.Create)

	payments := e.Group("/payments", auth)
	payments.GET("", paymentHandler.Get)
	payments.POST("/process", paymentHandler.Process)

	// 予約数集計ワーカー
	refresher := worker.NewOccupancyRefresher(bookingRepo, hotelRepo, hotelCache, m, 30*time.Second)
	workerCtx, cancelWorker := context.WithCancel(context.Background())
	go refresher.Start(workerCtx)

	// サーバー起動
	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Get().Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	cancelWorker()
	refresher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Get().Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
