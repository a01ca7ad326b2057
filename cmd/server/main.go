package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gmottab/cine-reservas/config"
	"github.com/gmottab/cine-reservas/internal/app"
	"github.com/gmottab/cine-reservas/internal/cache"
	"github.com/gmottab/cine-reservas/internal/handler"
	"github.com/gmottab/cine-reservas/internal/model"
	"github.com/gmottab/cine-reservas/internal/mq"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	if err := db.AutoMigrate(&model.Session{}, &model.Reservation{}); err != nil {
		logger.Fatal("failed to migrate database", zap.Error(err))
	}

	redisCache, err := cache.NewRedisCache(cfg.CacheURL)
	if err != nil {
		logger.Fatal("failed to connect to redis", zap.Error(err))
	}

	mqConn, err := mq.NewMQConn(cfg.MQURL)
	if err != nil {
		logger.Fatal("failed to connect to rabbitmq", zap.Error(err))
	}
	defer mqConn.Close()

	application := app.New(cfg, db, redisCache, logger, mqConn)
	if err := application.Init(); err != nil {
		logger.Fatal("failed to init app", zap.Error(err))
	}
	defer application.Close()

	router := gin.Default()

	sessionHandler := handler.NewSessionHandler(application)
	reservationHandler := handler.NewReservationHandler(application)
	paymentHandler := handler.NewPaymentHandler(application)

	router.POST("/sessions", sessionHandler.HandleCreate)
	router.GET("/sessions", sessionHandler.HandleList)
	router.GET("/sessions/:id", sessionHandler.HandleGet)
	router.POST("/sessions/:id/cancel", sessionHandler.HandleCancel)
	router.GET("/sessions/:id/reservations", sessionHandler.HandleReservations)

	router.POST("/reservations", reservationHandler.HandleCreate)
	router.GET("/reservations/:id", reservationHandler.HandleGet)
	router.POST("/reservations/:id/cancel", reservationHandler.HandleCancel)

	router.POST("/payments", paymentHandler.HandleRequestPayment)

	logger.Info("server listening", zap.String("addr", cfg.Addr))
	if err := router.Run(cfg.Addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
