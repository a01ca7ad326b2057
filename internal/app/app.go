package app

import (
	"github.com/gmottab/cine-reservas/config"
	"github.com/gmottab/cine-reservas/internal/cache"
	"github.com/gmottab/cine-reservas/internal/mq"
	"github.com/gmottab/cine-reservas/internal/remote"
	"github.com/gmottab/cine-reservas/internal/repository"
	"github.com/gmottab/cine-reservas/internal/service/domain"
	"github.com/gmottab/cine-reservas/internal/service/workflow"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config

	DB     *gorm.DB
	Cache  *cache.RedisCache
	Logger *zap.Logger
	MQConn *amqp.Connection

	SessionRepo     repository.SessionRepo
	ReservationRepo repository.ReservationRepo

	SessionService     domain.SessionService
	ReservationService domain.ReservationService
	PaymentService     domain.PaymentService

	PaymentWorkflow      *workflow.PaymentWorkflow
	ConfirmationWorkflow *workflow.ConfirmationWorkflow
}

var _ domain.BalanceStore = (*cache.RedisCache)(nil)

func New(config *config.Config, db *gorm.DB, cache *cache.RedisCache, logger *zap.Logger, mqConn *amqp.Connection) *App {
	sessionRepo := repository.NewSessionRepoGorm(db)
	reservationRepo := repository.NewReservationRepoGorm(db)

	clients := remote.NewHTTPClientDirectory(config.ClientsAPIURL)
	catalog := remote.NewHTTPFilmCatalog(config.CatalogAPIURL)
	reservations := remote.NewHTTPReservationLookup(config.ReservationsURL)

	sessionService := domain.NewSessionService(db, sessionRepo, reservationRepo, catalog)
	reservationService := domain.NewReservationService(reservationRepo, sessionService, clients, cache)
	paymentService := domain.NewPaymentService(clients, reservations, cache)

	producer := mq.NewProducer(mqConn)
	paymentWorkflow := workflow.NewPaymentWorkflow(paymentService, producer)
	confirmationWorkflow := workflow.NewConfirmationWorkflow(reservationService, logger)

	return &App{
		Config:               config,
		DB:                   db,
		Cache:                cache,
		Logger:               logger,
		MQConn:               mqConn,
		SessionRepo:          sessionRepo,
		ReservationRepo:      reservationRepo,
		SessionService:       sessionService,
		ReservationService:   reservationService,
		PaymentService:       paymentService,
		PaymentWorkflow:      paymentWorkflow,
		ConfirmationWorkflow: confirmationWorkflow,
	}
}

func (app *App) Init() error {
	if err := mq.InitTopology(app.MQConn); err != nil {
		return err
	}
	return app.ConfirmationWorkflow.Start(app.MQConn)
}

func (app *App) Close() error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
