package integration_test

import (
	"log/slog"
	"os"

	"github.com/cinebook/booking-api/internal/app"
	"github.com/cinebook/booking-api/internal/events"
	"github.com/cinebook/booking-api/internal/mailer"
	"github.com/cinebook/booking-api/internal/payment"
	appvalidator "github.com/cinebook/booking-api/internal/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App    *app.Application
	DB     *pgxpool.Pool
	Redis  *redis.Client
	Mailer *mailer.MockMailer
	Repos  app.Repositories
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()
	mailer := mailer.NewMockMailer()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)
	repos := app.NewPostgresRepositories(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		redisClient,
		validator,
		mailer,
		sessionManager,
		app.NewGoogleIdentityProvider(cfg.Google),
		repos,
		payment.NewSimulatedPaymentProvider(),
		events.NoopPublisher{},
	)

	return &TestApp{
		App:    application,
		DB:     db,
		Redis:  redisClient,
		Mailer: mailer,
		Repos:  repos,
	}, nil
}
