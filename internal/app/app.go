package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/events"
	"github.com/cinebook/booking-api/internal/mailer"
	"github.com/cinebook/booking-api/internal/payment"
	"github.com/cinebook/booking-api/internal/repository"
	appvalidator "github.com/cinebook/booking-api/internal/validator"
	"github.com/cinebook/booking-api/internal/vcs"
	"github.com/cinebook/booking-api/migrations"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	redis          redis.UniversalClient
	validator      *validator.Validate
	mailer         mailer.Mailer
	sessionManager *scs.SessionManager
	identity       IdentityProvider
	limiter        *ipRateLimiter
	wg             sync.WaitGroup

	userRepo    domain.UserRepository
	movieRepo   domain.MovieRepository
	theaterRepo domain.TheaterRepository
	screenRepo  domain.ScreenRepository
	seatRepo    domain.SeatRepository
	showRepo    domain.ShowRepository
	bookingRepo domain.BookingRepository
	paymentRepo domain.PaymentRepository

	paymentProvider domain.PaymentProvider
	publisher       domain.EventPublisher
	metrics         *bookingMetrics
}

type Config struct {
	Port             int
	Env              string
	ServiceName      string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	Auth             AuthConfig
	Google           GoogleConfig
	SMTP             SMTPConfig
	Stripe           StripeConfig
	Events           EventsConfig
	Limiter          LimiterConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
	AutoMigrate  bool
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type AuthConfig struct {
	Secret       string
	CookieSecure bool
}

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Sender   string
}

type StripeConfig struct {
	SecretKey            string
	Currency             string
	DefaultPaymentMethod string
}

type EventsConfig struct {
	Driver       string
	AMQPURL      string
	AMQPQueue    string
	KafkaBrokers string
	KafkaTopic   string
}

type LimiterConfig struct {
	Enabled    bool
	RPS        float64
	Burst      int
	TrustProxy bool
}

// Repositories groups the persistence layer handed to NewApp.
type Repositories struct {
	Users    domain.UserRepository
	Movies   domain.MovieRepository
	Theaters domain.TheaterRepository
	Screens  domain.ScreenRepository
	Seats    domain.SeatRepository
	Shows    domain.ShowRepository
	Bookings domain.BookingRepository
	Payments domain.PaymentRepository
}

func NewPostgresRepositories(db *pgxpool.Pool) Repositories {
	return Repositories{
		Users:    repository.NewPostgresUserRepository(db),
		Movies:   repository.NewPostgresMovieRepository(db),
		Theaters: repository.NewPostgresTheaterRepository(db),
		Screens:  repository.NewPostgresScreenRepository(db),
		Seats:    repository.NewPostgresSeatRepository(db),
		Shows:    repository.NewPostgresShowRepository(db),
		Bookings: repository.NewPostgresBookingRepository(db),
		Payments: repository.NewPostgresPaymentRepository(db),
	}
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	redis redis.UniversalClient,
	validator *validator.Validate,
	mailer mailer.Mailer,
	sessionManager *scs.SessionManager,
	identity IdentityProvider,
	repos Repositories,
	paymentProvider domain.PaymentProvider,
	publisher domain.EventPublisher) *Application {

	metrics, err := newBookingMetrics(otel.GetMeterProvider())
	if err != nil {
		logger.Error("failed to create metric instruments", "error", err)
		metrics, _ = newBookingMetrics(noop.NewMeterProvider())
	}

	return &Application{
		config:          cfg,
		logger:          logger,
		db:              db,
		redis:           redis,
		validator:       validator,
		mailer:          mailer,
		sessionManager:  sessionManager,
		identity:        identity,
		limiter:         newIPRateLimiter(cfg.Limiter),
		userRepo:        repos.Users,
		movieRepo:       repos.Movies,
		theaterRepo:     repos.Theaters,
		screenRepo:      repos.Screens,
		seatRepo:        repos.Seats,
		showRepo:        repos.Shows,
		bookingRepo:     repos.Bookings,
		paymentRepo:     repos.Payments,
		paymentProvider: paymentProvider,
		publisher:       publisher,
		metrics:         metrics,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.ServiceName, "service-name", "cinebook-api", "Service name reported to OpenTelemetry")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", os.Getenv("OTEL_COLLECTOR_URL"), "OpenTelemetry collector gRPC endpoint")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", os.Getenv("DATABASE_URL"), "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")
	flag.BoolVar(&cfg.DB.AutoMigrate, "db-automigrate", true, "Apply pending migrations on start-up")

	flag.StringVar(&cfg.Redis.URL, "redis-url", os.Getenv("REDIS_URL"), "Redis address")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Auth.Secret, "auth-secret", os.Getenv("AUTH_SECRET"), "Session token signing secret")
	flag.BoolVar(&cfg.Auth.CookieSecure, "auth-cookie-secure", false, "Mark the session cookie Secure")

	flag.StringVar(&cfg.Google.ClientID, "google-client-id", os.Getenv("GOOGLE_CLIENT_ID"), "Google OAuth client id")
	flag.StringVar(&cfg.Google.ClientSecret, "google-client-secret", os.Getenv("GOOGLE_CLIENT_SECRET"), "Google OAuth client secret")
	flag.StringVar(&cfg.Google.RedirectURL, "google-redirect-url", "http://localhost:3000/auth/callback/google", "Google OAuth redirect URL")

	flag.StringVar(&cfg.SMTP.Host, "smtp-host", "sandbox.smtp.mailtrap.io", "SMTP host")
	flag.IntVar(&cfg.SMTP.Port, "smtp-port", 2525, "SMTP port")
	flag.StringVar(&cfg.SMTP.Username, "smtp-username", os.Getenv("SMTP_USERNAME"), "SMTP username")
	flag.StringVar(&cfg.SMTP.Password, "smtp-password", os.Getenv("SMTP_PASSWORD"), "SMTP password")
	flag.StringVar(&cfg.SMTP.Sender, "smtp-sender", "Cinebook <no-reply@cinebook.app>", "SMTP sender")

	flag.StringVar(&cfg.Stripe.SecretKey, "stripe-key", os.Getenv("STRIPE_SECRET_KEY"), "Stripe secret key, the simulated provider is used when empty")
	flag.StringVar(&cfg.Stripe.Currency, "stripe-currency", "usd", "Currency of charged amounts")
	flag.StringVar(&cfg.Stripe.DefaultPaymentMethod, "stripe-default-payment-method", "pm_card_visa", "Stripe payment method used for generic methods such as CARD")

	flag.StringVar(&cfg.Events.Driver, "events-driver", "none", "booking.confirmed publisher (none|amqp|kafka)")
	flag.StringVar(&cfg.Events.AMQPURL, "amqp-url", os.Getenv("RABBITMQ_URL"), "RabbitMQ URL")
	flag.StringVar(&cfg.Events.AMQPQueue, "amqp-queue", events.BookingConfirmedQueue, "RabbitMQ queue")
	flag.StringVar(&cfg.Events.KafkaBrokers, "kafka-brokers", os.Getenv("KAFKA_BROKERS"), "Comma separated Kafka brokers")
	flag.StringVar(&cfg.Events.KafkaTopic, "kafka-topic", events.BookingConfirmedTopic, "Kafka topic")

	flag.BoolVar(&cfg.Limiter.Enabled, "limiter-enabled", true, "Rate limit sign-in requests")
	flag.Float64Var(&cfg.Limiter.RPS, "limiter-rps", 2, "Sign-in requests per second per client")
	flag.IntVar(&cfg.Limiter.Burst, "limiter-burst", 5, "Sign-in burst per client")
	flag.BoolVar(&cfg.Limiter.TrustProxy, "limiter-trust-proxy", false, "Take the client address from X-Forwarded-For/X-Real-IP (only behind a trusted proxy)")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	if cfg.Auth.Secret == "" {
		return errors.New("an -auth-secret (or AUTH_SECRET) is required to sign sessions")
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if cfg.DB.AutoMigrate {
		err := migrations.Up(cfg.DB.DSN)
		if err != nil {
			return err
		}

		logger.Info("database migrations applied")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	publisher, err := newEventPublisher(cfg.Events)
	if err != nil {
		return err
	}
	defer publisher.Close()

	app := NewApp(
		cfg,
		logger,
		db,
		redisClient,
		appvalidator.NewValidator(),
		mailer.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Sender),
		NewSessionManager(redisClient),
		NewGoogleIdentityProvider(cfg.Google),
		NewPostgresRepositories(db),
		newPaymentProvider(cfg.Stripe),
		publisher,
	)

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		app.logger = slog.New(newTeeHandler(
			logger.Handler(),
			otelslog.NewHandler(cfg.ServiceName),
		))
	}

	return app.serve()
}

func newPaymentProvider(cfg StripeConfig) domain.PaymentProvider {
	if cfg.SecretKey == "" {
		return payment.NewSimulatedPaymentProvider()
	}

	stripe.Key = cfg.SecretKey
	stripe.SetBackend(stripe.APIBackend, stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
	}))

	return payment.NewStripePaymentProvider(cfg.DefaultPaymentMethod)
}

func newEventPublisher(cfg EventsConfig) (domain.EventPublisher, error) {
	switch cfg.Driver {
	case "amqp":
		return events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue)
	case "kafka":
		return events.NewKafkaPublisher(strings.Split(cfg.KafkaBrokers, ","), cfg.KafkaTopic)
	case "", "none":
		return events.NoopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.Lifetime = 10 * time.Minute
	sessionManager.Cookie.Name = "oauth_session"
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	if err := redisotel.InstrumentTracing(rdb); err != nil {
		return nil, err
	}

	if err := redisotel.InstrumentMetrics(rdb); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go app.shutdownOnSignal(srv, quit, 30*time.Second, shutdownError)

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

// shutdownOnSignal drains srv once a signal arrives on quit and reports the
// outcome on shutdownError exactly once.
func (app *Application) shutdownOnSignal(srv *http.Server, quit <-chan os.Signal, timeout time.Duration, shutdownError chan<- error) {
	s := <-quit

	app.logger.Info("shutting down server", "signal", s.String())

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := srv.Shutdown(ctx)
	if err != nil {
		shutdownError <- err
		return
	}

	app.logger.Info("completing background tasks", "addr", srv.Addr)

	app.wg.Wait()
	shutdownError <- nil
}
