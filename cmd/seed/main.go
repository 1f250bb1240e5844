package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cinebook/booking-api/internal/app"
	"github.com/cinebook/booking-api/internal/domain"
	"github.com/cinebook/booking-api/internal/repository"
	"github.com/cinebook/booking-api/migrations"
	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

var (
	step = color.New(color.FgCyan).PrintfFunc()
	ok   = color.New(color.FgGreen).PrintfFunc()
	warn = color.New(color.FgYellow).PrintfFunc()
	fail = color.New(color.FgRed, color.Bold).FprintfFunc()
)

type seedConfig struct {
	dsn           string
	adminName     string
	adminEmail    string
	adminPassword string
}

func main() {
	_ = godotenv.Load()

	var cfg seedConfig

	flag.StringVar(&cfg.dsn, "db-dsn", os.Getenv("DATABASE_URL"), "PostgreSQL DSN")
	flag.StringVar(&cfg.adminName, "admin-name", "Admin", "Name of the seeded admin user")
	flag.StringVar(&cfg.adminEmail, "admin-email", "admin@cinebook.app", "Email of the seeded admin user")
	flag.StringVar(&cfg.adminPassword, "admin-password", os.Getenv("SEED_ADMIN_PASSWORD"), "Password of the seeded admin user")

	flag.Parse()

	if err := run(cfg); err != nil {
		fail(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg seedConfig) error {
	if cfg.adminPassword == "" {
		return errors.New("an -admin-password (or SEED_ADMIN_PASSWORD) is required")
	}

	step("applying migrations\n")

	if err := migrations.Up(cfg.dsn); err != nil {
		return err
	}

	db, err := app.NewDatabasePool(app.Config{
		DB: app.DBConfig{
			DSN:          cfg.dsn,
			MaxOpenConns: 5,
			MaxIdleTime:  time.Minute,
		},
	})
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	users := repository.NewPostgresUserRepository(db)

	admin := &domain.User{
		Name:  cfg.adminName,
		Email: strings.ToLower(cfg.adminEmail),
		Role:  domain.RoleAdmin,
	}

	if err = admin.Password.Set(cfg.adminPassword); err != nil {
		return err
	}

	step("creating admin %s\n", admin.Email)

	err = users.Create(ctx, admin)
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		warn("  admin already exists, skipping\n")
	case err != nil:
		return fmt.Errorf("create admin: %w", err)
	default:
		ok("  admin %s\n", admin.ID)
	}

	description := "A thief who steals corporate secrets through dream-sharing technology."
	releaseDate := time.Date(2010, 7, 16, 0, 0, 0, 0, time.UTC)

	movie := &domain.Movie{
		Title:       "Inception",
		Duration:    148,
		Description: &description,
		ReleaseDate: &releaseDate,
	}

	step("creating movie %q\n", movie.Title)

	if err = repository.NewPostgresMovieRepository(db).Create(ctx, movie); err != nil {
		return fmt.Errorf("create movie: %w", err)
	}

	ok("  movie %s\n", movie.ID)

	theater := &domain.Theater{Name: "Cineplex", Location: "Main St"}

	step("creating theater %q\n", theater.Name)

	if err = repository.NewPostgresTheaterRepository(db).Create(ctx, theater); err != nil {
		return fmt.Errorf("create theater: %w", err)
	}

	ok("  theater %s\n", theater.ID)

	screen := &domain.Screen{
		TheaterID: theater.ID,
		Name:      "Screen 1",
		Rows:      10,
		Columns:   10,
	}

	step("creating %dx%d screen\n", screen.Rows, screen.Columns)

	if err = repository.NewPostgresScreenRepository(db).CreateWithSeats(ctx, screen); err != nil {
		return fmt.Errorf("create screen: %w", err)
	}

	ok("  screen %s with %d seats\n", screen.ID, len(screen.Seats))

	show := &domain.Show{
		MovieID:   movie.ID,
		TheaterID: theater.ID,
		ScreenID:  screen.ID,
		StartTime: time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC),
		Price:     decimal.RequireFromString("12.50"),
	}

	step("scheduling show at %s\n", show.StartTime.Format(time.RFC3339))

	err = repository.NewPostgresShowRepository(db).CreateChecked(ctx, show)
	switch {
	case errors.Is(err, domain.ErrShowConflict):
		warn("  a show is already scheduled on this screen, skipping\n")
	case err != nil:
		return fmt.Errorf("create show: %w", err)
	default:
		ok("  show %s\n", show.ID)
	}

	color.New(color.FgGreen, color.Bold).Println("seed complete")

	return nil
}
