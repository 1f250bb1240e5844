package main

import (
	"log/slog"
	"os"

	"github.com/cinebook/booking-api/internal/app"
	"github.com/joho/godotenv"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded, using the process environment")
	}

	err := app.Run()
	if err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
