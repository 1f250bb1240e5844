package integration_test

import "time"

const (
	// User related constants
	TestUserId       = "u1"
	TestOtherUserId  = "u2"
	TestAdminId      = "admin-1"
	TestUserName     = "John Doe"
	TestUserEmail    = "test@example.com"
	TestUserPassword = "Test123!@#"

	// Catalogue related constants
	TestMovieTitle       = "Inception"
	TestMovieDescription = "A thief who steals corporate secrets through dream-sharing technology."
	TestMovieDuration    = 148
	TestTheaterName      = "Cineplex"
	TestTheaterLocation  = "Main St"
	TestScreenName       = "Screen 1"
	TestScreenRows       = 10
	TestScreenColumns    = 10
	TestShowPrice        = "12.50"
)

var (
	// far enough ahead to count as upcoming
	TestShowStart = time.Date(time.Now().Year()+1, time.June, 1, 18, 0, 0, 0, time.UTC)
)
