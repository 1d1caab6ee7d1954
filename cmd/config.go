package cmd

import "time"

// Config carries all runtime settings read from the environment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OrderAbandonAfter is the age past which an unpaid pending order
	// is cancelled by the background sweep.
	OrderAbandonAfter time.Duration
}
