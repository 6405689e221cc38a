package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"catchpac/internal/infra/db"
	"catchpac/internal/infra/repository"
	"catchpac/internal/pkg/config"

	"github.com/joho/godotenv"
)

// Grants admin to an existing user by email. Run as:
//
//	setadmin user@example.com
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: setadmin <email>")
		os.Exit(1)
	}
	email := os.Args[1]

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	granted, err := repository.NewUserRepository(pool).GrantAdminByEmail(ctx, email)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to grant admin: %v\n", err)
		os.Exit(1)
	}
	if granted == 0 {
		fmt.Fprintf(os.Stderr, "no user found with email %s\n", email)
		os.Exit(1)
	}

	fmt.Printf("granted admin to %s\n", email)
}
