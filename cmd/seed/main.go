// seed inserts a demo account and a handful of todos into the local dev
// database. Run: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/taskdeck/taskdeck/internal/infrastructure/postgres"
	"github.com/taskdeck/taskdeck/internal/password"
)

const (
	seedName     = "Seed User"
	seedEmail    = "seed@test.local"
	seedPassword = "password1"
)

var titles = []string{
	"Buy milk",
	"Write weekly report",
	"Review open pull requests",
	"Book dentist appointment",
	"Renew domain registration",
	"Clean up stale feature branches",
	"Plan sprint retro",
	"Water the plants",
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	if err := postgres.Migrate(ctx, dbURL); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	pool, err := postgres.NewPool(ctx, dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	hash, err := password.NewHasher(password.DefaultCost).Hash(seedPassword)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	var userID string
	err = pool.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id`,
		seedName, seedEmail, hash,
	).Scan(&userID)
	if err != nil {
		log.Fatalf("upsert seed user: %v", err)
	}

	inserted := 0
	for i, title := range titles {
		_, err := pool.Exec(ctx, `
			INSERT INTO tasks (user_id, title, completed)
			VALUES ($1, $2, $3)`,
			userID, title, i%3 == 0,
		)
		if err != nil {
			log.Fatalf("insert todo %q: %v", title, err)
		}
		inserted++
	}

	fmt.Printf("seeded user %s (%s / %s) with %d todos\n", userID, seedEmail, seedPassword, inserted)
}
