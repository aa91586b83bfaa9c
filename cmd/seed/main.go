package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/prasetya/tasklist-api/config"
	"github.com/prasetya/tasklist-api/pkg/helpers"
)

// Seeds a demo account with a couple of todos for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@tasklist.local"
	password := "demo-password"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	for _, text := range []string{"first task", "second task"} {
		if _, err := db.Exec(`
			INSERT INTO todos (author_id, text) VALUES ($1, $2)
		`, id, text); err != nil {
			log.Fatalf("failed to seed todo: %v", err)
		}
	}
	fmt.Println("seeded todos")
}
