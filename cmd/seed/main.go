package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/dailyhub/config"
	"github.com/oksasatya/dailyhub/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@dailyhub.dev"
	password := "password123"
	name := "demoUser"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE SET name=EXCLUDED.name
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", id, email, password)

	for _, title := range []string{"Buy groceries", "Walk the dog", "Write a blog post"} {
		if _, err := db.Exec(`INSERT INTO tasks (title) VALUES ($1)`, title); err != nil {
			log.Fatalf("failed to seed task: %v", err)
		}
	}
	fmt.Println("seeded sample tasks")

	for _, genre := range []string{"FANTASY", "SCIENCE FICTION", "HISTORY"} {
		if _, err := db.Exec(`
			INSERT INTO categories (genre) VALUES ($1)
			ON CONFLICT (genre) DO NOTHING
		`, genre); err != nil {
			log.Fatalf("failed to seed category: %v", err)
		}
	}
	fmt.Println("seeded sample categories")
}
