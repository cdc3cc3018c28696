package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"studentms/config"
	"studentms/pkg/helpers"
)

// Seeds the bootstrap admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
// Idempotent: an existing admin account is left untouched.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	var exists bool
	if err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, cfg.AdminEmail).Scan(&exists); err != nil {
		log.Fatalf("failed to check admin account: %v", err)
	}
	if exists {
		fmt.Println("Admin account already exists. Skipping seed.")
		return
	}

	hash, err := helpers.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, role)
		VALUES ($1, $2, $3, 'admin')
		RETURNING id
	`, cfg.AdminEmail, hash, "Administrator").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", id, cfg.AdminEmail)
}
