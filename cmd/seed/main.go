package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/recipeshare/recipeshare/config"
	"github.com/recipeshare/recipeshare/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@recipeshare.com"
	password := "password123"
	name := "Admin"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, role, status)
		VALUES ($1, $2, $3, 'ADMIN', 'ACTIVE')
		ON CONFLICT (email) DO UPDATE SET role = 'ADMIN', status = 'ACTIVE'
		RETURNING id
	`, email, hash, name).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)

	categories := []struct {
		Name string
		Icon string
	}{
		{"Makanan Utama", "🍛"},
		{"Sarapan", "🍳"},
		{"Camilan", "🍟"},
		{"Minuman", "🥤"},
		{"Dessert", "🍰"},
	}
	for _, c := range categories {
		if _, err := db.Exec(`
			INSERT INTO recipe_categories (name, icon)
			VALUES ($1, $2)
			ON CONFLICT (name) DO NOTHING
		`, c.Name, c.Icon); err != nil {
			log.Fatalf("failed to seed category %q: %v", c.Name, err)
		}
	}
	fmt.Printf("seeded %d categories\n", len(categories))
}
