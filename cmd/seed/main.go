package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/wastewise/wastewise-api/config"
	"github.com/wastewise/wastewise-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@wastewise.local"
	password := "changeme123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO accounts (fname, lname, email, mobile, residence_id, password_hash, admintype)
		VALUES ('City', 'Admin', $1, '0000000000', 'HQ', $2, true)
		ON CONFLICT (email) DO UPDATE SET admintype = true
		RETURNING id
	`, email, hash).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", id, email, password)

	// Base waste categories
	types := map[string]string{
		"Organic":    "Food scraps, garden waste and other compostable material",
		"Recyclable": "Paper, cardboard, glass, metal and clean plastics",
		"Hazardous":  "Batteries, chemicals, paint and electronic waste",
		"General":    "Non-recyclable household waste",
	}
	for name, desc := range types {
		if _, err := db.Exec(`
			INSERT INTO waste_types (name, description)
			SELECT $1, $2
			WHERE NOT EXISTS (SELECT 1 FROM waste_types WHERE name = $1)
		`, name, desc); err != nil {
			log.Fatalf("failed to seed waste type %s: %v", name, err)
		}
	}
	fmt.Println("base waste types ensured")
}
