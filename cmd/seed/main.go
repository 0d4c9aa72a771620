package main

import (
	"context"
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"coursebay/internal/config"
	"coursebay/internal/db"
	"coursebay/internal/model"
	"coursebay/internal/repository"
)

// Seed creates the bootstrap admin and a few sample courses. The admin route
// group is fully token-gated, so the first admin cannot be created over HTTP.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	mongoDB, err := db.NewMongo(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	adminRepo := repository.NewAdminRepository(mongoDB)
	courseRepo := repository.NewCourseRepository(mongoDB)

	email := getEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	password := getEnv("SEED_ADMIN_PASSWORD", "changeme")
	name := getEnv("SEED_ADMIN_NAME", "Admin")

	if existing, err := adminRepo.FindByEmail(ctx, email); err == nil && existing != nil {
		log.Printf("Admin %s already exists, skipping admin creation", email)
	} else {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
		if err != nil {
			log.Fatalf("Failed to hash admin password: %v", err)
		}
		admin := &model.Admin{
			Email:        email,
			PasswordHash: string(hash),
			Name:         name,
		}
		if err := adminRepo.Create(ctx, admin); err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Created admin %s (%s)", name, email)
	}

	courses := []model.Course{
		{Title: "Go from Scratch", Description: "Syntax, tooling and the standard library.", Price: 49.99},
		{Title: "Practical MongoDB", Description: "Schema design and the query language.", Price: 39.99},
		{Title: "REST API Design", Description: "Resource modeling, auth and versioning.", Price: 29.99},
	}
	created := 0
	for i := range courses {
		if err := courseRepo.Create(ctx, &courses[i]); err != nil {
			log.Fatalf("Failed to create course %q: %v", courses[i].Title, err)
		}
		created++
	}
	log.Printf("Seed completed: %d sample courses created", created)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
