// Command main runs the database seeder for Questing.
package main

import (
	"flag"
	"log"

	"questing/internal/config"
	"questing/internal/database"
	"questing/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	numWorkspaces := flag.Int("workspaces", 10, "Number of workspaces to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)
	if err := s.Seed(seed.Options{
		NumUsers:      *numUsers,
		NumPosts:      *numPosts,
		NumWorkspaces: *numWorkspaces,
		ShouldClean:   *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
