// Package bootstrap initializes shared runtime dependencies for commands.
package bootstrap

import (
	"fmt"

	"questing/internal/cache"
	"questing/internal/config"
	"questing/internal/database"
	"questing/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis and optionally runs demo seeding.
// The Redis client may be nil when the server is unreachable; callers are
// expected to degrade to cache-less operation.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if opts.SeedDemoData {
		s := seed.NewSeeder(db)
		if err := s.Seed(seed.Options{
			NumUsers:      20,
			NumPosts:      60,
			NumWorkspaces: 5,
			ShouldClean:   false,
		}); err != nil {
			return nil, nil, fmt.Errorf("demo seeding failed: %w", err)
		}
	}

	return db, r, nil
}
