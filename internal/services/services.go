package services

import (
	"github.com/jmoiron/sqlx"
	"github.com/lk16/checkers/internal/config"
	"github.com/redis/go-redis/v9"
)

// Services contains the connections to the external services. Either may be nil when the
// corresponding URL is not configured.
type Services struct {
	Postgres *sqlx.DB
	Redis    *redis.Client
}

func InitServices(cfg *config.ServerConfig) (*Services, error) {
	services := &Services{}

	if cfg.PostgresURL != "" {
		postgres, err := InitPostgres(cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		services.Postgres = postgres
	}

	if cfg.RedisURL != "" {
		redis, err := InitRedis(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		services.Redis = redis
	}

	return services, nil
}

// Close closes all open connections.
func (s *Services) Close() error {
	if s.Redis != nil {
		if err := s.Redis.Close(); err != nil {
			return err
		}
	}
	if s.Postgres != nil {
		if err := s.Postgres.Close(); err != nil {
			return err
		}
	}
	return nil
}
