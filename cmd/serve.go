package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"replygen/internal/api"
	"replygen/internal/config"
	"replygen/internal/ratelimit"
	"replygen/internal/redis"
	"replygen/internal/service/assistant"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Start the HTTP API on basic_config.server_address (REPLYGEN_ADDR overrides it).

Rate-limit counters live in process memory unless redis.enabled is set, in which
case they are shared through Redis.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	completer, err := newCompleter(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init completion client: %w", err)
	}
	assistantService, err := assistant.NewService(completer)
	if err != nil {
		return fmt.Errorf("init assistant service: %w", err)
	}

	limiter, closeLimiter, err := newLimiter(cfg)
	if err != nil {
		return err
	}
	defer closeLimiter()

	handlers := api.NewHandler(assistantService, limiter, cfg.MaxUploadBytes(), cfg.BasicConfig.AllowedOrigins)
	router := gin.Default()
	handlers.RegisterRoutes(router)

	log.Printf("provider: %s, model: %s, rate limit: %s", cfg.Provider.Name, cfg.Provider.Model, limiter.Describe())
	if err := router.Run(cfg.BasicConfig.ServerAddress); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}
	return nil
}

// newLimiter picks the Redis limiter when enabled, otherwise an in-memory one.
func newLimiter(c *config.Config) (*ratelimit.Limiter, func(), error) {
	window := time.Duration(c.RateLimit.WindowSeconds) * time.Second
	if !c.Redis.Enabled {
		return ratelimit.NewMemory(c.RateLimit.Requests, window), func() {}, nil
	}
	rdb, err := redis.NewRedisClient(c)
	if err != nil {
		return nil, nil, fmt.Errorf("create redis client: %w", err)
	}
	limiter, err := ratelimit.NewRedis(rdb, c.RateLimit.Requests, window)
	if err != nil {
		rdb.Close()
		return nil, nil, err
	}
	return limiter, func() { rdb.Close() }, nil
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
