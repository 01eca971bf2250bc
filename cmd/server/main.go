package main

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"tweetshot/internal/adapters/cache"
	"tweetshot/internal/adapters/extract"
	"tweetshot/internal/adapters/render"
	"tweetshot/internal/adapters/web"
	"tweetshot/internal/usecases"
	"tweetshot/pkg/log"
)

func main() {
	_ = godotenv.Load()

	logger := log.New(envOr("LOG_LEVEL", "info"), os.Stdout)
	log.SetDefault(logger)

	// Load render theme
	theme, err := render.LoadTheme(envOr("THEME_PATH", "config/theme.yaml"))
	if err != nil {
		logger.Warn("theme load failed, using defaults", "error", err)
		theme = render.DefaultTheme()
	}

	// Font parsing failure is fatal: the output is purely visual.
	renderer, err := render.NewRenderer(theme)
	if err != nil {
		logger.Error("failed to initialize renderer", "error", err)
		os.Exit(1)
	}

	// Image store: Redis when configured, in-memory otherwise.
	ttl := storeTTL()
	store, err := buildStore(ttl)
	if err != nil {
		logger.Error("failed to initialize store", "error", err)
		os.Exit(1)
	}

	// Use cases
	extractor := extract.New()
	generateUC := usecases.NewGenerateTweetUseCase(extractor, renderer, store)
	getImageUC := usecases.NewGetImageUseCase(store)

	// Web handlers
	port := envOr("PORT", "8000")
	agentURL := envOr("AGENT_URL", "http://localhost:"+port)
	handlers := web.NewHandlers(generateUC, getImageUC, envOr("AGENT_NAME", "tweetshot"), agentURL)
	rateLimiter := web.NewRateLimiter(30, time.Minute) // 30 renders/min per IP

	app := fiber.New(fiber.Config{
		AppName: "tweetshot",
	})

	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers, rateLimiter)

	logger.Info("starting tweetshot", "port", port, "ttl", ttl.String())
	if err := app.Listen(":" + port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// buildStore picks Redis when REDIS_URL or REDIS_ADDR is set.
func buildStore(ttl time.Duration) (usecases.ImageStore, error) {
	url := os.Getenv("REDIS_URL")
	addr := os.Getenv("REDIS_ADDR")
	if url == "" && addr == "" {
		log.GlobalInfo("no redis configured, using in-memory store")
		return cache.NewMemoryStore(ttl), nil
	}

	db, _ := strconv.Atoi(envOr("REDIS_DB", "0"))
	client, err := cache.NewRedisClient(url, addr, os.Getenv("REDIS_PASSWORD"), db)
	if err != nil {
		return nil, err
	}
	return cache.NewRedisStore(client, ttl), nil
}

// storeTTL returns the image expiry from the environment (default 24h).
func storeTTL() time.Duration {
	hours := os.Getenv("CACHE_TTL_HOURS")
	if hours == "" {
		return 24 * time.Hour
	}

	h, err := strconv.Atoi(hours)
	if err != nil || h <= 0 {
		log.GlobalWarn("invalid CACHE_TTL_HOURS value, using default 24h")
		return 24 * time.Hour
	}
	return time.Duration(h) * time.Hour
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
