package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docqa/internal/config"
	"docqa/internal/genai"
	handlers "docqa/internal/http/handler"
	"docqa/internal/http/middleware"
	"docqa/internal/otel"
	"docqa/internal/partition"
	"docqa/internal/repository/memory"
	"docqa/internal/service"
	"docqa/internal/storage"
	"docqa/internal/users"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	// Initialize tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(context.Background(), time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(ctx)
	}()

	// Local storage for raw uploads (directory created if missing)
	uploadStore, err := storage.NewLocal(cfg.Storage.UploadDir)
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	// External collaborators
	partitioner, err := partition.NewUnstructured(cfg.Partition, cfg.Storage.OutputDir)
	if err != nil {
		log.Fatalf("failed to initialize partition client: %v", err)
	}
	generator, err := genai.NewGemini(cfg.GenAI)
	if err != nil {
		log.Fatalf("failed to initialize genai client: %v", err)
	}
	userSvc, err := users.NewSupabase(cfg.Users)
	if err != nil {
		log.Fatalf("failed to initialize users client: %v", err)
	}

	// In-memory document store, injected into the service; state is
	// process-local and lost on restart.
	docStore := memory.NewDocumentMemory()
	docSvc := service.NewDocumentService(uploadStore, docStore, partitioner, generator, cfg.GenAI.MaxPromptBytes)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.AllowedOrigins, ","),
		AllowCredentials: true,
	}))
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())

	// Prometheus request counting and /metrics exposition
	reg := prometheus.NewRegistry()
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize prometheus middleware: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, docSvc, userSvc, cfg.Storage.UploadDir, cfg.Storage.OutputDir)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
