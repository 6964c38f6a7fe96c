package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/resume-matcher/internal/config"
	"alfredoptarigan/resume-matcher/internal/handlers"
	"alfredoptarigan/resume-matcher/internal/logging"
	"alfredoptarigan/resume-matcher/internal/repositories"
	"alfredoptarigan/resume-matcher/internal/services"
)

func main() {
	cfg := config.Load()

	log := logging.ForEnv(cfg.Server.Env, cfg.Log.Level)
	defer log.Sync()
	log.Info("config loaded", "env", cfg.Server.Env)

	// History is optional; without it the service keeps nothing.
	var historyRepo repositories.AnalysisRepository
	var historyHandler *handlers.HistoryHandler
	if cfg.History.Enabled {
		db, err := config.InitDatabase(cfg)
		if err != nil {
			log.Fatal("failed to initialize database", "err", err)
		}
		historyRepo = repositories.NewAnalysisRepository(db)
		historyHandler = handlers.NewHistoryHandler(historyRepo)
		log.Info("analysis history enabled", "database", cfg.Database.DBName)
	}

	ctx := context.Background()

	geminiService, err := services.NewGeminiService(ctx, cfg.Gemini, log)
	if err != nil {
		log.Fatal("failed to initialize gemini", "err", err)
	}
	log.Info("gemini initialized", "model", cfg.Gemini.Model)

	analyzerService := services.NewAnalyzerService(
		geminiService,
		services.NewPDFParserService(),
		cfg.Gemini.MaxRetries,
		log,
	)

	analyzeHandler := handlers.NewAnalyzeHandler(
		analyzerService,
		historyRepo,
		cfg.Upload.MaxFileSize,
		log,
	)

	app := fiber.New(fiber.Config{
		AppName:      "Resume Matcher API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize) + 1<<20,
		ErrorHandler: handlers.ErrorHandler(cfg.Upload.MaxFileSize, func(c *fiber.Ctx, err error) {
			log.Error("request failed", "method", c.Method(), "path", c.Path(), "err", err)
		}),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	handlers.RegisterRoutes(app, analyzeHandler, historyHandler)

	app.Get("/", func(c *fiber.Ctx) error {
		endpoints := []string{"POST /analyze", "GET /health"}
		if historyHandler != nil {
			endpoints = append(endpoints, "GET /api/v1/analyses", "GET /api/v1/analyses/:id")
		}
		return c.JSON(fiber.Map{
			"message":   "Resume Matcher API",
			"version":   "1.0.0",
			"endpoints": endpoints,
		})
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Error("server forced to shutdown", "err", err)
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info("server starting", "addr", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", "err", err)
	}
}
