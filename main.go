package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	database "github.com/whytorch/travel-planner-api/app/db"
	appLogger "github.com/whytorch/travel-planner-api/app/logger"
	"github.com/whytorch/travel-planner-api/app/tracer"
	"github.com/whytorch/travel-planner-api/config"
	"github.com/whytorch/travel-planner-api/internal/api/chat"
	"github.com/whytorch/travel-planner-api/internal/api/extractor"
	generativeAI "github.com/whytorch/travel-planner-api/internal/api/generative_ai"
	"github.com/whytorch/travel-planner-api/internal/api/itinerary"
	"github.com/whytorch/travel-planner-api/internal/api/matching"
	"github.com/whytorch/travel-planner-api/internal/api/photolocation"
	"github.com/whytorch/travel-planner-api/internal/api/places"
	"github.com/whytorch/travel-planner-api/internal/api/reviews"
	"github.com/whytorch/travel-planner-api/internal/api/routes"
	"github.com/whytorch/travel-planner-api/internal/api/waste"
	"github.com/whytorch/travel-planner-api/internal/router"
)

func main() {
	// Use standard log until slog is configured, in case godotenv fails
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found or error loading:", err)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("FATAL: Error initializing config: %v", err)
	}

	logger := setupLogger()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tracer.InitTracingAndMetrics(cfg.Handlers.Prometheus.Port)

	// --- Document Store ---
	mongoClient, mongoDB, err := database.ConnectMongo(ctx, cfg.Repositories.Mongo.URI, cfg.Repositories.Mongo.DB, logger)
	if err != nil {
		logger.Error("Failed to connect to document store", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect document store", slog.Any("error", err))
		}
	}()

	// --- Relational Store (hotel budget data, optional) ---
	var budgetRepo itinerary.BudgetRepository
	dbConfig, err := database.NewDatabaseConfig(&cfg, logger)
	if err != nil {
		logger.Warn("Postgres not configured, budget suggestions disabled", slog.Any("error", err))
	} else {
		if err := database.RunMigrations(dbConfig.ConnectionURL, logger); err != nil {
			logger.Error("Failed to run database migrations", slog.Any("error", err))
			os.Exit(1)
		}
		pool, err := database.Init(dbConfig.ConnectionURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.Any("error", err))
			os.Exit(1)
		}
		defer pool.Close()
		if !database.WaitForDB(ctx, pool, logger) {
			logger.Error("Database not ready after waiting, exiting.")
			os.Exit(1)
		}
		budgetRepo = itinerary.NewBudgetRepository(pool)
	}

	// --- Model Clients ---
	chatClient := generativeAI.NewChatClient(cfg.LLM.BaseURL, os.Getenv("API_KEY"), cfg.LLM.Timeout)
	geminiClient, err := generativeAI.NewAIClient(ctx, cfg.LLM.ExtractionModel)
	if err != nil {
		logger.Error("Failed to create extraction model client", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Alert Channel ---
	var notifier waste.Notifier
	if token := os.Getenv("BOT_TOKEN"); token != "" {
		chatID, err := strconv.ParseInt(os.Getenv("CHAT_ID"), 10, 64)
		if err != nil {
			logger.Error("CHAT_ID must be a numeric Telegram chat ID", slog.Any("error", err))
			os.Exit(1)
		}
		notifier, err = waste.NewTelegramNotifier(token, chatID)
		if err != nil {
			logger.Error("Failed to authenticate telegram bot", slog.Any("error", err))
			os.Exit(1)
		}
	} else {
		logger.Warn("BOT_TOKEN not set, waste alerts will not be relayed")
	}

	analyzer, err := reviews.NewSentimentAnalyzer()
	if err != nil {
		logger.Error("Failed to restore sentiment model", slog.Any("error", err))
		os.Exit(1)
	}

	// --- Dependency Injection ---
	itineraryRepo := itinerary.NewRepository(mongoDB)
	itineraryService := itinerary.NewService(chatClient, cfg.LLM.PlannerModel, itineraryRepo, budgetRepo, logger)
	itineraryHandler := itinerary.NewHandler(itineraryService, logger)

	extractorService := extractor.NewService(geminiClient, logger)
	extractorHandler := extractor.NewHandler(extractorService, logger)

	matchingRepo := matching.NewRepository(mongoDB)
	matchingService := matching.NewService(matchingRepo, logger)
	matchingHandler := matching.NewHandler(matchingService, logger)

	routesRepo := routes.NewRepository(mongoDB)
	routesService := routes.NewService(itineraryService, routesRepo, logger)
	routesHandler := routes.NewHandler(routesService, logger)

	geocoder := photolocation.NewNominatimClient(cfg.Geocoder.BaseURL, cfg.Geocoder.UserAgent)
	photoService := photolocation.NewService(geocoder, logger)
	photoHandler := photolocation.NewHandler(photoService, logger)

	wasteService := waste.NewService(chatClient, cfg.LLM.VisionModel, notifier, logger)
	wasteHandler := waste.NewHandler(wasteService, logger)

	chatService := chat.NewService(chatClient, cfg.LLM.PlannerModel, chat.NewSessionStore(), logger)
	chatHandler := chat.NewHandler(chatService, logger)

	placesClient := places.NewClient(cfg.Maps.BaseURL, os.Getenv("GOOGLE_MAPS_API_KEY"))
	placesService := places.NewService(placesClient, logger)
	placesHandler := places.NewHandler(placesService, logger)

	reviewsService := reviews.NewService(placesClient, analyzer, logger)
	reviewsHandler := reviews.NewHandler(reviewsService, logger)

	mainRouter := router.SetupRouter(&router.Config{
		ItineraryHandler: itineraryHandler,
		ExtractorHandler: extractorHandler,
		MatchingHandler:  matchingHandler,
		RoutesHandler:    routesHandler,
		PhotoHandler:     photoHandler,
		WasteHandler:     wasteHandler,
		ChatHandler:      chatHandler,
		ReviewsHandler:   reviewsHandler,
		PlacesHandler:    placesHandler,
	})

	mux := chi.NewMux()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.RealIP)
	mux.Use(appLogger.StructuredLogger(logger))
	mux.Use(middleware.Recoverer)
	mux.Use(middleware.StripSlashes)
	mux.Use(middleware.Timeout(cfg.Server.Timeout))
	mux.Use(middleware.Compress(5, "application/json"))
	mux.Mount("/", mainRouter)

	serverAddress := fmt.Sprintf(":%s", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddress,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	go func() {
		logger.Info("Starting HTTP server", slog.String("address", serverAddress))
		err := srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server ListenAndServe error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server graceful shutdown failed", slog.Any("error", err))
	} else {
		logger.Info("HTTP server gracefully stopped")
	}

	logger.Info("Application shut down complete.")
}

// setupLogger configures and returns the application logger.
func setupLogger() *slog.Logger {
	var logger *slog.Logger
	env := os.Getenv("APP_ENV")

	if env == "development" || env == "" {
		// Colored logs for development
		tintOpts := &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
			AddSource:  true,
		}
		logger = slog.New(tint.NewHandler(os.Stdout, tintOpts))
		log.Println("Initialized development logger (tint)")
	} else {
		// JSON logs for production
		jsonOpts := &slog.HandlerOptions{
			Level:     slog.LevelInfo,
			AddSource: false,
		}
		logger = slog.New(slog.NewJSONHandler(os.Stdout, jsonOpts))
		log.Println("Initialized production logger (JSON)")
	}
	return logger
}
