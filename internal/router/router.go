package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/whytorch/travel-planner-api/internal/api/chat"
	"github.com/whytorch/travel-planner-api/internal/api/extractor"
	"github.com/whytorch/travel-planner-api/internal/api/itinerary"
	"github.com/whytorch/travel-planner-api/internal/api/matching"
	"github.com/whytorch/travel-planner-api/internal/api/photolocation"
	"github.com/whytorch/travel-planner-api/internal/api/places"
	"github.com/whytorch/travel-planner-api/internal/api/reviews"
	"github.com/whytorch/travel-planner-api/internal/api/routes"
	"github.com/whytorch/travel-planner-api/internal/api/waste"
)

// Config contains dependencies needed for the router setup
type Config struct {
	ItineraryHandler *itinerary.Handler
	ExtractorHandler *extractor.Handler
	MatchingHandler  *matching.Handler
	RoutesHandler    *routes.Handler
	PhotoHandler     *photolocation.Handler
	WasteHandler     *waste.Handler
	ChatHandler      *chat.Handler
	ReviewsHandler   *reviews.Handler
	PlacesHandler    *places.Handler
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (logger, requestID, recoverer) are expected to be
// applied before mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/itinerary/generate", cfg.ItineraryHandler.Generate)
		r.Post("/itinerary/extract", cfg.ExtractorHandler.Extract)
		r.Post("/routes/generate", cfg.RoutesHandler.Generate)
		r.Post("/tourists/match", cfg.MatchingHandler.Match)
		r.Post("/photos/locate", cfg.PhotoHandler.Locate)
		r.Post("/waste/detect", cfg.WasteHandler.Detect)
		r.Post("/chat", cfg.ChatHandler.Chat)
		r.Post("/reviews/analyze", cfg.ReviewsHandler.Analyze)
		r.Post("/places/accessible", cfg.PlacesHandler.Accessible)
	})

	return r
}
