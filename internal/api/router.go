package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/molter/wordsearch/internal/api/apierr"
	"github.com/molter/wordsearch/internal/api/handler"
	"github.com/molter/wordsearch/internal/api/middleware"
	"github.com/molter/wordsearch/internal/services/generator"
	"github.com/molter/wordsearch/internal/services/wordlist"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger           *slog.Logger
	GeneratorService *generator.Service
	WordListService  *wordlist.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	puzzleHandler := handler.NewPuzzleHandler(cfg.GeneratorService)
	wordListHandler := handler.NewWordListHandler(cfg.WordListService, cfg.GeneratorService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger, func(w http.ResponseWriter, _ *http.Request, _ any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Puzzle routes
	api.HandleFunc("/puzzles", puzzleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/puzzles/{id}", puzzleHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/puzzles/{id}/text", puzzleHandler.GetText).Methods(http.MethodGet)

	// Word list routes
	api.HandleFunc("/wordlists", wordListHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/wordlists/{name}", wordListHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/wordlists/{name}", wordListHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/wordlists/{name}/puzzles", wordListHandler.GeneratePuzzle).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
