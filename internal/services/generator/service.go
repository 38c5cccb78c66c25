package generator

import (
	"context"
	"log/slog"
	"sort"

	"github.com/molter/wordsearch/internal/dependencies/clock"
	"github.com/molter/wordsearch/internal/dependencies/random"
	"github.com/molter/wordsearch/internal/model"
	"github.com/molter/wordsearch/internal/services/wordlist"
	"github.com/molter/wordsearch/internal/storage"
)

// idAlphabet is used for puzzle identifiers
const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Request describes one puzzle generation
type Request struct {
	Words          []string
	Size           int
	AllowDiagonals bool
	// Seed makes the generation reproducible; nil draws a fresh stream
	Seed *int64
}

// Generate builds a word search puzzle: normalizes the words, places
// them all via backtracking, and fills the leftover cells with random
// letters. On failure no partial grid is returned.
func Generate(req Request) (*model.Puzzle, error) {
	var rng random.Random
	if req.Seed != nil {
		rng = random.NewSeeded(*req.Seed)
	} else {
		rng = random.New()
	}
	return generateWithRandom(req, rng)
}

// generateWithRandom runs the generation against a caller-supplied
// RNG stream. The stream is consumed by candidate shuffles first and
// the random fill second; reproducibility depends on that exact order.
func generateWithRandom(req Request, rng random.Random) (*model.Puzzle, error) {
	if req.Size < 0 {
		return nil, model.ErrInvalidSize
	}

	words, err := wordlist.Normalize(req.Words)
	if err != nil {
		return nil, err
	}

	// Longer words have fewer valid placements; resolving them first
	// prunes the search sooner.
	sort.SliceStable(words, func(i, j int) bool {
		return len(words[i]) > len(words[j])
	})

	runeWords := make([][]rune, len(words))
	for i, w := range words {
		runeWords[i] = []rune(w)
	}

	e := newEngine(req.Size, model.Directions(req.AllowDiagonals), rng)
	if !e.placeWords(runeWords, 0) {
		return nil, model.ErrPlacementExhausted
	}
	e.fillEmpty()

	return &model.Puzzle{
		Size:           req.Size,
		Grid:           e.grid,
		Words:          words,
		Placements:     e.placements,
		AllowDiagonals: req.AllowDiagonals,
		Seed:           req.Seed,
	}, nil
}

// Service generates puzzles and persists them
type Service struct {
	storage storage.Storage
	random  random.Random
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new generator Service. The Random here mints puzzle
// IDs only; each generation builds its own stream from the request seed.
func New(storage storage.Storage, random random.Random, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		random:  random,
		clock:   clock,
		logger:  logger,
	}
}

// CreatePuzzle generates a puzzle from the request and stores it
func (s *Service) CreatePuzzle(ctx context.Context, req Request) (*model.Puzzle, error) {
	puzzle, err := Generate(req)
	if err != nil {
		return nil, err
	}

	puzzle.ID = model.PuzzleID("pz-" + s.random.String(12, idAlphabet))
	puzzle.CreatedAt = s.clock.Now()

	if err := s.storage.SavePuzzle(ctx, puzzle); err != nil {
		return nil, err
	}

	s.logger.Info("puzzle generated",
		slog.String("puzzle_id", string(puzzle.ID)),
		slog.Int("size", puzzle.Size),
		slog.Int("words", len(puzzle.Words)),
		slog.Bool("diagonals", puzzle.AllowDiagonals),
	)
	return puzzle, nil
}

// CreatePuzzleFromWordList generates a puzzle from a stored word list
func (s *Service) CreatePuzzleFromWordList(ctx context.Context, name string, size int, allowDiagonals bool, seed *int64) (*model.Puzzle, error) {
	list, err := s.storage.GetWordList(ctx, name)
	if err != nil {
		return nil, err
	}

	return s.CreatePuzzle(ctx, Request{
		Words:          list.Words,
		Size:           size,
		AllowDiagonals: allowDiagonals,
		Seed:           seed,
	})
}

// GetPuzzle retrieves a stored puzzle
func (s *Service) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	return s.storage.GetPuzzle(ctx, id)
}

// DeletePuzzle removes a stored puzzle
func (s *Service) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	if _, err := s.storage.GetPuzzle(ctx, id); err != nil {
		return err
	}
	return s.storage.DeletePuzzle(ctx, id)
}

// Interface for dependency injection
type ServiceInterface interface {
	CreatePuzzle(ctx context.Context, req Request) (*model.Puzzle, error)
	CreatePuzzleFromWordList(ctx context.Context, name string, size int, allowDiagonals bool, seed *int64) (*model.Puzzle, error)
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error
}

var _ ServiceInterface = (*Service)(nil)
