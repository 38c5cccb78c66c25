package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/molter/wordsearch/internal/dependencies/clock"
	"github.com/molter/wordsearch/internal/model"
	"github.com/molter/wordsearch/internal/storage"
)

// Normalize prepares raw words for placement: trims surrounding
// whitespace, removes internal whitespace (so "NEW YORK" hides as
// "NEWYORK"), uppercases, and drops entries that end up empty.
// A word with any non-letter rune left after that is rejected.
func Normalize(words []string) ([]string, error) {
	cleaned := make([]string, 0, len(words))
	for _, w := range words {
		var b strings.Builder
		for _, r := range strings.TrimSpace(w) {
			if unicode.IsSpace(r) {
				continue
			}
			b.WriteRune(unicode.ToUpper(r))
		}
		word := b.String()
		if word == "" {
			continue
		}
		for _, r := range word {
			if r < 'A' || r > 'Z' {
				return nil, fmt.Errorf("%w: %q", model.ErrInvalidWord, w)
			}
		}
		cleaned = append(cleaned, word)
	}
	return cleaned, nil
}

// Service manages named word lists
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new word list Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// CreateWordList validates and stores a named word list. Words are
// normalized up front so a stored list is always directly placeable.
func (s *Service) CreateWordList(ctx context.Context, name string, words []string) (*model.WordList, error) {
	normalized, err := Normalize(words)
	if err != nil {
		return nil, err
	}
	if len(normalized) == 0 {
		return nil, model.ErrNoWords
	}

	exists, err := s.storage.WordListExists(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.ErrWordListExists
	}

	list := &model.WordList{
		Name:      name,
		Words:     normalized,
		CreatedAt: s.clock.Now(),
	}
	if err := s.storage.SaveWordList(ctx, list); err != nil {
		return nil, err
	}

	s.logger.Info("word list created",
		slog.String("name", name),
		slog.Int("words", len(normalized)),
	)
	return list, nil
}

// GetWordList retrieves a stored word list
func (s *Service) GetWordList(ctx context.Context, name string) (*model.WordList, error) {
	return s.storage.GetWordList(ctx, name)
}

// DeleteWordList removes a stored word list
func (s *Service) DeleteWordList(ctx context.Context, name string) error {
	if _, err := s.storage.GetWordList(ctx, name); err != nil {
		return err
	}
	return s.storage.DeleteWordList(ctx, name)
}

// LoadFromFile creates a word list from a file with one word per line.
// Blank lines and lines starting with '#' are skipped.
func (s *Service) LoadFromFile(ctx context.Context, name, path string) (*model.WordList, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return s.CreateWordList(ctx, name, words)
}

// Interface for dependency injection
type ServiceInterface interface {
	CreateWordList(ctx context.Context, name string, words []string) (*model.WordList, error)
	GetWordList(ctx context.Context, name string) (*model.WordList, error)
	DeleteWordList(ctx context.Context, name string) error
	LoadFromFile(ctx context.Context, name, path string) (*model.WordList, error)
}

var _ ServiceInterface = (*Service)(nil)
