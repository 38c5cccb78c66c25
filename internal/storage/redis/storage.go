package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/molter/wordsearch/internal/model"
	"github.com/molter/wordsearch/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	data, err := json.Marshal(puzzle)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, puzzleKey(puzzle.ID), data, s.cfg.PuzzleTTL).Err()
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	data, err := s.client.Get(ctx, puzzleKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrPuzzleNotFound
		}
		return nil, err
	}

	var puzzle model.Puzzle
	if err := json.Unmarshal(data, &puzzle); err != nil {
		return nil, err
	}
	return &puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	return s.client.Del(ctx, puzzleKey(id)).Err()
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, list *model.WordList) error {
	data, err := json.Marshal(list)
	if err != nil {
		return err
	}
	// No TTL: word lists are curated data, not generated artifacts
	return s.client.Set(ctx, wordListKey(list.Name), data, 0).Err()
}

func (s *Storage) GetWordList(ctx context.Context, name string) (*model.WordList, error) {
	data, err := s.client.Get(ctx, wordListKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrWordListNotFound
		}
		return nil, err
	}

	var list model.WordList
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *Storage) DeleteWordList(ctx context.Context, name string) error {
	return s.client.Del(ctx, wordListKey(name)).Err()
}

func (s *Storage) WordListExists(ctx context.Context, name string) (bool, error) {
	exists, err := s.client.Exists(ctx, wordListKey(name)).Result()
	if err != nil {
		return false, err
	}
	return exists > 0, nil
}
