package storage

import (
	"context"

	"github.com/molter/wordsearch/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Puzzle operations
	SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error
	GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error)
	DeletePuzzle(ctx context.Context, id model.PuzzleID) error

	// Word list operations
	SaveWordList(ctx context.Context, list *model.WordList) error
	GetWordList(ctx context.Context, name string) (*model.WordList, error)
	DeleteWordList(ctx context.Context, name string) error
	WordListExists(ctx context.Context, name string) (bool, error)
}
