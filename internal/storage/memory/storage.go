package memory

import (
	"context"
	"sync"

	"github.com/molter/wordsearch/internal/model"
	"github.com/molter/wordsearch/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	puzzles   map[model.PuzzleID]*model.Puzzle
	wordLists map[string]*model.WordList
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		puzzles:   make(map[model.PuzzleID]*model.Puzzle),
		wordLists: make(map[string]*model.WordList),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Puzzle operations

func (s *Storage) SavePuzzle(ctx context.Context, puzzle *model.Puzzle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.puzzles[puzzle.ID] = puzzle
	return nil
}

func (s *Storage) GetPuzzle(ctx context.Context, id model.PuzzleID) (*model.Puzzle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	puzzle, ok := s.puzzles[id]
	if !ok {
		return nil, model.ErrPuzzleNotFound
	}
	return puzzle, nil
}

func (s *Storage) DeletePuzzle(ctx context.Context, id model.PuzzleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.puzzles, id)
	return nil
}

// Word list operations

func (s *Storage) SaveWordList(ctx context.Context, list *model.WordList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wordLists[list.Name] = list
	return nil
}

func (s *Storage) GetWordList(ctx context.Context, name string) (*model.WordList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	list, ok := s.wordLists[name]
	if !ok {
		return nil, model.ErrWordListNotFound
	}
	return list, nil
}

func (s *Storage) DeleteWordList(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wordLists, name)
	return nil
}

func (s *Storage) WordListExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.wordLists[name]
	return ok, nil
}
