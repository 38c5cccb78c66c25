package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/molter/wordsearch/internal/model"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func seed(v int64) *int64 {
	return &v
}

// Test: Complete flow from word list creation to puzzle deletion
func (s *IntegrationSuite) TestWordListToPuzzleFlow() {
	// Step 1: Create a word list
	list, err := s.app.WordListService.CreateWordList(s.ctx, "animals", []string{"cat", "dog", "fox"})
	s.Require().NoError(err)
	s.Equal("animals", list.Name)
	s.ElementsMatch([]string{"CAT", "DOG", "FOX"}, list.Words)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), list.CreatedAt)

	// Step 2: Generate a puzzle from the list
	s.app.MockRandom.QueueString("abc123def456")
	puzzle, err := s.app.GeneratorService.CreatePuzzleFromWordList(s.ctx, "animals", 8, true, seed(7))
	s.Require().NoError(err)
	s.Equal(model.PuzzleID("pz-abc123def456"), puzzle.ID)
	s.ElementsMatch([]string{"CAT", "DOG", "FOX"}, puzzle.Words)
	s.Len(puzzle.Placements, 3)
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), puzzle.CreatedAt)

	// Step 3: The puzzle is persisted and retrievable
	stored, err := s.app.GeneratorService.GetPuzzle(s.ctx, puzzle.ID)
	s.Require().NoError(err)
	s.True(puzzle.Grid.Equal(stored.Grid))
	s.Equal(puzzle.Placements, stored.Placements)

	// Step 4: The same seed reproduces the same grid
	s.app.MockRandom.QueueString("ghi789jkl012")
	replay, err := s.app.GeneratorService.CreatePuzzleFromWordList(s.ctx, "animals", 8, true, seed(7))
	s.Require().NoError(err)
	s.NotEqual(puzzle.ID, replay.ID)
	s.True(puzzle.Grid.Equal(replay.Grid))

	// Step 5: Delete the puzzle
	err = s.app.GeneratorService.DeletePuzzle(s.ctx, puzzle.ID)
	s.Require().NoError(err)

	_, err = s.app.GeneratorService.GetPuzzle(s.ctx, puzzle.ID)
	s.ErrorIs(err, model.ErrPuzzleNotFound)

	// Step 6: Delete the word list; generation from it now fails
	err = s.app.WordListService.DeleteWordList(s.ctx, "animals")
	s.Require().NoError(err)

	_, err = s.app.GeneratorService.CreatePuzzleFromWordList(s.ctx, "animals", 8, true, seed(7))
	s.ErrorIs(err, model.ErrWordListNotFound)
}

// Test: Generation failure leaves nothing behind
func (s *IntegrationSuite) TestFailedGenerationStoresNothing() {
	_, err := s.app.WordListService.CreateWordList(s.ctx, "long", []string{"hippopotamus"})
	s.Require().NoError(err)

	s.app.MockRandom.QueueString("abc123def456")
	_, err = s.app.GeneratorService.CreatePuzzleFromWordList(s.ctx, "long", 4, true, seed(1))
	s.ErrorIs(err, model.ErrPlacementExhausted)

	_, err = s.app.GeneratorService.GetPuzzle(s.ctx, "pz-abc123def456")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

// Test: Duplicate word list names conflict
func (s *IntegrationSuite) TestDuplicateWordListName() {
	_, err := s.app.WordListService.CreateWordList(s.ctx, "animals", []string{"cat"})
	s.Require().NoError(err)

	_, err = s.app.WordListService.CreateWordList(s.ctx, "animals", []string{"dog"})
	s.ErrorIs(err, model.ErrWordListExists)
}
