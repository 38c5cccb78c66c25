package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/molter/wordsearch/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func testPuzzle(id model.PuzzleID) *model.Puzzle {
	grid := model.NewGrid(3)
	grid.Set(0, 0, 'C')
	grid.Set(0, 1, 'A')
	grid.Set(0, 2, 'T')
	return &model.Puzzle{
		ID:    id,
		Size:  3,
		Grid:  grid,
		Words: []string{"CAT"},
		Placements: []model.Placement{
			{Word: "CAT", Row: 0, Col: 0, Dir: model.Right},
		},
		CreatedAt: time.Now(),
	}
}

// Puzzle tests

func (s *StorageSuite) TestSaveAndGetPuzzle() {
	puzzle := testPuzzle("pz-1")

	err := s.storage.SavePuzzle(s.ctx, puzzle)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "pz-1")
	s.Require().NoError(err)
	s.Equal(puzzle.ID, retrieved.ID)
	s.True(puzzle.Grid.Equal(retrieved.Grid))
}

func (s *StorageSuite) TestGetPuzzleNotFound() {
	_, err := s.storage.GetPuzzle(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *StorageSuite) TestDeletePuzzle() {
	_ = s.storage.SavePuzzle(s.ctx, testPuzzle("pz-1"))

	err := s.storage.DeletePuzzle(s.ctx, "pz-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPuzzle(s.ctx, "pz-1")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

// Word list tests

func (s *StorageSuite) TestSaveAndGetWordList() {
	list := &model.WordList{
		Name:      "animals",
		Words:     []string{"cat", "dog"},
		CreatedAt: time.Now(),
	}

	err := s.storage.SaveWordList(s.ctx, list)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetWordList(s.ctx, "animals")
	s.Require().NoError(err)
	s.Equal(list.Words, retrieved.Words)
}

func (s *StorageSuite) TestGetWordListNotFound() {
	_, err := s.storage.GetWordList(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrWordListNotFound)
}

func (s *StorageSuite) TestDeleteWordList() {
	_ = s.storage.SaveWordList(s.ctx, &model.WordList{Name: "animals"})

	err := s.storage.DeleteWordList(s.ctx, "animals")
	s.Require().NoError(err)

	_, err = s.storage.GetWordList(s.ctx, "animals")
	s.ErrorIs(err, model.ErrWordListNotFound)
}

func (s *StorageSuite) TestWordListExists() {
	exists, err := s.storage.WordListExists(s.ctx, "animals")
	s.Require().NoError(err)
	s.False(exists)

	_ = s.storage.SaveWordList(s.ctx, &model.WordList{Name: "animals"})

	exists, err = s.storage.WordListExists(s.ctx, "animals")
	s.Require().NoError(err)
	s.True(exists)
}
