package response

import (
	"time"

	"github.com/molter/wordsearch/internal/model"
)

// Placement represents a committed word placement in API responses
type Placement struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

// PlacementFromModel converts model.Placement
func PlacementFromModel(p model.Placement) Placement {
	return Placement{
		Word:      p.Word,
		Row:       p.Row,
		Col:       p.Col,
		Direction: p.Dir.Name(),
	}
}

// Puzzle represents a puzzle in API responses. Solution is only
// populated when the caller asked for it.
type Puzzle struct {
	ID             string      `json:"id"`
	Size           int         `json:"size"`
	Cells          [][]string  `json:"cells"`
	Words          []string    `json:"words"`
	AllowDiagonals bool        `json:"allow_diagonals"`
	Seed           *int64      `json:"seed,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	Solution       []Placement `json:"solution,omitempty"`
}

// PuzzleFromModel converts model.Puzzle to a response Puzzle
func PuzzleFromModel(p *model.Puzzle, includeSolution bool) Puzzle {
	cells := make([][]string, p.Size)
	for row := 0; row < p.Size; row++ {
		cells[row] = make([]string, p.Size)
		for col := 0; col < p.Size; col++ {
			cells[row][col] = string(p.Grid.Get(row, col))
		}
	}

	var solution []Placement
	if includeSolution {
		solution = make([]Placement, len(p.Placements))
		for i, pl := range p.Placements {
			solution[i] = PlacementFromModel(pl)
		}
	}

	return Puzzle{
		ID:             string(p.ID),
		Size:           p.Size,
		Cells:          cells,
		Words:          p.Words,
		AllowDiagonals: p.AllowDiagonals,
		Seed:           p.Seed,
		CreatedAt:      p.CreatedAt,
		Solution:       solution,
	}
}

// WordList represents a word list in API responses
type WordList struct {
	Name      string    `json:"name"`
	Words     []string  `json:"words"`
	CreatedAt time.Time `json:"created_at"`
}

// WordListFromModel converts model.WordList
func WordListFromModel(l *model.WordList) WordList {
	return WordList{
		Name:      l.Name,
		Words:     l.Words,
		CreatedAt: l.CreatedAt,
	}
}
