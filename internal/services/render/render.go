// Package render produces the plain-text presentation of a puzzle:
// space-separated letters row by row, followed by the hidden words.
// The format is for human eyes, not for machines.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/molter/wordsearch/internal/model"
)

// Grid writes the letter grid to w, one space-separated row per line
func Grid(w io.Writer, grid *model.Grid) error {
	for row := 0; row < grid.Size; row++ {
		letters := make([]string, grid.Size)
		for col := 0; col < grid.Size; col++ {
			letters[col] = string(grid.Get(row, col))
		}
		if _, err := fmt.Fprintln(w, strings.Join(letters, " ")); err != nil {
			return err
		}
	}
	return nil
}

// Puzzle writes the grid followed by the word list
func Puzzle(w io.Writer, puzzle *model.Puzzle) error {
	if err := Grid(w, puzzle.Grid); err != nil {
		return err
	}
	if len(puzzle.Words) == 0 {
		return nil
	}
	_, err := fmt.Fprintf(w, "\nWords: %s\n", strings.Join(puzzle.Words, ", "))
	return err
}

// Solution writes the placement key, one word per line
func Solution(w io.Writer, puzzle *model.Puzzle) error {
	for _, p := range puzzle.Placements {
		if _, err := fmt.Fprintf(w, "%s: row %d, col %d, %s\n", p.Word, p.Row, p.Col, p.Dir.Name()); err != nil {
			return err
		}
	}
	return nil
}

// PuzzleString renders the puzzle to a string
func PuzzleString(puzzle *model.Puzzle) string {
	var b strings.Builder
	_ = Puzzle(&b, puzzle)
	return b.String()
}
