package generator

import (
	"github.com/molter/wordsearch/internal/dependencies/random"
	"github.com/molter/wordsearch/internal/model"
)

// candidate is a prospective placement for a single word
type candidate struct {
	row int
	col int
	dir model.Direction
}

// engine owns the grid state for one generation run. It is built, used
// and discarded inside a single call; nothing here is safe for
// concurrent use and nothing needs to be.
type engine struct {
	grid       *model.Grid
	directions []model.Direction
	rng        random.Random
	placements []model.Placement
}

func newEngine(size int, directions []model.Direction, rng random.Random) *engine {
	return &engine{
		grid:       model.NewGrid(size),
		directions: directions,
		rng:        rng,
	}
}

// canPlace reports whether word fits starting at (row, col) stepping
// along dir: every cell in-bounds and either empty or already holding
// the same letter, so words may cross each other.
func (e *engine) canPlace(word []rune, row, col int, dir model.Direction) bool {
	for i, letter := range word {
		r := row + i*dir.DRow
		c := col + i*dir.DCol
		if !e.grid.InBounds(r, c) {
			return false
		}
		if cell := e.grid.Get(r, c); cell != 0 && cell != letter {
			return false
		}
	}
	return true
}

// place writes word into the grid along dir and returns the change set:
// exactly the cells that were empty before. Cells already holding the
// right letter from an earlier word are left alone, so undoing this
// placement cannot disturb them.
func (e *engine) place(word []rune, row, col int, dir model.Direction) []model.Position {
	var changed []model.Position
	for i, letter := range word {
		r := row + i*dir.DRow
		c := col + i*dir.DCol
		if e.grid.IsEmpty(r, c) {
			e.grid.Set(r, c, letter)
			changed = append(changed, model.Position{Row: r, Col: c})
		}
	}
	return changed
}

// undo resets exactly the change-set cells back to empty
func (e *engine) undo(changed []model.Position) {
	for _, pos := range changed {
		e.grid.Set(pos.Row, pos.Col, 0)
	}
}

// enumeratePlacements returns every valid candidate for word, scanning
// cells row-major and directions in their fixed order. The caller
// shuffles; the deterministic base order is what makes a fixed seed
// reproduce the same puzzle.
func (e *engine) enumeratePlacements(word []rune) []candidate {
	var candidates []candidate
	for row := 0; row < e.grid.Size; row++ {
		for col := 0; col < e.grid.Size; col++ {
			for _, dir := range e.directions {
				if e.canPlace(word, row, col, dir) {
					candidates = append(candidates, candidate{row: row, col: col, dir: dir})
				}
			}
		}
	}
	return candidates
}

// placeWords is the backtracking search. At each level it tries the
// shuffled candidates for words[idx]; the first branch in which all
// remaining words fit wins. A failed branch is undone cell-for-cell
// before the next candidate is tried.
func (e *engine) placeWords(words [][]rune, idx int) bool {
	if idx == len(words) {
		return true
	}

	candidates := e.enumeratePlacements(words[idx])
	e.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, c := range candidates {
		changed := e.place(words[idx], c.row, c.col, c.dir)
		e.placements = append(e.placements, model.Placement{
			Word: string(words[idx]),
			Row:  c.row,
			Col:  c.col,
			Dir:  c.dir,
		})
		if e.placeWords(words, idx+1) {
			return true
		}
		e.placements = e.placements[:len(e.placements)-1]
		e.undo(changed)
	}

	return false
}

// fillEmpty writes a uniformly random uppercase letter into every cell
// that no word covers
func (e *engine) fillEmpty() {
	for row := 0; row < e.grid.Size; row++ {
		for col := 0; col < e.grid.Size; col++ {
			if e.grid.IsEmpty(row, col) {
				letter := rune(random.UppercaseLetters[e.rng.Intn(len(random.UppercaseLetters))])
				e.grid.Set(row, col, letter)
			}
		}
	}
}
