package model

// Position identifies a cell on the grid
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Grid is a square letter grid. Empty cells hold the rune 0; the
// sentinel is internal and never appears in a finished puzzle.
type Grid struct {
	Size  int      // Grid dimension (e.g., 12 for 12x12)
	Cells [][]rune // Row-major: Cells[row][col], 0 means empty
}

// NewGrid creates an empty grid of the given size
func NewGrid(size int) *Grid {
	cells := make([][]rune, size)
	for i := range cells {
		cells[i] = make([]rune, size)
	}
	return &Grid{
		Size:  size,
		Cells: cells,
	}
}

// Get returns the letter at the given cell, or 0 if empty
func (g *Grid) Get(row, col int) rune {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.Cells[row][col]
}

// Set writes a letter at the given cell
func (g *Grid) Set(row, col int, letter rune) {
	if g.InBounds(row, col) {
		g.Cells[row][col] = letter
	}
}

// IsEmpty returns true if the cell holds no letter
func (g *Grid) IsEmpty(row, col int) bool {
	return g.Get(row, col) == 0
}

// InBounds returns true if the cell is within the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Size && col >= 0 && col < g.Size
}

// EmptyCount returns the number of empty cells
func (g *Grid) EmptyCount() int {
	count := 0
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] == 0 {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	clone := NewGrid(g.Size)
	for row := 0; row < g.Size; row++ {
		copy(clone.Cells[row], g.Cells[row])
	}
	return clone
}

// Equal reports whether two grids have identical size and contents
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Size != other.Size {
		return false
	}
	for row := 0; row < g.Size; row++ {
		for col := 0; col < g.Size; col++ {
			if g.Cells[row][col] != other.Cells[row][col] {
				return false
			}
		}
	}
	return true
}
