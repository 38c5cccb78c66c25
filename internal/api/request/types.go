package request

// CreatePuzzle is the body for POST /puzzles
type CreatePuzzle struct {
	Words          []string `json:"words"`
	Size           int      `json:"size"`
	AllowDiagonals bool     `json:"allow_diagonals"`
	Seed           *int64   `json:"seed,omitempty"`
}

// GeneratePuzzle is the body for POST /wordlists/{name}/puzzles
type GeneratePuzzle struct {
	Size           int    `json:"size"`
	AllowDiagonals bool   `json:"allow_diagonals"`
	Seed           *int64 `json:"seed,omitempty"`
}

// CreateWordList is the body for POST /wordlists
type CreateWordList struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}
