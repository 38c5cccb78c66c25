package model

import "time"

// WordList is a named, reusable set of words to hide in puzzles
type WordList struct {
	Name      string
	Words     []string // Normalized at creation time
	CreatedAt time.Time
}
