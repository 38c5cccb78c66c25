package redis

import (
	"fmt"

	"github.com/molter/wordsearch/internal/model"
)

// Key prefix for all word search data
const keyPrefix = "wsearch"

// puzzleKey returns the Redis key for a Puzzle
func puzzleKey(id model.PuzzleID) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, id)
}

// wordListKey returns the Redis key for a WordList
func wordListKey(name string) string {
	return fmt.Sprintf("%s:wordlist:%s", keyPrefix, name)
}
