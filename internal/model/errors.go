package model

import "errors"

// Common errors used across the application
var (
	// Generation errors
	ErrPlacementExhausted = errors.New("cannot place all words: try a larger grid, fewer words, or disabling diagonals")
	ErrInvalidSize        = errors.New("grid size must not be negative")
	ErrInvalidWord        = errors.New("words must contain only letters")

	// Puzzle errors
	ErrPuzzleNotFound = errors.New("puzzle not found")

	// Word list errors
	ErrWordListNotFound = errors.New("word list not found")
	ErrWordListExists   = errors.New("word list already exists")
	ErrNoWords          = errors.New("word list contains no usable words")
)
