package model

import "time"

// PuzzleID identifies a stored puzzle
type PuzzleID string

// Placement records where a word was committed into the grid
type Placement struct {
	Word string    `json:"word"`
	Row  int       `json:"row"`
	Col  int       `json:"col"`
	Dir  Direction `json:"dir"`
}

// Puzzle is a completed word search: a fully-filled grid plus the
// words hidden in it and the solution key of their placements
type Puzzle struct {
	ID             PuzzleID
	Size           int
	Grid           *Grid
	Words          []string // Normalized, in placement order (longest first)
	Placements     []Placement
	AllowDiagonals bool
	Seed           *int64 // nil if the generation was unseeded
	CreatedAt      time.Time
}
