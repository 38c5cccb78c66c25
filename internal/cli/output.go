package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Puzzle:
		o.printPuzzle(v)
	case WordList:
		o.printWordList(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Puzzle response type (matches API)
type Puzzle struct {
	ID             string      `json:"id"`
	Size           int         `json:"size"`
	Cells          [][]string  `json:"cells"`
	Words          []string    `json:"words"`
	AllowDiagonals bool        `json:"allow_diagonals"`
	Seed           *int64      `json:"seed,omitempty"`
	Solution       []Placement `json:"solution,omitempty"`
}

// Placement response type
type Placement struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

// WordList response type
type WordList struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPuzzle(p Puzzle) {
	if p.ID != "" {
		fmt.Printf("Puzzle: %s\n\n", p.ID)
	}
	for _, row := range p.Cells {
		fmt.Println(strings.Join(row, " "))
	}
	if len(p.Words) > 0 {
		fmt.Printf("\nWords: %s\n", strings.Join(p.Words, ", "))
	}
	if len(p.Solution) > 0 {
		fmt.Println("\nSolution:")
		for _, pl := range p.Solution {
			fmt.Printf("  %s: row %d, col %d, %s\n", pl.Word, pl.Row, pl.Col, pl.Direction)
		}
	}
}

func (o *Output) printWordList(l WordList) {
	fmt.Printf("Word list: %s\n", l.Name)
	fmt.Printf("Words (%d): %s\n", len(l.Words), strings.Join(l.Words, ", "))
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
