package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/molter/wordsearch/internal/model"
	"github.com/molter/wordsearch/internal/services/generator"
	"github.com/molter/wordsearch/internal/services/render"
)

func newGenerateCmd() *cobra.Command {
	var (
		size         int
		diagonals    bool
		seed         int64
		showSolution bool
	)

	cmd := &cobra.Command{
		Use:   "generate WORD [WORD...]",
		Short: "Generate a puzzle locally without a server",
		Example: `  wsearch generate GOPHER CHANNEL SLICE --size 10
  wsearch generate CAT DOG --size 5 --diagonals=false --seed 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := generator.Request{
				Words:          args,
				Size:           size,
				AllowDiagonals: diagonals,
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			puzzle, err := generator.Generate(req)
			if err != nil {
				return err
			}

			if cfg.Output == "json" {
				out := NewOutput(cfg.Output)
				out.Print(puzzleForOutput(puzzle, showSolution))
				return nil
			}

			if err := render.Puzzle(os.Stdout, puzzle); err != nil {
				return err
			}
			if showSolution {
				os.Stdout.WriteString("\n")
				return render.Solution(os.Stdout, puzzle)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 12, "Grid size")
	cmd.Flags().BoolVarP(&diagonals, "diagonals", "d", true, "Allow diagonal placements")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible puzzles")
	cmd.Flags().BoolVar(&showSolution, "solution", false, "Also print the solution key")

	return cmd
}

// puzzleForOutput converts a model puzzle into the CLI output type
func puzzleForOutput(p *model.Puzzle, includeSolution bool) Puzzle {
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
			solution[i] = Placement{
				Word:      pl.Word,
				Row:       pl.Row,
				Col:       pl.Col,
				Direction: pl.Dir.Name(),
			}
		}
	}

	return Puzzle{
		ID:             string(p.ID),
		Size:           p.Size,
		Cells:          cells,
		Words:          p.Words,
		AllowDiagonals: p.AllowDiagonals,
		Seed:           p.Seed,
		Solution:       solution,
	}
}
