package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPuzzleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzle",
		Short: "Puzzle commands (require a server)",
	}

	cmd.AddCommand(newPuzzleCreateCmd())
	cmd.AddCommand(newPuzzleGetCmd())
	cmd.AddCommand(newPuzzleTextCmd())
	cmd.AddCommand(newPuzzleDeleteCmd())

	return cmd
}

func newPuzzleCreateCmd() *cobra.Command {
	var (
		size      int
		diagonals bool
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "create WORD [WORD...]",
		Short: "Generate and store a puzzle on the server",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"words":           args,
				"size":            size,
				"allow_diagonals": diagonals,
			}
			if cmd.Flags().Changed("seed") {
				req["seed"] = seed
			}

			var result Puzzle
			if err := client.Post("/api/v1/puzzles", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVarP(&size, "size", "s", 12, "Grid size")
	cmd.Flags().BoolVarP(&diagonals, "diagonals", "d", true, "Allow diagonal placements")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for reproducible puzzles")

	return cmd
}

func newPuzzleGetCmd() *cobra.Command {
	var showSolution bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a stored puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fmt.Sprintf("/api/v1/puzzles/%s", args[0])
			if showSolution {
				path += "?solution=true"
			}

			var result Puzzle
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSolution, "solution", false, "Include the solution key")

	return cmd
}

func newPuzzleTextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "text <id>",
		Short: "Fetch a puzzle's plain text rendering",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := client.DoText(fmt.Sprintf("/api/v1/puzzles/%s/text", args[0]))
			if err != nil {
				return err
			}

			fmt.Print(text)
			return nil
		},
	}
}

func newPuzzleDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a stored puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/puzzles/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Puzzle deleted")
			return nil
		},
	}
}
