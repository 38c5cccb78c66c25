package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newWordListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordlist",
		Short: "Word list commands (require a server)",
	}

	cmd.AddCommand(newWordListCreateCmd())
	cmd.AddCommand(newWordListGetCmd())
	cmd.AddCommand(newWordListDeleteCmd())
	cmd.AddCommand(newWordListGenerateCmd())

	return cmd
}

func newWordListCreateCmd() *cobra.Command {
	var fromFile string

	cmd := &cobra.Command{
		Use:   "create <name> [WORD...]",
		Short: "Create a named word list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			words := args[1:]

			if fromFile != "" {
				fileWords, err := readWordsFile(fromFile)
				if err != nil {
					return err
				}
				words = append(words, fileWords...)
			}

			if len(words) == 0 {
				return fmt.Errorf("no words given: pass words as arguments or use --file")
			}

			req := map[string]any{"name": name, "words": words}

			var result WordList
			if err := client.Post("/api/v1/wordlists", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&fromFile, "file", "f", "", "Read words from a file, one per line")

	return cmd
}

func newWordListGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Fetch a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result WordList
			if err := client.Get(fmt.Sprintf("/api/v1/wordlists/%s", args[0]), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newWordListDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete(fmt.Sprintf("/api/v1/wordlists/%s", args[0])); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage("Word list deleted")
			return nil
		},
	}
}

func newWordListGenerateCmd() *cobra.Command {
	var (
		size      int
		diagonals bool
		seed      int64
	)

	cmd := &cobra.Command{
		Use:   "generate <name>",
		Short: "Generate a puzzle from a stored word list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"size":            size,
				"allow_diagonals": diagonals,
			}
			if cmd.Flags().Changed("seed") {
				req["seed"] = seed
			}

			var result Puzzle
			if err := client.Post(fmt.Sprintf("/api/v1/wordlists/%s/puzzles", args[0]), req, &result); err != nil {
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

func readWordsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
