package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/taml/format"
	"github.com/dhamidi/taml/parser"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Tokenize a TAML file and dump the token sequence (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			tokens, err := parser.Tokenize(source)
			if err != nil {
				return parseFailure(err)
			}

			if err := format.NewTokensJSONEncoder(os.Stdout).Encode(tokens); err != nil {
				return fmt.Errorf("encode tokens: %w", err)
			}
			fmt.Println()
			return nil
		},
	}
}
