package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/taml/parser"
)

func newCheckCmd(cfg Config) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a TAML file for syntax errors (use - for stdin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			var errs []error
			if all {
				errs = checkAll(source)
			} else {
				errs = parser.ValidateSyntax(source).Errors
			}
			if len(errs) == 0 {
				fmt.Println("OK")
				return nil
			}

			for _, cerr := range errs {
				if positioned, ok := cerr.(parser.Positioned); ok {
					pos := positioned.Pos()
					fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", args[0], pos.Line, pos.Column, cerr.Error())
				} else {
					fmt.Fprintln(os.Stderr, cerr.Error())
				}
			}
			return fmt.Errorf("%d problem(s) found", len(errs))
		},
		Args: cobra.ExactArgs(1),
	}

	cmd.Flags().BoolVar(&all, "all", false, "report every structural problem, not just the first")

	return cmd
}

// checkAll runs the accumulating validator over the token sequence. A
// lexical fault still reports alone, since tokenizing is fail-fast.
func checkAll(source string) []error {
	tokens, err := parser.Tokenize(source)
	if err != nil {
		return []error{err}
	}
	return parser.ValidateTokens(tokens).Errors
}
