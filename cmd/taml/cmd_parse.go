package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/taml/format"
	"github.com/dhamidi/taml/parser"
)

func newParseCmd(cfg Config) *cobra.Command {
	var outputFormat string
	var maxDepth int
	var positions bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a TAML file and dump the tree (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			opts := []parser.Option{parser.WithMaxDepth(maxDepth)}
			if !positions {
				opts = append(opts, parser.WithoutPositions())
			}
			node, err := parser.Parse(source, opts...)
			if err != nil {
				return parseFailure(err)
			}

			switch outputFormat {
			case "json":
				if err := format.NewASTJSONEncoder(os.Stdout).Encode(node); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				fmt.Println()
			case "tree":
				if err := format.NewTreeEncoder(os.Stdout, positions).Encode(node); err != nil {
					return fmt.Errorf("encode tree: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", cfg.Format, "output format (json, tree)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", cfg.MaxDepth, "maximum element nesting depth")
	cmd.Flags().BoolVar(&positions, "positions", true, "include node positions in output")

	return cmd
}

// parseFailure turns a parse error into the message the command exits
// with, preferring the source-context rendering when the error has one.
func parseFailure(err error) error {
	var positioned parser.Positioned
	if errors.As(err, &positioned) {
		return errors.New(positioned.DetailedMessage())
	}
	return err
}
