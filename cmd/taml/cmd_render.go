package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/taml/parser"
	"github.com/dhamidi/taml/render"
)

func newRenderCmd(cfg Config) *cobra.Command {
	var maxDepth int

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a TAML file as styled terminal output (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readInput(args[0])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			node, err := parser.Parse(source, parser.WithMaxDepth(maxDepth))
			if err != nil {
				return parseFailure(err)
			}

			fmt.Print(render.Render(node))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxDepth, "max-depth", cfg.MaxDepth, "maximum element nesting depth")

	return cmd
}
