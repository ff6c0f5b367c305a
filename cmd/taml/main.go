package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	cfg := loadConfig()

	rootCmd := &cobra.Command{
		Use:   "taml",
		Short: "Parse, check, and render TAML terminal markup",
	}

	rootCmd.AddCommand(newParseCmd(cfg))
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newCheckCmd(cfg))
	rootCmd.AddCommand(newRenderCmd(cfg))
	rootCmd.AddCommand(newLSPCmd())
	rootCmd.AddCommand(newUICmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
