// root.go
//
// Cobra command tree for the ciphermind binary:
//   ciphermind serve — HTTP API for remote play
//   ciphermind play  — interactive terminal game

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ciphermind",
	Short: "CipherMind: a color code-breaking game",
	Long: `CipherMind generates a secret sequence of colored pegs and scores
your guesses: exact matches (right color, right position) and color
matches (right color, wrong position). Crack the code before the
attempt budget runs out.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
}
