package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/parkdui/LG-Thingo/cmd/cli/grade"
	"github.com/parkdui/LG-Thingo/cmd/cli/roster"
	"github.com/spf13/cobra"
)

func init() {
	// None of the commands require configuration yet, a missing .env is fine.
	_ = godotenv.Load()
	rootCmd.AddGroup(roster.Group)
	rootCmd.AddCommand(roster.List)
	rootCmd.AddCommand(roster.Prompt)
	rootCmd.AddGroup(grade.Group)
	rootCmd.AddCommand(grade.Transcript)
}

var rootCmd = &cobra.Command{
	Use:  "thingo-cli",
	Long: `Command line utilities for Thingo https://github.com/parkdui/LG-Thingo`,
	Run: func(cmd *cobra.Command, args []string) {
		// Do Stuff Here
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
