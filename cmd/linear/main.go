package main

import (
	"os"

	"github.com/g-m-twostay/go-linear/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand()
	rootCmd.AddCommand(
		cmd.NewBalanceCommand(),
		cmd.NewPostfixCommand(),
		cmd.NewEvalCommand(),
		cmd.NewTriageCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
