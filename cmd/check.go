/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a deployment environment",
	Long:  "Load one of the bot variant schemas from the current environment, validate it, and print a redacted summary. Exits non-zero on any configuration error.",
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func logSummary(ll *logrus.Entry, summary string) {
	for _, line := range strings.Split(strings.TrimRight(summary, "\n"), "\n") {
		ll.Info(line)
	}
}
