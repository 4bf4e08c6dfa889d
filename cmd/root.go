/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/amirdaaee/TGStash/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   "TGStash",
	Short: "Telegram file stash configuration toolkit",
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// rootCmd.Flags().BoolP("toggle", "t", false, "Help message for toggle")
}

func setupLogger(level string) {
	log.Setup(level)
}
