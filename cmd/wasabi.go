/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amirdaaee/TGStash/internal/config"
)

// wasabiCmd represents the wasabi command
var wasabiCmd = &cobra.Command{
	Use:   "wasabi",
	Short: "Validate the wasabi upload bot environment",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadWasabiFromOS()
		if err != nil {
			logrus.WithError(err).Fatal("configuration is not valid")
		}
		setupLogger(cfg.LogLevel)
		ll := logrus.WithField("at", "wasabi")
		ll.Info("configuration is valid")
		logSummary(ll, cfg.Summary())
	},
}

func init() {
	checkCmd.AddCommand(wasabiCmd)
}
