/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/amirdaaee/TGStash/internal/config"
)

// filestoreCmd represents the filestore command
var filestoreCmd = &cobra.Command{
	Use:   "filestore",
	Short: "Validate the file-store bot environment",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadFileStoreFromOS()
		if err != nil {
			logrus.WithError(err).Fatal("configuration is not valid")
		}
		setupLogger(cfg.LogLevel)
		ll := logrus.WithField("at", "filestore")
		ll.Info("configuration is valid")
		logSummary(ll, cfg.Summary())
	},
}

func init() {
	checkCmd.AddCommand(filestoreCmd)
}
