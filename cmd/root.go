// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/cobraext"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/logger"
)

var commands = []*cobraext.Command{
	setupCatalogCommand(),
	setupInstallCommand(),
	setupVersionCommand(),
}

// RootCmd creates and returns root cmd for elasticsearch-plugin-bootstrap.
// Running the root command without a subcommand performs the install run,
// which is how the container entrypoint invokes it.
func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "elasticsearch-plugin-bootstrap",
		Short:        "elasticsearch-plugin-bootstrap - Install the configured Elasticsearch plugins at container startup",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cobraext.ComposeCommandActions(cmd, args,
				processPersistentFlags,
			)
		},
		RunE: installCommandAction,
	}
	rootCmd.PersistentFlags().CountP(cobraext.VerboseFlagName, cobraext.VerboseFlagShorthand, cobraext.VerboseFlagDescription)
	rootCmd.PersistentFlags().Bool(cobraext.NoColourFlagName, false, cobraext.NoColourFlagDescription)
	rootCmd.PersistentFlags().Bool(cobraext.CronFlagName, false, cobraext.CronFlagDescription)
	rootCmd.Flags().Bool(cobraext.DryRunFlagName, false, cobraext.DryRunFlagDescription)

	for _, cmd := range commands {
		rootCmd.AddCommand(cmd.Command)
	}
	return rootCmd
}

func processPersistentFlags(cmd *cobra.Command, args []string) error {
	verbosity, err := cmd.Flags().GetCount(cobraext.VerboseFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.VerboseFlagName)
	}

	noColour, err := cmd.Flags().GetBool(cobraext.NoColourFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.NoColourFlagName)
	}
	if noColour {
		color.NoColor = true
	}

	cron, err := cmd.Flags().GetBool(cobraext.CronFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.CronFlagName)
	}

	logger.Setup(logger.Options{
		Verbosity: verbosity,
		Quiet:     cron,
	})
	return nil
}
