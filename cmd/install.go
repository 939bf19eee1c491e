// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/cobraext"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/environment"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/esplugin"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/installer"
)

const installLongDescription = `Use this command to install the Elasticsearch plugins enabled through environment variables.

The command validates that the installed Elasticsearch version matches ELASTICSEARCH_IMAGE_VERSION, then walks the plugin catalog and installs every plugin whose USE_* flag is set to "1". Already installed plugins are skipped. A summary is printed per plugin category.`

func setupInstallCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the enabled Elasticsearch plugins",
		Long:  installLongDescription,
		Args:  cobra.NoArgs,
		RunE:  installCommandAction,
	}
	cmd.Flags().Bool(cobraext.DryRunFlagName, false, cobraext.DryRunFlagDescription)

	return cobraext.NewCommand(cmd)
}

func installCommandAction(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool(cobraext.DryRunFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.DryRunFlagName)
	}

	cron, err := cmd.Flags().GetBool(cobraext.CronFlagName)
	if err != nil {
		return cobraext.FlagParsingError(err, cobraext.CronFlagName)
	}

	return installer.Run(esplugin.NewCLI(), environment.Current(), installer.Options{
		DryRun: dryRun,
		Quiet:  cron,
		Out:    os.Stdout,
	})
}
