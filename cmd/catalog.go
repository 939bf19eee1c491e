// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/catalog"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/cobraext"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/environment"
)

const catalogLongDescription = `Use this command to list the supported Elasticsearch plugins and their enabling environment variables.

The "Enabled" column reflects the current process environment. No plugins are installed by this command.`

func setupCatalogCommand() *cobraext.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the supported plugins",
		Long:  catalogLongDescription,
		Args:  cobra.NoArgs,
		RunE:  catalogCommandAction,
	}

	return cobraext.NewCommand(cmd)
}

func catalogCommandAction(cmd *cobra.Command, args []string) error {
	return printCatalog(os.Stdout, environment.Current())
}

func printCatalog(w io.Writer, settings environment.Settings) error {
	table := newTable(w)
	table.Header("Category", "Environment Flag", "Plugin", "Enabled", "Deprecated")
	for _, spec := range catalog.All() {
		err := table.Append([]string{
			spec.Category.String(),
			spec.EnvFlag,
			spec.PluginName,
			formatBool(settings.Enabled(spec.EnvFlag)),
			formatBool(spec.Deprecated),
		})
		if err != nil {
			return fmt.Errorf("can't append table row: %w", err)
		}
	}
	err := table.Render()
	if err != nil {
		return fmt.Errorf("can't render catalog table: %w", err)
	}
	return nil
}

func formatBool(value bool) string {
	if value {
		return "yes"
	}
	return "-"
}
