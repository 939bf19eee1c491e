// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cobraext

import (
	"github.com/spf13/cobra"
)

// Command wraps a cobra command to keep command constructors uniform.
type Command struct {
	*cobra.Command
}

func NewCommand(cmd *cobra.Command) *Command {
	return &Command{Command: cmd}
}

func (c *Command) Name() string {
	return c.Command.Use
}

func (c *Command) Short() string {
	return c.Command.Short
}
