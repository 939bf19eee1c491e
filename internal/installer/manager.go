// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package installer

// PluginManager abstracts the elasticsearch-plugin binary. The orchestrator
// depends only on these four behaviors.
type PluginManager interface {
	// CheckReachable verifies the plugin manager binary is on the search path.
	CheckReachable() error

	// Version returns the raw output of the binary's --version subcommand.
	Version() (string, error)

	// ListInstalled returns the names of the plugins already installed.
	ListInstalled() ([]string, error)

	// Install installs the named plugin in non-interactive batch mode.
	Install(name string) error
}
