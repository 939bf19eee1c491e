// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package cobraext

// Global flags
const (
	VerboseFlagName        = "verbose"
	VerboseFlagShorthand   = "v"
	VerboseFlagDescription = "verbose mode (repeat for trace output)"

	NoColourFlagName        = "no-colour"
	NoColourFlagDescription = "disable coloured output"

	CronFlagName        = "cron"
	CronFlagDescription = "cron mode, suppress all non-error output"
)

// Flag names and descriptions used by CLI commands
const (
	DryRunFlagName        = "dry-run"
	DryRunFlagDescription = "log what would be installed without invoking the plugin manager"
)
