// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package environment captures the environment variables the installer reads.
package environment

import (
	"os"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/catalog"
)

// ExpectedVersionEnv holds the Elasticsearch version the image was built for.
const ExpectedVersionEnv = "ELASTICSEARCH_IMAGE_VERSION"

// enabledValue is the only value that enables a plugin flag. Anything else,
// including unset, disables it.
const enabledValue = "1"

// Settings is a read-only snapshot of the relevant environment variables,
// captured once at startup.
type Settings struct {
	expectedVersion string
	flags           map[string]string
}

// Current captures the expected version and every catalog flag from the
// process environment.
func Current() Settings {
	flags := map[string]string{}
	for _, spec := range catalog.All() {
		flags[spec.EnvFlag] = os.Getenv(spec.EnvFlag)
	}
	return Settings{
		expectedVersion: os.Getenv(ExpectedVersionEnv),
		flags:           flags,
	}
}

// ExpectedVersion returns the value of ELASTICSEARCH_IMAGE_VERSION, empty if unset.
func (s Settings) ExpectedVersion() string {
	return s.expectedVersion
}

// Enabled reports whether the given flag was set to "1" when the snapshot was taken.
func (s Settings) Enabled(envFlag string) bool {
	return s.flags[envFlag] == enabledValue
}
