// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package installer

import (
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/environment"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/esplugin"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/logger"
)

// ValidateVersion confirms the plugin manager binary is reachable and that its
// reported version contains the expected version string. The match is a plain
// substring check, the reported version carries build metadata that the image
// version does not.
func ValidateVersion(manager PluginManager, expectedVersion string) error {
	if expectedVersion == "" {
		return fatalf(KindEnvironment, "%s environment variable must be set", environment.ExpectedVersionEnv)
	}

	if _, err := semver.NewVersion(expectedVersion); err != nil {
		logger.Debugf("expected version %q is not valid semver: %v", expectedVersion, err)
	}

	if err := manager.CheckReachable(); err != nil {
		return &FatalError{Kind: KindEnvironment, Err: err}
	}

	reported, err := manager.Version()
	if err != nil {
		return &FatalError{Kind: KindEnvironment, Err: err}
	}

	if !strings.Contains(reported, expectedVersion) {
		return fatalf(KindValidation, "%s reported version %q does not contain expected version %q",
			esplugin.BinaryName, strings.TrimSpace(reported), expectedVersion)
	}

	logger.Debugf("installed version matches expected version %s", expectedVersion)
	return nil
}
