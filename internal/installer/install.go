// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package installer

import (
	"fmt"
	"slices"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/logger"
)

// EnsureInstalled installs the named plugin unless it is already present.
// The operation is idempotent, a second call for an installed plugin is a
// no-op. A successful install invocation is counted as a success, whether the
// plugin activates after the Elasticsearch restart is not observable here.
func EnsureInstalled(manager PluginManager, name string) error {
	if name == "" {
		return fatalf(KindInternal, "missing plugin name")
	}

	if err := manager.CheckReachable(); err != nil {
		return &FatalError{Kind: KindEnvironment, Err: err}
	}

	installed, err := manager.ListInstalled()
	if err != nil {
		return fmt.Errorf("listing installed plugins failed: %w", err)
	}
	if slices.Contains(installed, name) {
		logger.Debugf("%s plugin is already installed", name)
		return nil
	}

	logger.Infof("installing %s plugin", name)
	if err := manager.Install(name); err != nil {
		return fmt.Errorf("installing %s plugin failed: %w", name, err)
	}
	return nil
}
