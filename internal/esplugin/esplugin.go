// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package esplugin wraps the elasticsearch-plugin binary shipped with the
// Elasticsearch distribution.
package esplugin

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/logger"
)

// BinaryName is the plugin manager binary expected on the search path.
const BinaryName = "elasticsearch-plugin"

// CLI executes elasticsearch-plugin subcommands.
type CLI struct {
	binary string
}

// NewCLI creates a runner for the elasticsearch-plugin binary.
func NewCLI() *CLI {
	return &CLI{binary: BinaryName}
}

// CheckReachable function verifies the plugin manager binary is on the search path.
func (c *CLI) CheckReachable() error {
	_, err := exec.LookPath(c.binary)
	if err != nil {
		return fmt.Errorf("%s not found on the search path: %w", c.binary, err)
	}
	return nil
}

// Version function returns the raw version output of the plugin manager.
func (c *CLI) Version() (string, error) {
	cmd := exec.Command(c.binary, "--version")
	errOutput := new(bytes.Buffer)
	cmd.Stderr = errOutput

	logger.Tracef("output command: %s", cmd)
	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version failed (stderr=%q): %w", c.binary, errOutput.String(), err)
	}
	return string(output), nil
}

// ListInstalled function returns the names of the plugins already installed.
func (c *CLI) ListInstalled() ([]string, error) {
	cmd := exec.Command(c.binary, "list")
	errOutput := new(bytes.Buffer)
	cmd.Stderr = errOutput

	logger.Tracef("output command: %s", cmd)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("running %s list failed (stderr=%q): %w", c.binary, errOutput.String(), err)
	}
	return SplitPluginNames(output), nil
}

// Install function installs the named plugin in non-interactive batch mode.
// It does not verify the plugin is active afterwards, the plugin only becomes
// visible once Elasticsearch restarts.
func (c *CLI) Install(name string) error {
	cmd := exec.Command(c.binary, "install", "--batch", name)

	if logger.IsDebugMode() {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	logger.Tracef("run command: %s", cmd)
	err := cmd.Run()
	if err != nil {
		return fmt.Errorf("running %s install failed: %w", c.binary, err)
	}
	return nil
}

// SplitPluginNames splits the plugin manager's list output into plugin names.
func SplitPluginNames(output []byte) []string {
	var names []string
	for _, line := range strings.Split(string(output), "\n") {
		name := strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}
