// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package installer sequences the catalog-driven plugin installation run.
package installer

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/catalog"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/environment"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/logger"
)

// Options control a single orchestration run.
type Options struct {
	// DryRun logs what would be installed without invoking the plugin manager.
	DryRun bool

	// Quiet suppresses the per-category summaries.
	Quiet bool

	// Out receives the per-category summaries. Defaults to os.Stdout.
	Out io.Writer
}

// Tally counts install attempts of a single category.
type Tally struct {
	Requested int
	Succeeded int
	Failed    int
}

// Run validates the installed Elasticsearch version and walks the plugin
// catalog category by category, installing every enabled plugin and printing
// a summary per category. Deprecated plugins are reported as failed without
// an install attempt. Fatal errors abort the run immediately.
func Run(manager PluginManager, settings environment.Settings, opts Options) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	if err := ValidateVersion(manager, settings.ExpectedVersion()); err != nil {
		return err
	}

	for _, category := range catalog.Categories() {
		tally, err := installCategory(manager, settings, category, opts)
		if err != nil {
			return err
		}
		printSummary(opts, category, tally)
	}
	return nil
}

func installCategory(manager PluginManager, settings environment.Settings, category catalog.Category, opts Options) (Tally, error) {
	var tally Tally
	for _, spec := range catalog.ByCategory(category) {
		if !settings.Enabled(spec.EnvFlag) {
			continue
		}
		tally.Requested++

		if spec.Deprecated {
			logger.Warnf("%s plugin is deprecated and will not be installed", spec.PluginName)
			tally.Failed++
			continue
		}

		if opts.DryRun {
			logger.Infof("would install %s plugin", spec.PluginName)
			tally.Succeeded++
			continue
		}

		err := EnsureInstalled(manager, spec.PluginName)
		var fatal *FatalError
		if errors.As(err, &fatal) {
			return tally, err
		}
		if err != nil {
			logger.Errorf("%v", err)
			tally.Failed++
			continue
		}
		tally.Succeeded++
	}
	return tally, nil
}

func printSummary(opts Options, category catalog.Category, tally Tally) {
	if opts.Quiet {
		return
	}
	bold := color.New(color.Bold)
	bold.Fprintf(opts.Out, "%s plugins\n", category)
	fmt.Fprintf(opts.Out, "%d plugins requested: %d plugins installed, %d failed.\n",
		tally.Requested, tally.Succeeded, tally.Failed)
}
