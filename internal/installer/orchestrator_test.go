// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package installer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/catalog"
	"github.com/mcculloh213/elasticsearch-plugin-bootstrap/internal/environment"
)

const reportedVersion = "Version: 8.1.0, Build: default/tar/abc123"

func settingsWithFlags(t *testing.T, flags map[string]string) environment.Settings {
	t.Helper()
	t.Setenv(environment.ExpectedVersionEnv, "8.1.0")
	for _, spec := range catalog.All() {
		t.Setenv(spec.EnvFlag, "")
	}
	for flag, value := range flags {
		t.Setenv(flag, value)
	}
	return environment.Current()
}

func disableColors(t *testing.T) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })
}

func TestRunInstallsEnabledPlugins(t *testing.T) {
	disableColors(t)
	settings := settingsWithFlags(t, map[string]string{
		"USE_ICU_ANALYSIS":  "1",
		"USE_S3_REPOSITORY": "1",
	})
	manager := &fakeManager{version: reportedVersion}
	out := new(bytes.Buffer)

	err := Run(manager, settings, Options{Out: out})
	require.NoError(t, err)

	assert.Equal(t, []string{"analysis-icu", "repository-s3"}, manager.installCalls)

	output := out.String()
	assert.Contains(t, output, "Analysis plugins\n1 plugins requested: 1 plugins installed, 0 failed.")
	assert.Contains(t, output, "Repository plugins\n1 plugins requested: 1 plugins installed, 0 failed.")
	assert.Equal(t, 5, strings.Count(output, "0 plugins requested: 0 plugins installed, 0 failed."))
}

func TestRunSkipsDisabledFlags(t *testing.T) {
	disableColors(t)
	settings := settingsWithFlags(t, map[string]string{
		"USE_ICU_ANALYSIS":  "true",
		"USE_EC2_DISCOVERY": "yes",
		"USE_SMB_STORE":     "0",
	})
	manager := &fakeManager{version: reportedVersion}
	out := new(bytes.Buffer)

	err := Run(manager, settings, Options{Out: out})
	require.NoError(t, err)

	assert.Empty(t, manager.installCalls)
	assert.Equal(t, 7, strings.Count(out.String(), "0 plugins requested: 0 plugins installed, 0 failed."))
}

func TestRunDeprecatedPlugin(t *testing.T) {
	disableColors(t)
	settings := settingsWithFlags(t, map[string]string{
		"USE_AZURE_DISCOVERY": "1",
	})
	manager := &fakeManager{version: reportedVersion}
	out := new(bytes.Buffer)

	err := Run(manager, settings, Options{Out: out})
	require.NoError(t, err)

	assert.Empty(t, manager.installCalls)
	assert.Contains(t, out.String(), "Discovery plugins\n1 plugins requested: 0 plugins installed, 1 failed.")
}

func TestRunFailedInstallContinues(t *testing.T) {
	disableColors(t)
	settings := settingsWithFlags(t, map[string]string{
		"USE_ICU_ANALYSIS":  "1",
		"USE_S3_REPOSITORY": "1",
	})
	manager := &fakeManager{version: reportedVersion, installErr: errors.New("exit status 70")}
	out := new(bytes.Buffer)

	err := Run(manager, settings, Options{Out: out})
	require.NoError(t, err)

	output := out.String()
	assert.Contains(t, output, "Analysis plugins\n1 plugins requested: 0 plugins installed, 1 failed.")
	assert.Contains(t, output, "Repository plugins\n1 plugins requested: 0 plugins installed, 1 failed.")
}

func TestRunAbortsOnVersionMismatch(t *testing.T) {
	disableColors(t)
	settings := settingsWithFlags(t, map[string]string{
		"USE_ICU_ANALYSIS": "1",
	})
	manager := &fakeManager{version: "Version: 8.0.0, Build: default/tar/def456"}
	out := new(bytes.Buffer)

	err := Run(manager, settings, Options{Out: out})
	require.Error(t, err)
	assert.Equal(t, ExitEnvironment, ExitCodeForError(err))

	// No plugin processing after a failed validation.
	assert.Empty(t, manager.installCalls)
	assert.Empty(t, out.String())
}

func TestRunDryRun(t *testing.T) {
	disableColors(t)
	settings := settingsWithFlags(t, map[string]string{
		"USE_ICU_ANALYSIS": "1",
	})
	manager := &fakeManager{version: reportedVersion}
	out := new(bytes.Buffer)

	err := Run(manager, settings, Options{DryRun: true, Out: out})
	require.NoError(t, err)

	assert.Empty(t, manager.installCalls)
	assert.Equal(t, 0, manager.listCalls)
	assert.Contains(t, out.String(), "Analysis plugins\n1 plugins requested: 1 plugins installed, 0 failed.")
}

func TestRunQuiet(t *testing.T) {
	disableColors(t)
	settings := settingsWithFlags(t, map[string]string{
		"USE_ICU_ANALYSIS": "1",
	})
	manager := &fakeManager{version: reportedVersion}
	out := new(bytes.Buffer)

	err := Run(manager, settings, Options{Quiet: true, Out: out})
	require.NoError(t, err)

	assert.Equal(t, []string{"analysis-icu"}, manager.installCalls)
	assert.Empty(t, out.String())
}

func TestExitCodeForError(t *testing.T) {
	assert.Equal(t, ExitOK, ExitCodeForError(nil))
	assert.Equal(t, ExitUsage, ExitCodeForError(errors.New("unknown flag: --bogus")))
	assert.Equal(t, ExitInternal, ExitCodeForError(fatalf(KindInternal, "missing plugin name")))
	assert.Equal(t, ExitEnvironment, ExitCodeForError(fatalf(KindValidation, "version mismatch")))
}
