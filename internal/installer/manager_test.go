// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package installer

import "slices"

// fakeManager implements PluginManager and records every invocation.
type fakeManager struct {
	reachableErr error
	version      string
	versionErr   error
	listErr      error
	installErr   error
	installed    []string

	versionCalls int
	listCalls    int
	installCalls []string
}

func (f *fakeManager) CheckReachable() error {
	return f.reachableErr
}

func (f *fakeManager) Version() (string, error) {
	f.versionCalls++
	if f.versionErr != nil {
		return "", f.versionErr
	}
	return f.version, nil
}

func (f *fakeManager) ListInstalled() ([]string, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return slices.Clone(f.installed), nil
}

func (f *fakeManager) Install(name string) error {
	f.installCalls = append(f.installCalls, name)
	if f.installErr != nil {
		return f.installErr
	}
	f.installed = append(f.installed, name)
	return nil
}
