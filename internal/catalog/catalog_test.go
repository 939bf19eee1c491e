// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoriesOrder(t *testing.T) {
	categories := Categories()
	require.Len(t, categories, 7)
	assert.Equal(t, Analysis, categories[0])
	assert.Equal(t, Discovery, categories[1])
	assert.Equal(t, Store, categories[6])
}

func TestCatalogFlagsAreUnique(t *testing.T) {
	seenFlags := map[string]bool{}
	seenPlugins := map[string]bool{}
	for _, spec := range All() {
		assert.Falsef(t, seenFlags[spec.EnvFlag], "duplicated env flag: %s", spec.EnvFlag)
		assert.Falsef(t, seenPlugins[spec.PluginName], "duplicated plugin name: %s", spec.PluginName)
		seenFlags[spec.EnvFlag] = true
		seenPlugins[spec.PluginName] = true
	}
}

func TestByCategoryCoversCatalog(t *testing.T) {
	var total int
	for _, category := range Categories() {
		total += len(ByCategory(category))
	}
	assert.Len(t, All(), total)
}

func TestAzureDiscoveryIsDeprecated(t *testing.T) {
	for _, spec := range ByCategory(Discovery) {
		if spec.EnvFlag == "USE_AZURE_DISCOVERY" {
			assert.True(t, spec.Deprecated)
			return
		}
	}
	t.Fatal("USE_AZURE_DISCOVERY not found in the catalog")
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Analysis", Analysis.String())
	assert.Equal(t, "Unknown", Category(42).String())
}
