// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

// Package catalog defines the static table of supported Elasticsearch plugins
// and the environment flags that enable them.
package catalog

// Category groups plugins the way the Elasticsearch plugin registry does.
type Category int

const (
	Analysis Category = iota
	Discovery
	Filesystem
	Ingest
	Mapper
	Repository
	Store
)

var categoryNames = map[Category]string{
	Analysis:   "Analysis",
	Discovery:  "Discovery",
	Filesystem: "Filesystem",
	Ingest:     "Ingest",
	Mapper:     "Mapper",
	Repository: "Repository",
	Store:      "Store",
}

func (c Category) String() string {
	name, found := categoryNames[c]
	if !found {
		return "Unknown"
	}
	return name
}

// PluginSpec pairs an enabling environment flag with a target plugin name.
type PluginSpec struct {
	Category   Category
	EnvFlag    string
	PluginName string

	// Deprecated plugins are counted as requested but never installed.
	Deprecated bool
}

// plugins is the full set of supported plugins, in report order. The order of
// entries within a category is the order installs are attempted in.
var plugins = []PluginSpec{
	{Category: Analysis, EnvFlag: "USE_ICU_ANALYSIS", PluginName: "analysis-icu"},
	{Category: Analysis, EnvFlag: "USE_KUROMOJI_ANALYSIS", PluginName: "analysis-kuromoji"},
	{Category: Analysis, EnvFlag: "USE_NORI_ANALYSIS", PluginName: "analysis-nori"},
	{Category: Analysis, EnvFlag: "USE_PHONETIC_ANALYSIS", PluginName: "analysis-phonetic"},
	{Category: Analysis, EnvFlag: "USE_SMARTCN_ANALYSIS", PluginName: "analysis-smartcn"},
	{Category: Analysis, EnvFlag: "USE_STEMPEL_ANALYSIS", PluginName: "analysis-stempel"},
	{Category: Analysis, EnvFlag: "USE_UKRAINIAN_ANALYSIS", PluginName: "analysis-ukrainian"},
	{Category: Discovery, EnvFlag: "USE_AZURE_DISCOVERY", PluginName: "discovery-azure-classic", Deprecated: true},
	{Category: Discovery, EnvFlag: "USE_EC2_DISCOVERY", PluginName: "discovery-ec2"},
	{Category: Discovery, EnvFlag: "USE_GCE_DISCOVERY", PluginName: "discovery-gce"},
	{Category: Filesystem, EnvFlag: "USE_QUOTA_AWARE_FILESYSTEM", PluginName: "quota-aware-fs"},
	{Category: Ingest, EnvFlag: "USE_ATTACHMENT_INGEST", PluginName: "ingest-attachment"},
	{Category: Mapper, EnvFlag: "USE_ANNOTATED_TEXT_MAPPER", PluginName: "mapper-annotated-text"},
	{Category: Mapper, EnvFlag: "USE_MURMUR3_MAPPER", PluginName: "mapper-murmur3"},
	{Category: Mapper, EnvFlag: "USE_SIZE_MAPPER", PluginName: "mapper-size"},
	{Category: Repository, EnvFlag: "USE_AZURE_REPOSITORY", PluginName: "repository-azure"},
	{Category: Repository, EnvFlag: "USE_GCS_REPOSITORY", PluginName: "repository-gcs"},
	{Category: Repository, EnvFlag: "USE_HDFS_REPOSITORY", PluginName: "repository-hdfs"},
	{Category: Repository, EnvFlag: "USE_S3_REPOSITORY", PluginName: "repository-s3"},
	{Category: Store, EnvFlag: "USE_SMB_STORE", PluginName: "store-smb"},
}

// Categories returns all plugin categories in report order.
func Categories() []Category {
	return []Category{Analysis, Discovery, Filesystem, Ingest, Mapper, Repository, Store}
}

// All returns the full plugin catalog in declaration order.
func All() []PluginSpec {
	all := make([]PluginSpec, len(plugins))
	copy(all, plugins)
	return all
}

// ByCategory returns the catalog entries of the given category, in declaration order.
func ByCategory(category Category) []PluginSpec {
	var specs []PluginSpec
	for _, spec := range plugins {
		if spec.Category == category {
			specs = append(specs, spec)
		}
	}
	return specs
}
