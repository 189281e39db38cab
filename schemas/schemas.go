// Package schemas embeds the JSON Schemas for the benchmark result file
// format and the profile definition file format.
package schemas

import _ "embed"

// ResultsSchemaJSON is the schema for benchmark result JSON files.
//
//go:embed results.schema.json
var ResultsSchemaJSON string

// ProfilesSchemaJSON is the schema for profiles.yaml definition files.
//
//go:embed profiles.schema.json
var ProfilesSchemaJSON string
