// Package config provides configuration loading, merging, and validation
// facilities for the dashboard server and the driver app.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry points are [GetServerConfig] and [GetDriverConfig], which build
// the merged [StructuredConfig] and project it onto the settings each binary
// needs.
package config
