// Package config provides configuration loading, merging, and validation
// facilities for snapsift.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources only fill fields still unset by earlier ones):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetConfig].
package config
