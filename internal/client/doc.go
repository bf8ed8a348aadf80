// Package client implements the interactive snapsift application runtime.
//
// It wires the terminal UI, the core services, and the background refresh
// job into a single process lifecycle.
package client
