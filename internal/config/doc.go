// Package config provides configuration loading, merging, and validation
// facilities for the notes server and its command-line client.
//
// Server configuration is assembled from multiple sources in the following
// priority order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables (and a .env file)
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
