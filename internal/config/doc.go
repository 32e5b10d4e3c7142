// Package config provides configuration loading, merging, and validation
// for the keeper CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for fields they set):
//  1. Environment variables prefixed with KEEPER_, including a .env file
//  2. Command-line flags registered by [RegisterFlags]
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry point is [GetClientConfig].
package config
