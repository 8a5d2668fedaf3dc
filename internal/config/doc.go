// Package config provides configuration loading, merging, and validation
// facilities for the vault client.
//
// Configuration is assembled from multiple sources. Earlier sources take
// precedence over later ones for every non-zero field:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the merged raw
// configuration and [GetClientConfig] for the validated client view.
package config
