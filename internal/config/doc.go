// Package config resolves run settings from defaults, an optional YAML file,
// METADOC_* environment variables and explicit command line flags, in that
// order of precedence.
package config
