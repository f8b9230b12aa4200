// Package config loads the tool's YAML defaults file. Every field can be
// overridden by a CLI flag; a missing file yields the built-in defaults.
package config
