// Package config loads and validates the TOML configuration that selects
// which logging preset a process wires at startup.
package config
