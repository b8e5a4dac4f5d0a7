// Package config loads scraper settings from an optional YAML file with
// environment overrides on top of built-in defaults.
package config
