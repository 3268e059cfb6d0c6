// Package config loads and validates the settings of the IDEA front ends.
//
// Settings come from a YAML file with IDEA_-prefixed environment overrides
// (REST API) or from built-in defaults (CLI). Every settings struct carries
// mapstructure tags for decoding and validate tags checked by Validate.
package config
