// Package config loads and validates the openin configuration file.
//
// The file is YAML and lives at <config home>/openin/config.yaml (see
// package paths); a config.yaml in the working directory takes precedence.
// Every key can be overridden with an OPENIN_-prefixed environment variable.
//
//	version: 1
//	editor: Sublime Text   # display name, exactly as `openin list` prints it
//	log_format: text       # text or json
//
// [Load] falls back to defaults when no file exists and validates whatever
// it reads. The editor value must resolve in the editor catalog; anything
// else is reported as a configuration error, never silently replaced.
package config
