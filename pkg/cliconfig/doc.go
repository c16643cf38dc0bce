// Package cliconfig loads settings for the mockshape command.
//
// Settings are layered, lowest precedence first:
//
//  1. Defaults
//  2. Global config file ($XDG_CONFIG_HOME/mockshape/config.yaml)
//  3. Local config file (.mockshaperc.yaml in the working directory)
//  4. Environment variables (MOCKSHAPE_* prefix)
//  5. Command-line flags
//
// Config.Sources records which layer supplied each value, which
// `mockshape config` prints.
package cliconfig
