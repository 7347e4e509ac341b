// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from <config dir>/sprockets-chain/config.cue (XDG on
// Linux, ~/Library/Application Support on macOS, %APPDATA% on Windows), then
// ./config.cue, unless an explicit file is given. Every key can be overridden
// through SPROCKETS_CHAIN_* environment variables (dots become underscores,
// so output.format is SPROCKETS_CHAIN_OUTPUT_FORMAT).
//
// Files are validated against the embedded config_schema.cue before being
// merged over DefaultConfig.
package config
