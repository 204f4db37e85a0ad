// SPDX-License-Identifier: MPL-2.0

// Package config loads masklint user configuration.
//
// Configuration lives in a CUE file (config.cue) under the platform config
// directory and is validated against an embedded schema before being merged
// over defaults via Viper. Everything is optional; a missing config file
// means defaults.
package config
