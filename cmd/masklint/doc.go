// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for masklint.
//
// This package implements the Cobra command hierarchy: the root command with
// its global flags, plus the run, dump and list subcommands.
package cmd
