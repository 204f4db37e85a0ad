// SPDX-License-Identifier: MPL-2.0

// Package maskfile defines the maskfile document model and its markdown parser.
//
// A maskfile is a markdown document describing a tree of named commands.
// Level-2 headings introduce root commands, deeper headings introduce
// subcommands, and a fenced code block under a heading carries the command's
// script with the fence language acting as the executor tag.
package maskfile
