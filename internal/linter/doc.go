// SPDX-License-Identifier: MPL-2.0

// Package linter provides the per-language analysis handlers.
//
// A Linter turns a raw maskfile script into a standalone file for its
// language, invokes the matching external analyzer against that file, and
// normalizes the tool's raw output into a uniform Result. The set of
// supported languages is closed: selection happens through a pure switch on
// the script's executor tag, falling back to Catchall for anything
// unrecognized.
package linter
