// SPDX-License-Identifier: MPL-2.0

// Package lint implements the command-tree walk that materializes embedded
// scripts and aggregates analyzer findings.
//
// The walk is plain structural recursion in document order: each node's full
// command name is derived from its ancestors, its script (if any) is written
// to the output directory through the selected language handler, and, outside
// dump mode, the handler's analyzer runs against the materialized file. The
// findings count is returned and summed by the caller rather than mutated
// through shared state.
package lint
