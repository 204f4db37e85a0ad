// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error presentation: structured
// actionable errors with fix suggestions, and rendered markdown cards for
// the recurring failure classes of a lint run.
package issue
