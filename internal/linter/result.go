// SPDX-License-Identifier: MPL-2.0

package linter

const (
	// KindWarning marks an advisory result. Warnings never count toward the
	// run's failure total and can be suppressed entirely.
	KindWarning Kind = "warning"
	// KindFindings marks analyzer output. A non-empty findings message counts
	// as one failed file.
	KindFindings Kind = "findings"
)

type (
	// Kind classifies a lint result.
	Kind string

	// Result is the normalized outcome of one analyzer invocation.
	// An empty Message means there is nothing to report, regardless of Kind.
	Result struct {
		// Message is the normalized, path-free analyzer output.
		Message string
		// Kind classifies the result.
		Kind Kind
	}
)

// NewWarning creates an advisory Result.
func NewWarning(message string) Result {
	return Result{Message: message, Kind: KindWarning}
}

// NewFindings creates an analyzer-output Result.
func NewFindings(message string) Result {
	return Result{Message: message, Kind: KindFindings}
}

// Empty reports whether the result carries nothing to report.
func (r Result) Empty() bool {
	return r.Message == ""
}
