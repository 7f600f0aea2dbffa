// SPDX-License-Identifier: MIT
// Package: dmrgraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Sentinels are package-level and never formatted at definition site.
//   • Context is attached with %w; callers branch with errors.Is / errors.As.
//   • Row-level failures are *MalformedRowError values collected in Report.

package builder

import (
	"errors"
	"fmt"
)

// ErrMalformedRow classifies every row-level ingestion failure.
var ErrMalformedRow = errors.New("builder: malformed row")

// ErrNilRegistry indicates BuildGraph was called without a gene registry.
var ErrNilRegistry = errors.New("builder: registry is nil")

// ErrLegacyTuple indicates a legacy edge tuple could not be converted.
var ErrLegacyTuple = errors.New("builder: invalid legacy tuple")

// MalformedRowError describes one rejected input row. Rejected rows are
// skipped but always recorded.
type MalformedRowError struct {
	Row    int    // 1-based input row
	DMR    int    // raw DMR ID as given (may be invalid)
	Reason string // human-readable cause
	Err    error  // optional underlying cause
}

func (e *MalformedRowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("builder: row %d (dmr %d): %s: %v", e.Row, e.DMR, e.Reason, e.Err)
	}

	return fmt.Sprintf("builder: row %d (dmr %d): %s", e.Row, e.DMR, e.Reason)
}

// Unwrap exposes ErrMalformedRow and the underlying cause.
func (e *MalformedRowError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformedRow, e.Err}
	}

	return []error{ErrMalformedRow}
}

// Reasons used in MalformedRowError.Reason.
const (
	ReasonNegativeID  = "negative dmr id"
	ReasonNoGene      = "no resolvable gene"
	ReasonBadStrand   = "invalid strand"
	ReasonBadInterval = "end before start"
	ReasonUnparsable  = "unparsable field"
)

// builderErrorf wraps err with the method context: "<method>: <msg>: <err>".
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
