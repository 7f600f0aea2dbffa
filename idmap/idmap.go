// Package idmap converts between graph identifiers and persisted identifiers.
//
// Graph DMR IDs are 0-indexed and local to one timepoint. Persisted DMR IDs are
// 1-indexed and shifted by a per-timepoint offset so that DMRs of different
// timepoints can share one table without colliding and no persisted ID is 0:
//
//	dmr_id = raw_node_id + timepoint_offset + 1
//	raw_node_id = dmr_id - timepoint_offset - 1
//
// The shift must be applied exactly once per direction. CreateDMRID and
// ConvertDMRID are the same transform exposed under two names for the two
// call-site families (row creation vs. lookups); a value must never pass
// through both. Applying the shift twice produces IDs that ReverseCreateDMRID
// maps to the wrong raw node or rejects as out of range.
//
// Gene IDs carry no offset: they are already global through the registry, and
// are only validated on read.
package idmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dmrgraph/registry"
)

// ErrInvalidID indicates a conversion produced or received an out-of-range value.
var ErrInvalidID = errors.New("idmap: invalid id")

// DefaultOffsetStride is the offset distance between consecutive timepoints.
const DefaultOffsetStride = 10000

// InvalidIDError reports a rejected conversion. It always indicates corrupt
// input or a double-applied offset and is fatal to the call.
type InvalidIDError struct {
	Op     string
	Value  int
	Offset int
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("idmap: %s(%d, offset=%d): out of range", e.Op, e.Value, e.Offset)
}

// Unwrap exposes ErrInvalidID for errors.Is.
func (e *InvalidIDError) Unwrap() error { return ErrInvalidID }

// CreateDMRID maps a 0-indexed graph node to its persisted ID.
// Returns *InvalidIDError for negative inputs.
func CreateDMRID(raw, offset int) (int, error) {
	return shift("CreateDMRID", raw, offset)
}

// ConvertDMRID is CreateDMRID for call sites that convert an existing graph ID
// while reading. Never combine it with CreateDMRID on the same value.
func ConvertDMRID(raw, offset int) (int, error) {
	return shift("ConvertDMRID", raw, offset)
}

// ReverseCreateDMRID maps a persisted DMR ID back to its graph node.
// Returns *InvalidIDError when the result would be negative.
func ReverseCreateDMRID(id, offset int) (int, error) {
	if offset < 0 {
		return 0, &InvalidIDError{Op: "ReverseCreateDMRID", Value: id, Offset: offset}
	}
	raw := id - offset - 1
	if raw < 0 {
		return 0, &InvalidIDError{Op: "ReverseCreateDMRID", Value: id, Offset: offset}
	}

	return raw, nil
}

func shift(op string, raw, offset int) (int, error) {
	if raw < 0 || offset < 0 {
		return 0, &InvalidIDError{Op: op, Value: raw, Offset: offset}
	}

	return raw + offset + 1, nil
}

// ValidateGeneID checks a gene ID read back from storage against the registry.
// Unknown IDs surface as *registry.UnknownGeneError.
func ValidateGeneID(reg *registry.Registry, id int) error {
	return reg.Validate(id)
}

// OffsetFor returns the offset of the timepoint at position index given a
// stride (DefaultOffsetStride when stride ≤ 0).
func OffsetFor(index, stride int) int {
	if stride <= 0 {
		stride = DefaultOffsetStride
	}

	return index * stride
}
