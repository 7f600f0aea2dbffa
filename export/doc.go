// Package export turns an analysis.Result into plain structured data for the
// two outer consumers of a run:
//
//   - Rows: persistence rows keyed by the 1-indexed, offset DMR ID of
//     package idmap. Every DMR ID is converted exactly once per BuildRows
//     call and the converted value is reused by every row that refers to
//     that DMR. Gene IDs are the registry's global IDs, unchanged.
//   - GraphData: node and edge lists annotated with classification, hub and
//     split flags plus biclique and component summaries, ready for
//     encoding/json. DMR nodes keep their graph-local IDs.
package export
