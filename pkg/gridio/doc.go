// Package gridio reads and writes the JSON interchange files used by the
// CLI and HTTP layers.
//
// Two document shapes exist. A problem file carries the required-border
// input:
//
//	{"n": 5, "m": 4, "a": [1, 1, 1, 1], "b": [2, 3, 4, 5]}
//
// A grid file carries a produced embedding:
//
//	{"grid": [[2, 1, 3], [1, 1, 1], [4, 1, 5]]}
//
// Both round-trip: what Write* emits, Read* accepts. Structural checks on
// read (array lengths, jagged rows) fail with INVALID_FORMAT errors; the
// semantic checks stay with gridmap.NewGraph and gridcheck.
package gridio
