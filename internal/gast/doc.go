// Package gast defines the generic syntax tree: one shared set of data
// shapes capable of holding lowered source code from structurally
// dissimilar language families. Front ends build a Program per source
// unit; analysis passes annotate identifier occurrences in place through
// the IDInfo slot; traversal and matching read the finished tree.
//
// Every per-language sum type carries exactly one catch-all variant
// (OtherExpr, OtherStmt, ...) pairing a string tag with a heterogeneous
// Any payload, so constructs without a first-class variant still
// round-trip with their token provenance intact.
//
// The tree is pure data. Nothing here performs I/O, blocks, or fails at
// runtime; trees for distinct source units share no state and may be
// processed in parallel. The only mutable seam is IDInfo, written by at
// most one pass at a time per tree.
package gast
