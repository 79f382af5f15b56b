// Package token defines the provenance primitive shared by every node of
// the generic syntax tree: a token is either a real, content-derived source
// location or a synthetic marker inserted by a front end for constructs
// that have no span of their own (implicit delimiters, desugared forms).
//
// Synthetic-ness is a disjoint variant, never a sentinel coordinate, so a
// real token at offset 0 of some file is always distinguishable from a
// fabricated one.
package token
