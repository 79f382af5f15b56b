// Package diag defines the diagnostic schema producers emit and consumers
// render. It is self-contained on purpose: positions and ranges are
// declared here rather than imported from the tree packages, so the
// diagnostic surface can version independently of the tree model.
package diag
