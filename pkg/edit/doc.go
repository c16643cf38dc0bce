// Package edit changes schema trees without modifying them.
//
// Every operation takes a root and a schema.Path and returns a new root.
// Only the nodes on the path from the root to the target are rebuilt; all
// other subtrees are shared with the input by reference. Objects keep their
// fields in a persistent balanced tree, so an edit allocates in proportion to
// the path depth and the log of each object's width, never the size of the
// tree.
//
// The same edits are available as serializable Commands for edit scripts.
package edit
