// Package eval resolves every cell of a grid to a number.
//
// Evaluation is a depth-first traversal of the implicit dependency graph
// whose edges run from a cell to the cells it references. Each cell carries
// one of three markers (not evaluated, evaluating, evaluated), the classic
// white/gray/black coloring for detecting a back-edge in a DFS over a
// directed graph. Hitting an evaluating cell means the current recursion
// stack has looped back into itself, which is a circular reference; hitting
// an evaluated cell is a memo hit and costs nothing.
//
// A pass is all-or-nothing: the first malformed cell or detected cycle
// aborts it, and no partial result grid is produced.
package eval
