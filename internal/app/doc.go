// Package app wires the grid loader, evaluator, and result rendering into a
// single application lifecycle, owning the logger and runtime configuration.
package app
