// Package sheet defines the grid data model: raw cell contents indexed by
// (row, column) coordinates, rectangular bounds, and the A1-style labeling
// scheme used to address cells in grid files and error messages.
package sheet
