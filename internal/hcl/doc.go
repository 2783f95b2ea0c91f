// Package hcl provides the concrete HCL implementation for loading user grid
// files. It is responsible for file discovery, HCL parsing, and CTY-to-Go
// conversion of the raw cell rows.
package hcl
