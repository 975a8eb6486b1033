// Package schema provides the principal schematics for all other packages. It
// defines the listing record, the enumerations a listing request is built
// from, the pipeline contracts and provides implementations for handling
// operating system syscalls. The package serves as a foundational layer for
// filesystem interactions throughout the codebase.
package schema
