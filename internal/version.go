// Package internal holds values shared by the executables
// that are not part of the public API.
package internal

// Version is the version of the command-line tools.
const Version = "0.1.0"
