// Package internalcheck holds source-level policy tests for the rsakit
// library.
//
// The tests load the library packages with golang.org/x/tools/go/packages
// and reject changes that weaken the security posture: importing a
// non-cryptographic randomness source into key-material code, or formatting
// secrets as hex into logs and errors. They guard conventions the compiler
// cannot, and are not part of the public API.
package internalcheck
