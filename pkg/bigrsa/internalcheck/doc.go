// Package internalcheck holds source-level policy tests for bigrsa.
//
// The tests load the bigrsa packages with golang.org/x/tools/go/packages and
// walk their syntax trees:
//
//   - every random sample must come from an io.Reader supplied by the caller
//     or from crypto/rand, so math/rand may not be imported;
//   - secrets must not be hex-dumped through fmt, log or bigrsa errorf
//     format strings, whether called qualified or unqualified.
//
// The package has no exported API.
package internalcheck
