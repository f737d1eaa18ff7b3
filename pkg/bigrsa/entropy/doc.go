// Package entropy supplies the randomness sources consumed by the prime
// search and the key generator.
//
// Nothing in bigrsa reads a package-level random generator. Every sampling
// function takes an io.Reader, and this package provides the three readers
// callers normally need:
//
//   - Default: crypto/rand.Reader, the only choice for real keys.
//   - NewDeterministic: a reproducible HKDF-SHA-512 stream for tests and
//     examples. Identical seeds give identical keypairs.
//   - Locked: a mutex-guarded wrapper for sharing one reader between
//     goroutines, e.g. when p and q are searched in parallel.
package entropy
