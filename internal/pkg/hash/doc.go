// Package hash turns plaintext passwords into verifiable records and checks
// candidates against records produced earlier, possibly by a different
// algorithm than the one currently preferred.
//
// Each Record carries the identity of the algorithm that produced it, so
// verification dispatches on the record rather than on whatever algorithm
// happens to be primary today. Records hashed under a fallback algorithm
// therefore stay verifiable indefinitely.
package hash
