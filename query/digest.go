package query

import (
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// KeyDigest is a fixed-size fingerprint of a grouping key.
type KeyDigest [blake2b.Size256]byte

// Digest fingerprints v with BLAKE2b-256 over its dynamic type and its
// Go-syntax rendering (%T and %#v), so values of different types or with
// different field values land in different buckets. Maps render with
// sorted keys and are therefore stable. Pointers digest by address, not by
// what they point to.
func Digest(v any) KeyDigest {
	return blake2b.Sum256(fmt.Appendf(nil, "%T:%#v", v, v))
}
