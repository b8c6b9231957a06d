// Package tinyid implements a small 8-byte identifier that is easy for a
// person to read back and type in. It is not cryptographically secure and
// makes no global uniqueness promise; it is meant for populations well under
// a million live values.
//
// Identifiers render as 13 Crockford base32 symbols:
//
//	id := tinyid.MustRandom()
//	fmt.Println(id) // e.g. 7ZK3Q0M1XH4RT
//
//	back, err := tinyid.Decode("7zk3q0m1xh4rt")
//
// The all-zero identifier is the null sentinel and renders as 0000000000000.
package tinyid
