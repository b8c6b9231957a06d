package tinyid

import (
	"bytes"
	"encoding/binary"
	"slices"
	"strings"
)

// Size is the number of bytes in an ID.
const Size = 8

// ID is an 8-byte identifier. The zero value is the null ID.
//
// IDs are plain values: copying one yields an independent ID and two IDs are
// equal under == exactly when their bytes are equal.
type ID [Size]byte

// Null returns the all-zero ID.
func Null() ID {
	return ID{}
}

// FromBytes copies b into an ID. The caller is responsible for the meaning of
// the bytes; any pattern, including all-zero, is accepted.
func FromBytes(b [Size]byte) ID {
	return ID(b)
}

// FromUint64 returns the ID whose big-endian bytes are n.
func FromUint64(n uint64) ID {
	var id ID

	binary.BigEndian.PutUint64(id[:], n)

	return id
}

// IsNull reports whether every byte of id is zero.
func (id ID) IsNull() bool {
	return id == ID{}
}

// IsValid reports whether id is not the null ID.
func (id ID) IsValid() bool {
	return !id.IsNull()
}

// MakeNull resets id to the null ID.
func (id *ID) MakeNull() {
	*id = ID{}
}

// Bytes returns a copy of the raw bytes.
func (id ID) Bytes() [Size]byte {
	return id
}

// Uint64 returns the bytes of id read as a big-endian integer.
func (id ID) Uint64() uint64 {
	return binary.BigEndian.Uint64(id[:])
}

// Equal reports whether id and other hold the same bytes.
func (id ID) Equal(other ID) bool {
	return id == other
}

// Compare orders IDs lexicographically by byte. The order carries no meaning
// beyond being total and stable.
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Less reports whether id sorts before other.
func (id ID) Less(other ID) bool {
	return id.Compare(other) < 0
}

// HasPrefix reports whether the encoded form of id starts with s.
// The match ignores case and accepts the same aliases as Decode.
func (id ID) HasPrefix(s string) bool {
	if len(s) > EncodedLen {
		return false
	}

	return strings.HasPrefix(id.String(), canonical(s))
}

// HasSuffix reports whether the encoded form of id ends with s.
func (id ID) HasSuffix(s string) bool {
	if len(s) > EncodedLen {
		return false
	}

	return strings.HasSuffix(id.String(), canonical(s))
}

// Sort orders ids in place using Compare.
func Sort(ids []ID) {
	slices.SortFunc(ids, ID.Compare)
}
