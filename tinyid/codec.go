package tinyid

import "strings"

const (
	// Alphabet is the Crockford base32 symbol set. It leaves out I, L, O and U
	// so rendered IDs cannot be misread. Changing it breaks every ID already
	// written down.
	Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

	// EncodedLen is the number of symbols in an encoded ID. The first symbol
	// carries the top 4 bits and the other twelve carry 5 bits each.
	EncodedLen = 13

	bitsPerSymbol = 5
	symbolMask    = 1<<bitsPerSymbol - 1
	invalidSymbol = 0xFF
	maxLeadSymbol = 0x0F // 64 - 12*5 = 4 bits left for the first symbol
)

// decodeTable maps every byte to its symbol value or invalidSymbol.
var decodeTable = func() [256]byte { //nolint:gochecknoglobals
	var t [256]byte

	for i := range t {
		t[i] = invalidSymbol
	}

	for i := range len(Alphabet) {
		c := Alphabet[i]
		t[c] = byte(i)
		t[c|0x20] = byte(i) // lower case; a no-op for digits
	}

	// Crockford aliases for symbols people tend to type by mistake.
	t['O'], t['o'] = 0, 0
	t['I'], t['i'] = 1, 1
	t['L'], t['l'] = 1, 1

	return t
}()

// Encode renders id as EncodedLen upper-case symbols from Alphabet.
// The null ID renders as "0000000000000".
func Encode(id ID) string {
	var (
		buf [EncodedLen]byte
		n   = id.Uint64()
	)

	for i := EncodedLen - 1; i >= 0; i-- {
		buf[i] = Alphabet[n&symbolMask]
		n >>= bitsPerSymbol
	}

	return string(buf[:])
}

// Decode parses text produced by Encode. Lower-case input and the aliases
// O for 0 and I or L for 1 are accepted. Every failure is a *DecodeError that
// matches ErrDecode.
func Decode(s string) (ID, error) {
	if len(s) != EncodedLen {
		return ID{}, &DecodeError{Input: s, Offset: -1, Err: ErrInvalidLength}
	}

	var n uint64

	for i := range EncodedLen {
		v := decodeTable[s[i]]
		if v == invalidSymbol || (i == 0 && v > maxLeadSymbol) {
			return ID{}, &DecodeError{Input: s, Offset: i, Err: ErrInvalidCharacter}
		}

		n = n<<bitsPerSymbol | uint64(v)
	}

	return FromUint64(n), nil
}

// Parse is an alias for Decode.
func Parse(s string) (ID, error) {
	return Decode(s)
}

// MustParse is like Parse but panics on malformed input. Use it for
// constants known at compile time.
func MustParse(s string) ID {
	id, err := Decode(s)
	if err != nil {
		panic(err)
	}

	return id
}

// String implements fmt.Stringer using Encode.
func (id ID) String() string {
	return Encode(id)
}

// canonical rewrites s into the form Encode would produce, leaving symbols
// outside the alphabet untouched so they never match.
func canonical(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 0x80 {
			return r
		}

		if v := decodeTable[r]; v != invalidSymbol {
			return rune(Alphabet[v])
		}

		return r
	}, s)
}
