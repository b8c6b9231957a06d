package tinyid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinyid-go/tinyid/tinyid"
)

func TestEncodeNull(t *testing.T) {
	text := tinyid.Encode(tinyid.Null())
	assert.Equal(t, "0000000000000", text)
	assert.Len(t, text, tinyid.EncodedLen)

	id, err := tinyid.Decode(text)
	require.NoError(t, err)
	assert.True(t, id.IsNull())
}

func TestEncodeKnownValues(t *testing.T) {
	testCases := []struct {
		name string
		id   tinyid.ID
		want string
	}{
		{name: "one", id: tinyid.FromUint64(1), want: "0000000000001"},
		{name: "alphabet end", id: tinyid.FromUint64(31), want: "000000000000Z"},
		{name: "carry", id: tinyid.FromUint64(32), want: "0000000000010"},
		{name: "all ones", id: tinyid.FromUint64(^uint64(0)), want: "FZZZZZZZZZZZZ"},
		{name: "top bit", id: tinyid.FromUint64(1 << 63), want: "8000000000000"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tinyid.Encode(tc.id))
			assert.Equal(t, tc.want, tc.id.String())
		})
	}
}

func TestRoundTrip(t *testing.T) {
	ids := []tinyid.ID{tinyid.Null(), tinyid.FromUint64(^uint64(0))}

	for bit := range 64 {
		ids = append(ids, tinyid.FromUint64(1<<bit), tinyid.FromUint64(^uint64(1<<bit)))
	}

	for b := range 256 {
		var raw [tinyid.Size]byte
		for i := range raw {
			raw[i] = byte(b)
		}

		ids = append(ids, tinyid.FromBytes(raw))
	}

	gen := tinyid.NewGenerator(tinyid.NewSeededSource(7))
	for range 10_000 {
		ids = append(ids, gen.MustRandom())
	}

	for _, id := range ids {
		text := tinyid.Encode(id)
		require.Len(t, text, tinyid.EncodedLen)

		back, err := tinyid.Decode(text)
		require.NoError(t, err, "decode %s", text)
		require.Equal(t, id, back, "round trip of %x", id[:])
	}
}

func TestDecodeLenientInput(t *testing.T) {
	want := tinyid.MustParse("7ZK3Q0M1XH4RT")

	for _, input := range []string{
		"7zk3q0m1xh4rt",
		"7ZK3QOM1XH4RT",
		"7ZK3Q0MIXH4RT",
		"7ZK3Q0MLXH4RT",
		"7zk3qomlxh4rt",
	} {
		got, err := tinyid.Decode(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}
}

func TestDecodeErrors(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		wantReason error
		wantOffset int
	}{
		{name: "empty", input: "", wantReason: tinyid.ErrInvalidLength, wantOffset: -1},
		{name: "too short", input: "000000000000", wantReason: tinyid.ErrInvalidLength, wantOffset: -1},
		{name: "too long", input: "00000000000000", wantReason: tinyid.ErrInvalidLength, wantOffset: -1},
		{name: "punctuation", input: "000000!000000", wantReason: tinyid.ErrInvalidCharacter, wantOffset: 6},
		{name: "excluded U", input: "00000000000U0", wantReason: tinyid.ErrInvalidCharacter, wantOffset: 11},
		{name: "space", input: "000000 000000", wantReason: tinyid.ErrInvalidCharacter, wantOffset: 6},
		{name: "leading overflow", input: "G000000000000", wantReason: tinyid.ErrInvalidCharacter, wantOffset: 0},
		{name: "multi byte rune", input: "00000000000é", wantReason: tinyid.ErrInvalidCharacter, wantOffset: 11},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := tinyid.Decode(tc.input)
			require.Error(t, err)

			assert.True(t, id.IsNull())
			assert.ErrorIs(t, err, tinyid.ErrDecode)
			assert.ErrorIs(t, err, tc.wantReason)
			assert.NotErrorIs(t, err, tinyid.ErrRandomSource)

			var decodeErr *tinyid.DecodeError
			require.True(t, errors.As(err, &decodeErr))
			assert.Equal(t, tc.input, decodeErr.Input)
			assert.Equal(t, tc.wantOffset, decodeErr.Offset)
			assert.NotEmpty(t, decodeErr.Error())
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { tinyid.MustParse("nope") })
	assert.NotPanics(t, func() { tinyid.MustParse("F" + strings.Repeat("Z", tinyid.EncodedLen-1)) })
}

func TestParseIsDecode(t *testing.T) {
	a, errA := tinyid.Parse("0123456789ABC")
	b, errB := tinyid.Decode("0123456789ABC")

	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}
