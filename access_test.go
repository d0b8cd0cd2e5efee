package u8scan

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	cases := []struct {
		name     string
		raw      string
		opts     []Option
		expected int
	}{
		{"empty", "", nil, 0},
		{"ascii", "Hello", nil, 5},
		{"mixed", "Hello 世界! 123 🌍 Test.", nil, 21},
		{"bom", BOM + "Hello", nil, 5},
		{"bom only", BOM, nil, 0},
		{"bom skip disabled still hidden", BOM + "ab", []Option{WithoutBOMSkip()}, 2},
		{"invalid bytes", "a\xFF\xFEb", nil, 4},
		{"ascii mode", "世界", []Option{WithMode(ModeASCII)}, 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, Length([]byte(tc.raw), tc.opts...))
		})
	}
}

func TestAt(t *testing.T) {
	src := []byte(BOM + "Hello 世界!")

	c, err := At(src, 0)
	require.NoError(t, err)
	require.Equal(t, rune('H'), c.Codepoint)
	require.Equal(t, 3, c.Start)

	c, err = At(src, 6)
	require.NoError(t, err)
	require.Equal(t, rune(0x4E16), c.Codepoint)

	c, err = At(src, 8)
	require.NoError(t, err)
	require.Equal(t, rune('!'), c.Codepoint)

	_, err = At(src, 9)
	require.ErrorIs(t, err, ErrOutOfRange)
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 9, ie.Index)
	require.Equal(t, 9, ie.Length)

	_, err = At(src, -1)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 9, ie.Length)

	_, err = At(nil, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestFrontBack(t *testing.T) {
	src := []byte(BOM + "Hello 世界")

	front, err := Front(src)
	require.NoError(t, err)
	require.Equal(t, rune('H'), front.Codepoint)

	back, err := Back(src)
	require.NoError(t, err)
	require.Equal(t, rune(0x754C), back.Codepoint)
	require.Equal(t, len(src), back.End())

	for _, empty := range []string{"", BOM} {
		_, err = Front([]byte(empty))
		require.ErrorIs(t, err, ErrEmpty)
		require.ErrorIs(t, err, ErrOutOfRange)

		_, err = Back([]byte(empty))
		require.ErrorIs(t, err, ErrEmpty)
	}
}

func TestEmpty(t *testing.T) {
	require.True(t, Empty(nil))
	require.True(t, Empty([]byte(BOM)))
	require.True(t, Empty([]byte(BOM), WithoutBOMSkip()))
	require.False(t, Empty([]byte(" ")))
	require.False(t, Empty([]byte("\xFF")))
}

func TestValid(t *testing.T) {
	require.True(t, Valid(nil))
	require.True(t, Valid([]byte(BOM+"Hello 世界 🌍")))
	require.False(t, Valid([]byte("Valid\xFFMore")))
	require.False(t, Valid([]byte("truncated \xE4\xB8")))
	require.True(t, Valid([]byte("\xC3\x41"), WithoutValidation()))
}

func TestIndexError(t *testing.T) {
	err := &IndexError{Index: 4, Length: 2}
	require.Equal(t, "u8scan: index 4 out of range [0:2]", err.Error())
	require.ErrorIs(t, err, ErrOutOfRange)
}
