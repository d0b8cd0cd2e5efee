package u8scan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopyFamily(t *testing.T) {
	const src = "Hello123世界🌍Test456你好End🚀!"

	cases := []struct {
		name     string
		copy     func(dst, src []byte) []byte
		expected string
	}{
		{"copy", Copy, src},
		{"copy ascii", func(dst, src []byte) []byte { return CopyIf(dst, src, IsASCII) }, "Hello123Test456End!"},
		{"copy utf8", func(dst, src []byte) []byte { return CopyIf(dst, src, IsUTF8) }, "世界🌍你好🚀"},
		{"copy digits", func(dst, src []byte) []byte { return CopyIf(dst, src, IsDigitASCII) }, "123456"},
		{"copy emoji", func(dst, src []byte) []byte { return CopyIf(dst, src, IsEmoji) }, "🌍🚀"},
		{"until digit", func(dst, src []byte) []byte { return CopyUntil(dst, src, IsDigitASCII) }, "Hello"},
		{"until missing", func(dst, src []byte) []byte { return CopyUntil(dst, src, HasCodepoint('#')) }, src},
		{"from first utf8", func(dst, src []byte) []byte { return CopyFrom(dst, src, IsUTF8) }, "世界🌍Test456你好End🚀!"},
		{"from missing", func(dst, src []byte) []byte { return CopyFrom(dst, src, HasCodepoint('#')) }, ""},
		{"first 10", func(dst, src []byte) []byte { return CopyN(dst, src, 10) }, "Hello123世界"},
		{"first 0", func(dst, src []byte) []byte { return CopyN(dst, src, 0) }, ""},
		{"more than available", func(dst, src []byte) []byte { return CopyN(dst, src, 1000) }, src},
		{"while ascii", func(dst, src []byte) []byte { return CopyWhile(dst, src, IsASCII) }, "Hello123"},
		{"while alpha", func(dst, src []byte) []byte { return CopyWhile(dst, src, IsAlphaASCII) }, "Hello"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, string(tc.copy(nil, []byte(src))))
			require.Equal(t, "> "+tc.expected, string(tc.copy([]byte("> "), []byte(src))))
		})
	}
}

func TestCopySkipsBOM(t *testing.T) {
	src := []byte(BOM + "a世")

	require.Equal(t, "a世", string(Copy(nil, src)))
	require.Equal(t, "a", string(CopyN(nil, src, 1)))
	require.Equal(t, "a", string(CopyUntil(nil, src, IsUTF8)))
	require.Equal(t, "a世", string(CopyFrom(nil, src, IsASCII)))
	require.Empty(t, Copy(nil, []byte(BOM)))
}

func TestTransformChars(t *testing.T) {
	src := []byte(BOM + "Hello 世界!")

	require.Equal(t, "HELLO 世界!", string(TransformChars(nil, src, AppendUpperASCII)))
	require.Equal(t, "hello 世界!", string(TransformChars(nil, src, AppendLowerASCII)))
	require.Equal(t, "Hello 世界!", string(TransformChars(nil, src, AppendChar)))

	cps := TransformChars(nil, []byte("a世"), func(dst []byte, c Char) []byte {
		return fmt.Appendf(dst, "U+%04X;", c.Codepoint)
	})
	require.Equal(t, "U+0061;U+4E16;", string(cps))
}
