package u8scan

import "slices"

// ToLowerASCII returns the codepoint of c with A-Z mapped to a-z. Other
// characters are returned unchanged.
func ToLowerASCII(c Char) rune {
	if c.ASCII && c.Codepoint >= 'A' && c.Codepoint <= 'Z' {
		return c.Codepoint + ('a' - 'A')
	}
	return c.Codepoint
}

// ToUpperASCII returns the codepoint of c with a-z mapped to A-Z.
func ToUpperASCII(c Char) rune {
	if c.ASCII && c.Codepoint >= 'a' && c.Codepoint <= 'z' {
		return c.Codepoint - ('a' - 'A')
	}
	return c.Codepoint
}

// AppendLowerASCII appends c lowercased. Non-ASCII characters are appended
// through AppendChar.
func AppendLowerASCII(dst []byte, c Char) []byte {
	if c.ASCII {
		return append(dst, byte(ToLowerASCII(c)))
	}
	return AppendChar(dst, c)
}

// AppendUpperASCII appends c uppercased.
func AppendUpperASCII(dst []byte, c Char) []byte {
	if c.ASCII {
		return append(dst, byte(ToUpperASCII(c)))
	}
	return AppendChar(dst, c)
}

// AppendChar appends the UTF-8 encoding of c.Codepoint. Nothing is appended
// for values from 0x110000 up. Surrogates are encoded like any other value,
// and an invalid character encodes its lead byte as a codepoint, so the
// result differs from the source bytes for those.
func AppendChar(dst []byte, c Char) []byte {
	cp := uint32(c.Codepoint)
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst,
			0xC0|byte(cp>>6),
			0x80|byte(cp)&0x3F)
	case cp < 0x10000:
		return append(dst,
			0xE0|byte(cp>>12),
			0x80|byte(cp>>6)&0x3F,
			0x80|byte(cp)&0x3F)
	case cp < 0x110000:
		return append(dst,
			0xF0|byte(cp>>18),
			0x80|byte(cp>>12)&0x3F,
			0x80|byte(cp>>6)&0x3F,
			0x80|byte(cp)&0x3F)
	}
	return dst
}

// Quote appends src enclosed in left and right. ASCII occurrences of left,
// right and escape are preceded by escape; everything else is copied
// verbatim. A leading BOM is not copied.
func Quote(dst, src []byte, left, right, escape byte) []byte {
	dst = slices.Grow(dst, MaxQuotedLength(len(src)))
	dst = append(dst, left)

	for c := range NewRange(src).All() {
		if c.ASCII {
			b := byte(c.Codepoint)
			if b == left || b == right || b == escape {
				dst = append(dst, escape)
			}
			dst = append(dst, b)
			continue
		}
		dst = append(dst, src[c.Start:c.End()]...)
	}

	return append(dst, right)
}

// QuoteString quotes s with double quotes and backslash escapes.
func QuoteString(s string) string {
	return string(Quote(nil, []byte(s), '"', '"', '\\'))
}
