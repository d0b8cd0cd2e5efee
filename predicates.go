package u8scan

// IsASCII reports whether c is a single byte below 0x80.
func IsASCII(c Char) bool {
	return c.ASCII
}

// IsUTF8 reports whether c is a valid multi-byte sequence.
func IsUTF8(c Char) bool {
	return c.Valid && !c.ASCII
}

// IsValid reports whether c decoded without error.
func IsValid(c Char) bool {
	return c.Valid
}

// HasCodepoint returns a predicate matching characters whose codepoint is cp.
func HasCodepoint(cp rune) Predicate {
	return func(c Char) bool {
		return c.Codepoint == cp
	}
}

// InRange returns a predicate matching codepoints in [lo, hi].
func InRange(lo, hi rune) Predicate {
	return func(c Char) bool {
		return c.Codepoint >= lo && c.Codepoint <= hi
	}
}

// IsDigitASCII matches 0-9.
func IsDigitASCII(c Char) bool {
	return c.ASCII && c.Codepoint >= '0' && c.Codepoint <= '9'
}

// IsAlphaASCII matches a-z and A-Z.
func IsAlphaASCII(c Char) bool {
	return IsLowerASCII(c) || IsUpperASCII(c)
}

// IsAlnumASCII matches ASCII letters and digits.
func IsAlnumASCII(c Char) bool {
	return IsAlphaASCII(c) || IsDigitASCII(c)
}

// IsLowerASCII matches a-z.
func IsLowerASCII(c Char) bool {
	return c.ASCII && c.Codepoint >= 'a' && c.Codepoint <= 'z'
}

// IsUpperASCII matches A-Z.
func IsUpperASCII(c Char) bool {
	return c.ASCII && c.Codepoint >= 'A' && c.Codepoint <= 'Z'
}

// IsSpaceASCII matches space, tab, LF and CR.
func IsSpaceASCII(c Char) bool {
	if !c.ASCII {
		return false
	}
	switch c.Codepoint {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

// Not negates pred.
func Not(pred Predicate) Predicate {
	return func(c Char) bool {
		return !pred(c)
	}
}
