package u8scan

// sequenceLength returns the length announced by a UTF-8 lead byte, or 0 if
// b cannot start a multi-byte sequence.
func sequenceLength(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}
	return 0
}

// Decode decodes the character starting at byte offset pos of src.
//
// Decode never fails and never reads past len(src). Malformed input is
// reported through Valid == false with Size == 1, so advancing by Size always
// makes progress. A pos outside src yields an invalid unit whose content must
// not be trusted.
func Decode(src []byte, pos int, mode Mode, validate bool) Char {
	c := Char{Start: pos, Size: 1}

	if pos < 0 || pos >= len(src) {
		return c
	}

	lead := src[pos]
	c.Codepoint = rune(lead)

	if mode == ModeASCII || lead < 0x80 {
		c.ASCII = true
		c.Valid = true
		return c
	}

	n := sequenceLength(lead)
	if n == 0 || pos+n > len(src) {
		// stray continuation byte, 0xF8-0xFF, or truncated sequence
		return c
	}

	cp := rune(lead & (1<<(7-n) - 1))
	for i := 1; i < n; i++ {
		b := src[pos+i]
		if validate && b&0xC0 != 0x80 {
			return c
		}
		cp = cp<<6 | rune(b&0x3F)
	}

	c.Size = n
	c.Codepoint = cp
	c.Valid = true
	return c
}

// CharAt decodes the character at byte offset pos in UTF-8 mode with
// validation enabled.
func CharAt(src []byte, pos int) Char {
	return Decode(src, pos, ModeUTF8, true)
}

// incomplete reports whether the bytes at pos are the prefix of a multi-byte
// sequence that continues past the end of src. A streaming caller that has
// not reached EOF should wait for more input instead of decoding them.
func incomplete(src []byte, pos int, mode Mode, validate bool) bool {
	if mode == ModeASCII || pos >= len(src) {
		return false
	}
	n := sequenceLength(src[pos])
	if n == 0 || pos+n <= len(src) {
		return false
	}
	if !validate {
		return true
	}
	// A mismatching continuation byte already inside src decides the
	// result without more data.
	for i := pos + 1; i < len(src); i++ {
		if src[i]&0xC0 != 0x80 {
			return false
		}
	}
	return true
}
