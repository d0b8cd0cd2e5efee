package u8scan

// contentRange is the range every access function works on: all of src
// after a leading BOM, whatever the BOM skip option says.
func contentRange(src []byte, opts []Option) Range {
	return NewRangeBetween(src, DetectBOM(src).Size, len(src), opts...)
}

// Length returns the number of characters in src, not counting a leading
// BOM. In ModeASCII every byte counts as one character.
func Length(src []byte, opts ...Option) int {
	return contentRange(src, opts).Len()
}

// At returns the character at character index index. It walks the input
// from the start, so it is O(index). The error is an *IndexError wrapping
// ErrOutOfRange when index is negative or not below Length(src).
func At(src []byte, index int, opts ...Option) (Char, error) {
	r := contentRange(src, opts)
	it, end := r.Begin(), r.End()

	i := 0
	for ; i < index && !it.Equal(end); i++ {
		it.Next()
	}

	if index < 0 || it.Equal(end) {
		if index < 0 {
			i = r.Len()
		}
		return Char{}, &IndexError{Index: index, Length: i}
	}
	return it.Char(), nil
}

// Empty reports whether src holds no characters besides a BOM.
func Empty(src []byte, opts ...Option) bool {
	return contentRange(src, opts).Empty()
}

// Front returns the first character after a leading BOM, or ErrEmpty.
func Front(src []byte, opts ...Option) (Char, error) {
	r := contentRange(src, opts)
	if r.Empty() {
		return Char{}, ErrEmpty
	}
	it := r.Begin()
	return it.Char(), nil
}

// Back returns the last character, or ErrEmpty. Characters can only be
// found walking forward, so Back decodes all of src.
func Back(src []byte, opts ...Option) (Char, error) {
	r := contentRange(src, opts)
	if r.Empty() {
		return Char{}, ErrEmpty
	}

	var last Char
	for c := range r.All() {
		last = c
	}
	return last, nil
}

// Valid reports whether every character after a leading BOM is well formed.
func Valid(src []byte, opts ...Option) bool {
	return AllOf(contentRange(src, opts), IsValid)
}
