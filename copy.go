package u8scan

// The copy functions append the original bytes of selected characters of
// src to dst and return the extended slice. They iterate NewRange(src), so
// a leading BOM is never copied.

// Copy appends every character of src.
func Copy(dst, src []byte) []byte {
	return append(dst, NewRange(src).Bytes()...)
}

// CopyIf appends the characters satisfying pred.
func CopyIf(dst, src []byte, pred Predicate) []byte {
	for c := range Filter(NewRange(src), pred) {
		dst = append(dst, src[c.Start:c.End()]...)
	}
	return dst
}

// CopyUntil appends characters up to, not including, the first one
// satisfying pred.
func CopyUntil(dst, src []byte, pred Predicate) []byte {
	r := NewRange(src)
	it := Find(r, pred)
	return append(dst, src[r.start:it.Pos()]...)
}

// CopyFrom appends characters starting at the first one satisfying pred.
// Nothing is appended if no character does.
func CopyFrom(dst, src []byte, pred Predicate) []byte {
	r := NewRange(src)
	it := Find(r, pred)
	return append(dst, src[it.Pos():r.end]...)
}

// CopyN appends the first n characters, or all of them if there are fewer.
func CopyN(dst, src []byte, n int) []byte {
	r := NewRange(src)
	it, end := r.Begin(), r.End()
	for i := 0; i < n && !it.Equal(end); i++ {
		it.Next()
	}
	return append(dst, src[r.start:it.Pos()]...)
}

// CopyWhile appends characters as long as they satisfy pred.
func CopyWhile(dst, src []byte, pred Predicate) []byte {
	return CopyUntil(dst, src, Not(pred))
}

// TransformChars calls fn for every character of src, letting it append
// whatever it wants to dst. AppendChar, AppendLowerASCII and
// AppendUpperASCII fit fn directly.
func TransformChars(dst, src []byte, fn func(dst []byte, c Char) []byte) []byte {
	for c := range NewRange(src).All() {
		dst = fn(dst, c)
	}
	return dst
}
