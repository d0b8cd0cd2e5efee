package u8scan

import (
	"iter"
	"unsafe"
)

// Range is a lazy, restartable view of the characters in src[start:end].
//
// A Range borrows src: it must not be modified while the Range or any
// Iterator obtained from it is in use.
type Range struct {
	src        []byte
	start, end int
	mode       Mode
	validate   bool
}

// NewRange returns a Range over all of src. A leading BOM is skipped unless
// WithoutBOMSkip is given.
func NewRange(src []byte, opts ...Option) Range {
	return NewRangeBetween(src, 0, len(src), opts...)
}

// NewRangeBetween returns a Range over src[start:end]. Bounds are clamped to
// 0 <= start <= end <= len(src). The BOM is only skipped when start is 0.
func NewRangeBetween(src []byte, start, end int, opts ...Option) Range {
	cfg := newConfig(opts)

	end = min(max(end, 0), len(src))
	start = min(max(start, 0), end)

	if cfg.skipBOM && start == 0 && end >= bomSize && HasBOM(src) {
		start = bomSize
	}

	return Range{
		src:      src,
		start:    start,
		end:      end,
		mode:     cfg.mode,
		validate: cfg.validate,
	}
}

// Begin returns an iterator at the first character.
func (r Range) Begin() Iterator {
	return r.iteratorAt(r.start)
}

// End returns the iterator one past the last character.
func (r Range) End() Iterator {
	return r.iteratorAt(r.end)
}

// iteratorAt bounds decoding to the range end, so a sequence crossing end
// decodes as an invalid single byte instead of stepping over it.
func (r Range) iteratorAt(pos int) Iterator {
	return Iterator{src: r.src, limit: r.end, pos: pos, mode: r.mode, validate: r.validate}
}

// Empty reports whether the range spans no bytes. It does not decode.
func (r Range) Empty() bool {
	return r.start >= r.end
}

// Len counts the characters in the range. It is O(n).
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	if r.mode == ModeASCII {
		return r.end - r.start
	}

	n := 0
	for pos := r.start; pos < r.end; {
		if useFastASCII {
			if run := asciiRun(r.src[pos:r.end]); run > 0 {
				n += run
				pos += run
				continue
			}
		}
		pos += Decode(r.src[:r.end], pos, r.mode, r.validate).Size
		n++
	}
	return n
}

// Bytes returns the byte span covered by the range.
func (r Range) Bytes() []byte {
	return r.src[r.start:r.end]
}

// All yields every character of the range in order.
func (r Range) All() iter.Seq[Char] {
	return func(yield func(Char) bool) {
		for it, end := r.Begin(), r.End(); !it.Equal(end); it.Next() {
			if !yield(it.Char()) {
				return
			}
		}
	}
}

// Iterator is a forward cursor over a Range. Two iterators are equal when
// they refer to the same buffer and the same byte position, whatever they
// have decoded so far.
type Iterator struct {
	src      []byte
	limit    int // decoding stops here
	pos      int
	mode     Mode
	validate bool

	cur    Char
	cached bool
}

// Char decodes the character at the current position. The result is cached
// until the iterator moves.
func (it *Iterator) Char() Char {
	if !it.cached {
		it.cur = Decode(it.src[:it.limit], it.pos, it.mode, it.validate)
		it.cached = true
	}
	return it.cur
}

// Next advances past the current character.
func (it *Iterator) Next() {
	it.pos += it.Char().Size
	it.cached = false
}

// Pos returns the current byte offset.
func (it *Iterator) Pos() int {
	return it.pos
}

// Equal reports whether both iterators point at the same byte of the same
// buffer.
func (it *Iterator) Equal(other Iterator) bool {
	return it.pos == other.pos &&
		unsafe.SliceData(it.src) == unsafe.SliceData(other.src)
}
