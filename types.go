package u8scan

import "fmt"

// Char is one decoded character occurrence. It carries offsets into the
// source rather than a reference to it, so a Char may outlive its buffer.
type Char struct {
	Start     int  // byte offset of the first byte in the source
	Size      int  // number of bytes occupied (1-4), never 0
	Codepoint rune // decoded value, or the raw lead byte if invalid
	ASCII     bool // single byte below 0x80, or ModeASCII forced one byte
	Valid     bool // sequence conforms to UTF-8 for its declared length
	BOM       bool // reserved; decoded characters never set it
}

// End returns the offset just past the character.
func (c Char) End() int {
	return c.Start + c.Size
}

// String returns the UTF-8 encoding of the codepoint.
func (c Char) String() string {
	return string(AppendChar(nil, c))
}

// GoString makes test failures readable.
func (c Char) GoString() string {
	return fmt.Sprintf("u8scan.Char{Start:%d, Size:%d, Codepoint:%#x, ASCII:%t, Valid:%t}",
		c.Start, c.Size, c.Codepoint, c.ASCII, c.Valid)
}

// Mode selects how bytes are grouped into characters.
type Mode int

const (
	ModeUTF8  Mode = iota // multi-byte sequences are decoded (default)
	ModeASCII             // every byte is its own character
)

func (m Mode) String() string {
	switch m {
	case ModeUTF8:
		return "utf8"
	case ModeASCII:
		return "ascii"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// State is the scan state, carried between calls when scanning incrementally.
type State int

const (
	StateBOM      State = 0 // default; a leading BOM has not been resolved yet
	StateScanning State = 1
	StateStopped  State = 2 // terminal, set by ActionStop or the output cap
)

// BOMAction decides what a scan does with a leading byte order mark.
type BOMAction int

const (
	BOMIgnore BOMAction = iota // drop the BOM (default)
	BOMCopy                    // copy the BOM bytes to the output
	BOMCustom                  // write whatever the BOMHandler returns
)

// BOMInfo is the result of BOM detection.
type BOMInfo struct {
	Found bool
	Size  int // 3 when Found, otherwise 0
}

// BOMHandler produces the output written in place of a detected BOM.
type BOMHandler func(info BOMInfo, bom []byte) []byte
