package u8scan

import (
	"errors"
	"fmt"
	"io"
)

// Decoder scans an io.Reader in chunks and writes the output to an
// io.Writer. Its output is the same as Scan over the whole input with the
// same Processor and options: a character split across reads is held back
// until the rest of it arrives.
//
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r  io.Reader
	rb readBuffer
	s  *scanner

	out      []byte
	consumed int64
	written  int64
}

// NewDecoder returns a Decoder reading from r. It accepts the options of
// Scan plus WithBufferSize.
func NewDecoder(r io.Reader, p Processor, opts ...Option) *Decoder {
	s := newScanner(p, opts)
	d := &Decoder{r: r, s: s}
	d.rb.init(s.cfg.bufSize)
	return d
}

var errWriterNil = errors.New("writer is nil")

type streamFeeder interface {
	feed(in []byte, atEOF bool, out io.Writer) (consumed int, done bool, err error)
}

// WriteTo scans the rest of the input and writes the output to w. It
// returns once the reader reports io.EOF or the scan stops.
func (d *Decoder) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, errWriterNil
	}

	before := d.written
	err := d.rb.feedUntilDone(d.r, d, w)
	return d.written - before, err
}

func (d *Decoder) feed(in []byte, atEOF bool, out io.Writer) (int, bool, error) {
	var n int
	d.out, n = d.s.scan(d.out[:0], in, atEOF)
	d.consumed += int64(n)

	if len(d.out) > 0 {
		written, err := out.Write(d.out)
		d.written += int64(written)
		if err != nil {
			return n, false, fmt.Errorf("[u8scan] writing output: %w", err)
		}
	}

	return n, d.s.state == StateStopped, nil
}

// Stats reports what the Decoder has done so far.
func (d *Decoder) Stats() Stats {
	return Stats{
		BytesConsumed: d.consumed,
		BytesProduced: d.written,
		Chars:         int64(d.s.chars),
		Invalid:       int64(d.s.invalid),
		BOM:           d.s.bom,
		Stopped:       d.s.state == StateStopped,
	}
}
