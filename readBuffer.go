package u8scan

import (
	"errors"
	"fmt"
	"io"
)

type readBuffer struct {
	buf        []byte
	start, end int
}

func (rb *readBuffer) init(size int) {
	if len(rb.buf) == 0 {
		if size <= 0 {
			size = defaultReadBufSize
		}
		rb.buf = make([]byte, size)
	}
}

func (rb *readBuffer) window() []byte {
	return rb.buf[rb.start:rb.end]
}

func (rb *readBuffer) advance(consumed int) {
	if consumed <= 0 {
		return
	}
	rb.start += consumed
	if rb.start >= rb.end {
		rb.start, rb.end = 0, 0
	}
}

func (rb *readBuffer) compact() {
	if rb.start == 0 || rb.start == rb.end {
		return
	}
	copy(rb.buf, rb.buf[rb.start:rb.end])
	rb.end -= rb.start
	rb.start = 0
}

func (rb *readBuffer) ensureWriteSpace() error {
	if rb.end < len(rb.buf) {
		return nil
	}
	if rb.start > 0 {
		rb.compact()
		if rb.end < len(rb.buf) {
			return nil
		}
	}

	// No space and cannot compact: grow.
	cur := len(rb.buf)
	if cur == 0 {
		cur = defaultReadBufSize
	}
	newLen := min(cur*2, maxReadBufSize)
	if newLen <= len(rb.buf) {
		return fmt.Errorf("[u8scan] read buffer exceeded %d bytes: %w", maxReadBufSize, ErrBufferFull)
	}

	nb := make([]byte, newLen)
	copy(nb, rb.window())
	rb.end = rb.end - rb.start
	rb.start = 0
	rb.buf = nb
	return nil
}

func (rb *readBuffer) readMore(r io.Reader) (int, error) {
	if err := rb.ensureWriteSpace(); err != nil {
		return 0, err
	}
	n, err := r.Read(rb.buf[rb.end:])
	if n > 0 {
		rb.end += n
	}
	return n, err
}

// feedUntilDone reads r and hands the unconsumed window to feeder until the
// feeder is done or the input is exhausted. Bytes the feeder leaves behind
// are presented again, followed by the next read.
func (rb *readBuffer) feedUntilDone(r io.Reader, feeder streamFeeder, out io.Writer) error {
	eof := false

	for {
		if !eof {
			if _, err := rb.readMore(r); err != nil {
				if !errors.Is(err, io.EOF) {
					if errors.Is(err, ErrBufferFull) {
						return err
					}
					return fmt.Errorf("[u8scan] reading input: %w", err)
				}
				eof = true
			}
		}

		consumed, done, err := feeder.feed(rb.window(), eof, out)
		rb.advance(consumed)
		if err != nil {
			return err
		}
		if done || eof {
			return nil
		}

		// Need more data. Keep the held back tail at the start so the next
		// read appends contiguously.
		if consumed == 0 && (rb.end-rb.start) > 0 {
			rb.compact()
		}
	}
}
