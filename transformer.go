package u8scan

import "golang.org/x/text/transform"

// NewTransformer returns a transform.Transformer running p over its input,
// so a scan can be chained with other transformers or wrapped with
// transform.NewReader and transform.NewWriter. It accepts the options of
// Scan. Once the scan stops, remaining input is consumed and discarded.
func NewTransformer(p Processor, opts ...Option) transform.Transformer {
	return &scanTransformer{s: newScanner(p, opts)}
}

type scanTransformer struct {
	s       *scanner
	buf     []byte
	pending []byte // output produced but not yet delivered
}

func (t *scanTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if len(t.pending) > 0 {
		nDst = copy(dst, t.pending)
		t.pending = t.pending[nDst:]
		if len(t.pending) > 0 {
			return nDst, 0, transform.ErrShortDst
		}
	}

	if t.s.state == StateStopped {
		return nDst, len(src), nil
	}

	t.buf, nSrc = t.s.scan(t.buf[:0], src, atEOF)

	n := copy(dst[nDst:], t.buf)
	nDst += n
	if n < len(t.buf) {
		t.pending = append(t.pending[:0], t.buf[n:]...)
		return nDst, nSrc, transform.ErrShortDst
	}

	if t.s.state == StateStopped {
		return nDst, len(src), nil
	}
	if nSrc < len(src) {
		return nDst, nSrc, transform.ErrShortSrc
	}
	return nDst, nSrc, nil
}

func (t *scanTransformer) Reset() {
	t.s.reset()
	t.pending = t.pending[:0]
}
