package u8scan

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

var streamInputs = []struct {
	name string
	raw  string
}{
	{"empty", ""},
	{"ascii", "Hello World"},
	{"mixed", "Hello 世界! 123 🌍 Test."},
	{"bom", BOM + "Hello 世界"},
	{"bom only", BOM},
	{"partial bom", "\xEF\xBB"},
	{"invalid", "Valid\xFFMore\x80\xC3"},
	{"truncated tail", "abc\xF0\x9F\x8C"},
	{"bad continuation", "\xE4\x41\x96世"},
}

func TestDecoder(t *testing.T) {
	for _, tc := range streamInputs {
		t.Run(tc.name, func(t *testing.T) {
			expected := Scan([]byte(tc.raw), replaceInvalid)

			dec := NewDecoder(strings.NewReader(tc.raw), replaceInvalid)
			b := bytes.NewBuffer(nil)
			n, err := dec.WriteTo(b)
			require.NoError(t, err)
			require.Equal(t, int64(len(expected)), n)
			require.Equal(t, string(expected), b.String())

			stats := dec.Stats()
			require.Equal(t, int64(len(tc.raw)), stats.BytesConsumed)
			require.Equal(t, n, stats.BytesProduced)
			require.Equal(t, HasBOM([]byte(tc.raw)), stats.BOM)
			require.False(t, stats.Stopped)
		})
	}
}

// TestSplitReads feeds the input one byte per read so every multi-byte
// sequence and the BOM are split across reads.
func TestSplitReads(t *testing.T) {
	for _, tc := range streamInputs {
		t.Run(tc.name, func(t *testing.T) {
			for _, opts := range [][]Option{
				nil,
				{WithBufferSize(1)},
				{WithBOMAction(BOMCopy)},
				{WithoutValidation()},
				{WithMode(ModeASCII)},
				{WithMaxOutput(7)},
			} {
				expected := Scan([]byte(tc.raw), replaceInvalid, opts...)

				dec := NewDecoder(iotest.OneByteReader(strings.NewReader(tc.raw)), replaceInvalid, opts...)
				b := bytes.NewBuffer(nil)
				_, err := dec.WriteTo(b)
				require.NoError(t, err)
				require.Equal(t, string(expected), b.String())
			}
		})
	}
}

func TestDecoderPipe(t *testing.T) {
	raw := strings.Repeat("Hello 世界 🌍 \xFF", 1000)

	r, w := io.Pipe()
	go func() {
		src := []byte(raw)
		for len(src) > 0 {
			n := min(len(src), 7)
			if _, err := w.Write(src[:n]); err != nil {
				panic(err)
			}
			src = src[n:]
		}
		if err := w.Close(); err != nil {
			panic(err)
		}
	}()

	dec := NewDecoder(r, replaceInvalid, WithBufferSize(16))
	b := bytes.NewBuffer(nil)
	_, err := dec.WriteTo(b)
	require.NoError(t, err)
	require.Equal(t, string(ScanUTF8([]byte(raw), replaceInvalid)), b.String())

	stats := dec.Stats()
	require.Equal(t, int64(1000*12), stats.Chars)
	require.Equal(t, int64(1000), stats.Invalid)
}

func TestDecoderStop(t *testing.T) {
	dec := NewDecoder(strings.NewReader("Hello World"), stopAtSpace)
	b := bytes.NewBuffer(nil)
	_, err := dec.WriteTo(b)
	require.NoError(t, err)
	require.Equal(t, "Hello", b.String())

	stats := dec.Stats()
	require.True(t, stats.Stopped)
	require.Equal(t, int64(5), stats.BytesConsumed)
	require.Equal(t, int64(6), stats.Chars)

	// nothing more after a stop
	n, err := dec.WriteTo(b)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestDecoderErrors(t *testing.T) {
	errRead := errors.New("read failed")
	dec := NewDecoder(iotest.ErrReader(errRead), replaceInvalid)
	_, err := dec.WriteTo(io.Discard)
	require.ErrorIs(t, err, errRead)

	dec = NewDecoder(strings.NewReader("abc"), replaceInvalid)
	_, err = dec.WriteTo(nil)
	require.ErrorIs(t, err, errWriterNil)

	errWrite := errors.New("write failed")
	dec = NewDecoder(strings.NewReader("abc"), replaceInvalid)
	_, err = dec.WriteTo(failingWriter{errWrite})
	require.ErrorIs(t, err, errWrite)
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestReadBufferLimit(t *testing.T) {
	rb := readBuffer{buf: make([]byte, maxReadBufSize), end: maxReadBufSize}
	err := rb.ensureWriteSpace()
	require.ErrorIs(t, err, ErrBufferFull)

	rb = readBuffer{buf: make([]byte, 4), start: 2, end: 4}
	require.NoError(t, rb.ensureWriteSpace())
	require.Equal(t, 0, rb.start)
	require.Equal(t, 2, rb.end)
	require.Len(t, rb.buf, 4)

	rb = readBuffer{buf: make([]byte, 4), end: 4}
	require.NoError(t, rb.ensureWriteSpace())
	require.Len(t, rb.buf, 8)
}

func BenchmarkDecoder(b *testing.B) {
	raw := []byte(strings.Repeat("The quick brown fox 世界 🌍 ", 40000))
	r := bytes.NewReader(raw)

	b.SetBytes(int64(len(raw)))
	for b.Loop() {
		_, err := r.Seek(0, io.SeekStart)
		require.NoError(b, err)
		dec := NewDecoder(r, replaceInvalid)
		_, err = dec.WriteTo(io.Discard)
		require.NoError(b, err)
	}
}
