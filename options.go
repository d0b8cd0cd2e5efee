package u8scan

const (
	defaultReadBufSize = 32 * 1024
	maxReadBufSize     = 8 * 1024 * 1024
)

// config holds the settings shared by ranges, access functions and scans.
// Settings that do not apply to an operation are ignored by it.
type config struct {
	mode       Mode
	validate   bool
	skipBOM    bool
	bomAction  BOMAction
	bomHandler BOMHandler
	maxOutput  int
	bufSize    int
}

// Option configures an operation.
type Option func(c *config)

func newConfig(opts []Option) config {
	c := config{
		mode:     ModeUTF8,
		validate: true,
		skipBOM:  true,
		bufSize:  defaultReadBufSize,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithMode selects UTF-8 decoding (default) or one character per byte.
func WithMode(m Mode) Option {
	return func(c *config) {
		c.mode = m
	}
}

// WithoutValidation decodes multi-byte sequences without checking their
// continuation bytes. Truncated sequences are still reported invalid.
func WithoutValidation() Option {
	return func(c *config) {
		c.validate = false
	}
}

// WithoutBOMSkip makes a Range start at the first byte even when it is a BOM.
// The indexed access functions always hide the BOM.
func WithoutBOMSkip() Option {
	return func(c *config) {
		c.skipBOM = false
	}
}

// WithBOMAction sets what Scan, Decoder and Transformer do with a leading BOM.
func WithBOMAction(a BOMAction) Option {
	return func(c *config) {
		c.bomAction = a
	}
}

// WithBOMHandler routes a leading BOM through h. It implies BOMCustom.
func WithBOMHandler(h BOMHandler) Option {
	return func(c *config) {
		c.bomAction = BOMCustom
		c.bomHandler = h
	}
}

// WithMaxOutput halts a scan before the next character once n bytes of
// output have been produced. Zero means unlimited.
func WithMaxOutput(n int) Option {
	return func(c *config) {
		c.maxOutput = n
	}
}

// WithBufferSize sets the initial read buffer size of a Decoder.
func WithBufferSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.bufSize = size
		}
	}
}
