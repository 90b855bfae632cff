package seq

// DefaultBufferSize is the number of bytes read from a file per refill.
const DefaultBufferSize = 640 * 1024

// Config holds construction parameters for readers.
type Config struct {
	// Number of bytes loaded per buffer refill.
	BufferSize int

	// Subtracted from each raw FASTQ quality byte to obtain its score.
	QualityOffset int
}

// An Option changes a Config.
type Option func(*Config)

// WithBufferSize sets the buffer capacity in bytes. Values below 1 are
// ignored.
func WithBufferSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.BufferSize = n
		}
	}
}

// WithQualityOffset sets the FASTQ quality encoding offset, e.g. 64 for
// Phred+64 files. Values outside 0..126 are ignored.
func WithQualityOffset(offset int) Option {
	return func(c *Config) {
		if offset >= 0 && offset <= 126 {
			c.QualityOffset = offset
		}
	}
}

// NewConfig returns the default Config with opts applied in order.
func NewConfig(opts ...Option) Config {
	c := Config{
		BufferSize:    DefaultBufferSize,
		QualityOffset: DefaultQualityOffset,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
