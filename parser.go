package numlit

import "time"

// NativeBitSize is the width a bit size of 0 resolves to.
//
// It is fixed rather than taken from the host so that results do not
// depend on the platform a program happens to run on.
const NativeBitSize = 64

// Parser converts integer literals with a fixed configuration.
//
// A Parser holds no mutable state and is safe for concurrent use.
// The zero configuration is what the package-level functions use.
type Parser struct {
	nativeBitSize int
	metrics       MetricsCollector
}

var defaultParser = &Parser{nativeBitSize: NativeBitSize}

// NewParser creates a Parser.
func NewParser(optFns ...Option) (*Parser, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.nativeBitSize != 32 && opts.nativeBitSize != 64 {
		return nil, &ErrInvalidNativeBitSize{BitSize: opts.nativeBitSize}
	}

	return &Parser{
		nativeBitSize: opts.nativeBitSize,
		metrics:       opts.metricsCollector,
	}, nil
}

// NativeBitSize returns the width a bit size of 0 resolves to.
func (p *Parser) NativeBitSize() int {
	return p.nativeBitSize
}

// ParseUint is like the package-level ParseUint.
func (p *Parser) ParseUint(s string, base, bitSize int) (uint64, error) {
	if p.metrics == nil {
		v, nerr := p.parseUint(s, base, bitSize)
		return v, asError(nerr)
	}

	start := time.Now()
	v, nerr := p.parseUint(s, base, bitSize)
	err := asError(nerr)
	p.metrics.RecordParse(fnParseUint, time.Since(start), err)
	return v, err
}

// ParseInt is like the package-level ParseInt.
func (p *Parser) ParseInt(s string, base, bitSize int) (int64, error) {
	if p.metrics == nil {
		v, nerr := p.parseInt(s, base, bitSize)
		return v, asError(nerr)
	}

	start := time.Now()
	v, nerr := p.parseInt(s, base, bitSize)
	err := asError(nerr)
	p.metrics.RecordParse(fnParseInt, time.Since(start), err)
	return v, err
}

func (p *Parser) resolveBitSize(bitSize int) int {
	if bitSize == 0 {
		return p.nativeBitSize
	}
	return bitSize
}

// asError keeps a nil *NumError from becoming a non-nil error interface.
func asError(e *NumError) error {
	if e == nil {
		return nil
	}
	return e
}
