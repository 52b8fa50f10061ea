package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64 whose bit length is itself uniform,
// so small and large magnitudes are equally likely.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.uint64Locked()
}

func (r *RNG) uint64Locked() uint64 {
	bits := r.rand.Intn(65)
	if bits == 0 {
		return 0
	}
	v := r.rand.Uint64()
	if bits < 64 {
		v &= 1<<uint(bits) - 1
	}
	return v
}

// Int64 returns a pseudo-random int64 with uniform bit length and sign.
func (r *RNG) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := int64(r.uint64Locked())
	if r.rand.Intn(2) == 0 {
		return -v
	}
	return v
}

// Literal renders v as a literal that parses back to v with base 0.
func (r *RNG) Literal(v int64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	sign := ""
	switch {
	case v < 0:
		sign = "-"
	case r.rand.Intn(4) == 0:
		sign = "+"
	}

	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	return sign + r.unsignedLiteralLocked(mag)
}

// UnsignedLiteral renders v as an unsigned literal that parses back to v
// with base 0.
func (r *RNG) UnsignedLiteral(v uint64) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unsignedLiteralLocked(v)
}

func (r *RNG) unsignedLiteralLocked(v uint64) string {
	var prefix string
	var radix int
	switch r.rand.Intn(5) {
	case 0:
		prefix, radix = "0b", 2
	case 1:
		prefix, radix = "0o", 8
	case 2:
		prefix, radix = "0", 8
	case 3:
		prefix, radix = "0x", 16
	default:
		prefix, radix = "", 10
	}

	digits := strconv.FormatUint(v, radix)

	if r.rand.Intn(2) == 0 {
		prefix = strings.ToUpper(prefix)
		digits = strings.ToUpper(digits)
	}

	var sb strings.Builder
	sb.WriteString(prefix)
	// An underscore may follow a letter prefix, but not the bare octal zero.
	allowLead := len(prefix) == 2
	for i := 0; i < len(digits); i++ {
		if (i > 0 || allowLead) && r.rand.Intn(4) == 0 {
			sb.WriteByte('_')
		}
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// Corrupt returns lit with one byte replaced by a character that is not a
// digit in any radix.
func (r *RNG) Corrupt(lit string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	const junk = "!#$%&*./:;<=>?@[]^{|}~ "
	b := []byte(lit)
	if len(b) == 0 {
		return string(junk[r.rand.Intn(len(junk))])
	}
	b[r.rand.Intn(len(b))] = junk[r.rand.Intn(len(junk))]
	return string(b)
}
