// Package digits iterates the decimal digits of native integers,
// most-significant digit first.
package digits

// Counter walks the digits of a single value. Zero yields one digit.
type Counter struct {
	n   uint64
	pow uint64
}

// New returns a Counter over the digits of n.
func New(n uint64) *Counter {
	pow := uint64(1)
	for p := n; p >= 10; p /= 10 {
		pow *= 10
	}
	return &Counter{n: n, pow: pow}
}

// Next returns the next digit, or false after the last.
func (c *Counter) Next() (byte, bool) {
	if c.pow == 0 {
		return 0, false
	}
	d := byte(c.n / c.pow % 10)
	c.pow /= 10
	return d, true
}

// Count returns how many digits n renders as. Zero renders as one digit.
func Count(n uint64) int {
	count := 1
	for n >= 10 {
		n /= 10
		count++
	}
	return count
}

// Of returns the digits of n as a slice, most significant first.
func Of(n uint64) []byte {
	out := make([]byte, 0, Count(n))
	for c := New(n); ; {
		d, ok := c.Next()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}
