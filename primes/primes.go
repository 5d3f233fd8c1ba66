// Package primes provides lazy prime generation and factorization backed
// by a shared, growable prime cache.
package primes

import (
	"math"
	"sync"
)

// The cache holds every prime found so far, in order, and only ever
// grows. All access goes through mu.
var (
	mu    sync.Mutex
	cache = []uint64{2, 3, 5, 7}
)

// Counter yields primes in increasing order, stopping before a bound.
// Counters share the package cache, so interleaved counters do not redo
// each other's work.
type Counter struct {
	idx  int
	stop uint64
}

// NewCounter returns a Counter over the primes strictly below stop.
func NewCounter(stop uint64) *Counter { return &Counter{stop: stop} }

// All returns an unbounded Counter.
func All() *Counter { return &Counter{stop: math.MaxUint64} }

// Next returns the next prime, or false once the bound is reached.
func (c *Counter) Next() (uint64, bool) {
	mu.Lock()
	defer mu.Unlock()
	for c.idx >= len(cache) {
		grow()
	}
	p := cache[c.idx]
	if p >= c.stop {
		return 0, false
	}
	c.idx++
	return p, true
}

// grow extends the cache by one prime. Caller holds mu. The cache is
// contiguous, so it always covers the square root of the next candidate.
func grow() {
	for candidate := cache[len(cache)-1] + 2; ; candidate += 2 {
		divides := false
		for _, q := range cache {
			if q*q > candidate {
				break
			}
			if candidate%q == 0 {
				divides = true
				break
			}
		}
		if !divides {
			cache = append(cache, candidate)
			return
		}
	}
}

// smallestFactorLocked returns the smallest prime factor of n, or 0 when
// n is prime or below 2. Caller holds mu. Candidates past the cache are
// scanned as odd numbers; a composite candidate cannot be the first hit
// because its own prime factors were tried before it.
func smallestFactorLocked(n uint64) uint64 {
	if n < 2 {
		return 0
	}
	last := uint64(1)
	for _, q := range cache {
		if q*q > n {
			return 0
		}
		if n%q == 0 {
			return q
		}
		last = q
	}
	for q := last + 2; q*q <= n; q += 2 {
		if n%q == 0 {
			return q
		}
	}
	return 0
}

// SmallestFactor returns the smallest prime factor of n, or 0 when n is
// prime or below 2.
func SmallestFactor(n uint64) uint64 {
	mu.Lock()
	defer mu.Unlock()
	return smallestFactorLocked(n)
}

// IsPrime reports whether n is prime.
func IsPrime(n uint64) bool {
	return n >= 2 && SmallestFactor(n) == 0
}

// IsComposite reports whether n has a nontrivial factor.
func IsComposite(n uint64) bool {
	return SmallestFactor(n) != 0
}

// Factors iterates the prime factors of a value in increasing order,
// with multiplicity.
type Factors struct {
	remaining uint64
}

// NewFactors returns a factor iterator over n.
func NewFactors(n uint64) *Factors { return &Factors{remaining: n} }

// Next returns the next prime factor, or false once the value is fully
// factored.
func (f *Factors) Next() (uint64, bool) {
	if f.remaining < 2 {
		return 0, false
	}
	mu.Lock()
	p := smallestFactorLocked(f.remaining)
	mu.Unlock()
	if p == 0 {
		// What remains is prime: the last factor.
		p = f.remaining
	}
	f.remaining /= p
	return p, true
}
