// Copyright 2019 Gabe Appleton.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package bcd implements arbitrary-precision signed integers stored as
// packed binary-coded decimal.
//
// An Int holds two decimal digits per byte, least-significant pair first.
// Pure operators return freshly allocated values and never touch their
// operands; the I-prefixed operators replace their receiver with the
// result. Instead of returning Go errors, arithmetic produces NaN values
// carrying an ErrorKind: feeding a NaN to any operator yields another NaN
// that preserves the original cause, so a chain of operations needs only
// one check at the end.
package bcd

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Int is an arbitrary-precision signed binary-coded-decimal integer.
//
// The zero-valued Int is not meaningful; obtain values from the
// constructors or the package constants.
type Int struct {
	// data holds packed decimal digit pairs, little-endian: data[0] is
	// the two least-significant digits, with the higher digit of each
	// pair in the upper nibble. There are no leading zero pairs.
	data []byte
	// digits is the exact count of significant decimal digits. The top
	// pair's upper nibble is zero iff digits is odd.
	digits   int
	negative bool
	zero     bool
	even     bool
	constant bool
	nan      bool
	err      ErrorKind
	origErr  ErrorKind
}

// Shared constants. These are read-only: they must never be mutated, and
// Free ignores them. In-place operators refuse a constant receiver.
var (
	// Zero is the shared zero value. It holds no digit storage.
	Zero = &Int{zero: true, even: true, constant: true}
	// One is the shared one value.
	One = &Int{data: []byte{0x01}, digits: 1, constant: true}
	// NaN is the shared error value; it is its own original cause.
	NaN = &Int{nan: true, constant: true, err: OrigNaN, origErr: OrigNaN}
)

// newZero returns an owned (non-constant) zero, for use as an accumulator.
func newZero() *Int { return &Int{zero: true, even: true} }

// newOne returns an owned one.
func newOne() *Int { return &Int{data: []byte{0x01}, digits: 1} }

// NewError builds a NaN value carrying both the immediate and the
// root-cause error kinds.
func NewError(kind, orig ErrorKind) *Int {
	return &Int{nan: true, err: kind, origErr: orig}
}

// origOf picks the original cause from whichever operand is NaN, left
// operand first.
func origOf(x, y *Int) ErrorKind {
	if x.nan {
		return x.origErr
	}
	return y.origErr
}

// New returns the Int representation of a.
func New(a int64) *Int {
	if a < 0 {
		u := uint64(a)
		return NewUnsigned(-u, true)
	}
	return NewUnsigned(uint64(a), false)
}

// NewUnsigned returns the Int representation of a with the given sign.
func NewUnsigned(a uint64, negative bool) *Int {
	if a == 0 {
		return newZero()
	}
	c := &Int{
		negative: negative,
		even:     a%2 == 0,
		digits:   numDigitsUint64(a),
	}
	c.data = make([]byte, (c.digits+1)/2)
	for i := range c.data {
		c.data[i] = byte(a%100/10)<<4 | byte(a%10)
		a /= 100
	}
	return c
}

// Copy returns an owned deep copy of x.
func (x *Int) Copy() *Int {
	c := *x
	if x.data != nil {
		c.data = make([]byte, len(x.data))
		copy(c.data, x.data)
	}
	c.constant = false
	return &c
}

// FromBytes builds an Int from a sequence of packed decimal digit pairs.
// If littleEndian is false the bytes are reversed first. Leading zero
// pairs are stripped; an empty or all-zero input yields zero.
func FromBytes(b []byte, negative, littleEndian bool) *Int {
	if len(b) == 0 {
		return newZero()
	}
	data := make([]byte, len(b))
	if littleEndian {
		copy(data, b)
	} else {
		for i, j := 0, len(b)-1; i < len(b); i, j = i+1, j-1 {
			data[i] = b[j]
		}
	}
	top := len(data) - 1
	for top >= 0 && data[top] == 0 {
		top--
	}
	if top < 0 {
		return newZero()
	}
	c := &Int{
		data:     data[:top+1],
		negative: negative,
		even:     data[0]%2 == 0,
	}
	if data[top]&0xF0 != 0 {
		c.digits = 2 * (top + 1)
	} else {
		c.digits = 2*top + 1
	}
	return c
}

// FromASCII packs a string of decimal digit characters into digit pairs
// and builds an Int from them. The input must contain only '0' through
// '9'; use FromString for validated input. An odd digit count leaves the
// most-significant pair holding a single digit.
func FromASCII(str string, negative bool) *Int {
	n := len(str)
	if n == 0 {
		return newZero()
	}
	length := (n + 1) / 2
	bytes := make([]byte, length)
	i, j := 0, 0
	if n%2 == 1 {
		bytes[0] = str[0] - '0'
		i, j = 1, 1
	}
	for ; i < length; i, j = i+1, j+2 {
		bytes[i] = (str[j]-'0')<<4 | (str[j+1]-'0')&0x0F
	}
	return FromBytes(bytes, negative, false)
}

// FromString parses a decimal integer string: an optional leading '-'
// followed by digits, or the literal "NaN".
func FromString(s string) (*Int, error) {
	if s == "NaN" {
		return NewError(OrigNaN, OrigNaN), nil
	}
	digits := strings.TrimPrefix(s, "-")
	if digits == "" {
		return nil, errors.Errorf("parse digits: empty string in %q", s)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, errors.Errorf("parse digits: invalid character %q in %q", digits[i], s)
		}
	}
	return FromASCII(digits, len(digits) != len(s)), nil
}

// IsNaN reports whether x is an error value.
func (x *Int) IsNaN() bool { return x.nan }

// IsZero reports whether x is zero.
func (x *Int) IsZero() bool { return x.zero }

// IsNegative reports whether x is negative.
func (x *Int) IsNegative() bool { return x.negative }

// IsEven reports whether x is even.
func (x *Int) IsEven() bool { return x.even }

// Bool returns the truth value of x: true iff x is non-zero.
func (x *Int) Bool() bool { return !x.zero }

// Not returns the logical negation of x: true iff x is zero.
func (x *Int) Not() bool { return x.zero }

// NumDigits returns the count of significant decimal digits in x. Zero
// has no significant digits.
func (x *Int) NumDigits() int { return x.digits }

// ErrKind returns the kind of the operation that most recently produced
// this NaN, or NoError.
func (x *Int) ErrKind() ErrorKind { return x.err }

// OrigErrKind returns the kind of the operation that originally produced
// this NaN, preserved through chains of operations.
func (x *Int) OrigErrKind() ErrorKind { return x.origErr }

// isConstant reports whether x is one of the shared package constants.
// The constant flag alone is not enough: owned values produced by
// replacing a receiver may share a constant's storage, and those are fair
// game for in-place use.
func (x *Int) isConstant() bool {
	return x == Zero || x == One || x == NaN
}

// Free releases x's digit storage and marks it as freed. Freeing a
// constant, or a value already freed, is a no-op. This is a safety net
// against accidental reuse, not a requirement: the garbage collector
// reclaims abandoned values either way.
func (x *Int) Free() {
	if x.constant || x.err == UseAfterFree {
		return
	}
	*x = Int{nan: true, err: UseAfterFree, origErr: UseAfterFree}
}

// String renders x as a decimal string: an optional '-' followed by the
// digit pairs from most- to least-significant, the top pair without a
// forced leading zero. NaN renders as "NaN" and zero as "0".
func (x *Int) String() string {
	if x.nan {
		return "NaN"
	}
	if x.zero {
		return "0"
	}
	buf := make([]byte, 0, x.digits+1)
	if x.negative {
		buf = append(buf, '-')
	}
	i := len(x.data) - 1
	if hi := x.data[i] >> 4; hi != 0 {
		buf = append(buf, '0'+hi)
	}
	buf = append(buf, '0'+x.data[i]&0x0F)
	for i--; i >= 0; i-- {
		buf = append(buf, '0'+x.data[i]>>4, '0'+x.data[i]&0x0F)
	}
	return string(buf)
}

// GoString renders the internal state of x for debugging.
func (x *Int) GoString() string {
	return fmt.Sprintf(`{data: %x, digits: %d, negative: %t, zero: %t, nan: %t, err: %v, origErr: %v}`,
		x.data, x.digits, x.negative, x.zero, x.nan, x.err, x.origErr)
}
