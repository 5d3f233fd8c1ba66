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

package bcd

import "github.com/pkg/errors"

// ErrorKind records why an Int is NaN. Every operator that observes a NaN
// operand produces a new NaN tagged with its own kind while preserving the
// original cause, so an error surfaced at the end of a long chain still
// reports where the chain first went wrong.
type ErrorKind int8

const (
	// NoError is the kind carried by every valid, non-NaN value.
	NoError ErrorKind = iota
	// OrigNaN marks the shared NaN constant itself.
	OrigNaN
	// UseAfterFree marks a value whose storage was released by Free.
	UseAfterFree
	// AddNaN through ShiftNaN tag the operator that was fed a NaN operand.
	AddNaN
	SubNaN
	MulNaN
	DivNaN
	PowNaN
	FactorialNaN
	ShiftNaN
	// PowNegative reports a negative exponent.
	PowNegative
	// FactorialNegative reports a factorial of a negative value.
	FactorialNegative
	// DivideByZero reports a zero divisor.
	DivideByZero
	// OutOfMemory is retained for parity with the error model; the Go
	// runtime does not surface allocation failure in-band, so it is
	// declared but never produced.
	OutOfMemory
	// NotSupported reports an acknowledged gap, such as in-place division
	// by an odd power of ten.
	NotSupported
)

func (k ErrorKind) String() string {
	switch k {
	case NoError:
		return "no error"
	case OrigNaN:
		return "NaN"
	case UseAfterFree:
		return "use after free"
	case AddNaN:
		return "addition of NaN"
	case SubNaN:
		return "subtraction of NaN"
	case MulNaN:
		return "multiplication of NaN"
	case DivNaN:
		return "division of NaN"
	case PowNaN:
		return "exponentiation of NaN"
	case FactorialNaN:
		return "factorial of NaN"
	case ShiftNaN:
		return "shift of NaN"
	case PowNegative:
		return "negative exponent"
	case FactorialNegative:
		return "factorial of negative value"
	case DivideByZero:
		return "division by zero"
	case OutOfMemory:
		return "out of memory"
	case NotSupported:
		return "not supported"
	default:
		return "unknown error"
	}
}

// GoError converts k to a Go error, or nil for NoError.
func (k ErrorKind) GoError() error {
	if k == NoError {
		return nil
	}
	return errors.New(k.String())
}

// ErrInt performs operations on Ints and collects errors during operations.
// If an error is already set, the operation is skipped. Designed to be used
// for many operations in a row, with a single error check at the end.
type ErrInt struct {
	Err error
}

func (e *ErrInt) capture(r *Int) *Int {
	if r.nan && e.Err == nil {
		e.Err = r.origErr.GoError()
	}
	return r
}

// Add performs x.Add(y).
func (e *ErrInt) Add(x, y *Int) *Int {
	if e.Err != nil {
		return NaN
	}
	return e.capture(x.Add(y))
}

// Sub performs x.Sub(y).
func (e *ErrInt) Sub(x, y *Int) *Int {
	if e.Err != nil {
		return NaN
	}
	return e.capture(x.Sub(y))
}

// Mul performs x.Mul(y).
func (e *ErrInt) Mul(x, y *Int) *Int {
	if e.Err != nil {
		return NaN
	}
	return e.capture(x.Mul(y))
}

// Div performs x.Div(y).
func (e *ErrInt) Div(x, y *Int) *Int {
	if e.Err != nil {
		return NaN
	}
	return e.capture(x.Div(y))
}

// Mod performs x.Mod(y).
func (e *ErrInt) Mod(x, y *Int) *Int {
	if e.Err != nil {
		return NaN
	}
	return e.capture(x.Mod(y))
}

// DivMod performs x.DivMod(y).
func (e *ErrInt) DivMod(x, y *Int) (*Int, *Int) {
	if e.Err != nil {
		return NaN, NaN
	}
	q, r := x.DivMod(y)
	return e.capture(q), e.capture(r)
}

// Pow performs x.Pow(y).
func (e *ErrInt) Pow(x, y *Int) *Int {
	if e.Err != nil {
		return NaN
	}
	return e.capture(x.Pow(y))
}

// Factorial performs x.Factorial().
func (e *ErrInt) Factorial(x *Int) *Int {
	if e.Err != nil {
		return NaN
	}
	return e.capture(x.Factorial())
}

// Cmp returns Incomparable if Err is set. Otherwise returns x.Cmp(y).
func (e *ErrInt) Cmp(x, y *Int) Comparison {
	if e.Err != nil {
		return Incomparable
	}
	c := x.Cmp(y)
	if c == Incomparable && e.Err == nil {
		e.Err = errors.New("comparison of NaN")
	}
	return c
}

// Int64 returns 0 if Err is set. Otherwise returns x.Int64E().
func (e *ErrInt) Int64(x *Int) int64 {
	if e.Err != nil {
		return 0
	}
	var r int64
	r, e.Err = x.Int64E()
	return r
}
