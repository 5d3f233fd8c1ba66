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

// Comparison is the four-valued result of comparing two Ints. NaN is
// ordered against nothing, including itself.
type Comparison int8

const (
	Equal Comparison = iota
	Greater
	Less
	Incomparable
)

func (c Comparison) String() string {
	switch c {
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Less:
		return "less"
	case Incomparable:
		return "incomparable"
	default:
		return "unknown comparison"
	}
}

// cmpMag compares the magnitudes of x and y, ignoring sign. Both must be
// valid non-NaN values.
func cmpMag(x, y *Int) Comparison {
	if x.digits != y.digits {
		if x.digits > y.digits {
			return Greater
		}
		return Less
	}
	for i := len(x.data) - 1; i >= 0; i-- {
		if x.data[i] != y.data[i] {
			if x.data[i] > y.data[i] {
				return Greater
			}
			return Less
		}
	}
	return Equal
}

// Cmp compares x against y. Either operand being NaN yields Incomparable.
func (x *Int) Cmp(y *Int) Comparison {
	switch {
	case x.nan || y.nan:
		return Incomparable
	case x.negative != y.negative:
		if x.negative {
			return Less
		}
		return Greater
	case x.negative:
		// Both negative: the larger magnitude is the smaller value.
		switch cmpMag(x, y) {
		case Greater:
			return Less
		case Less:
			return Greater
		}
		return Equal
	default:
		return cmpMag(x, y)
	}
}

// CmpUint64 compares x against an unsigned native integer.
func (x *Int) CmpUint64(y uint64) Comparison {
	switch {
	case x.nan:
		return Incomparable
	case x.zero:
		if y != 0 {
			return Less
		}
		return Equal
	case x.negative:
		return Less
	case x.digits > maxUint64Digits:
		return Greater
	case x.digits < maxUint64Digits:
		// x fits a uint64 exactly, so the sentinel cannot fire.
		v := x.Uint64()
		if v == y {
			return Equal
		}
		if v > y {
			return Greater
		}
		return Less
	default:
		// 20 digits straddles the uint64 boundary; compare in full.
		return x.Cmp(NewUnsigned(y, false))
	}
}

// CmpInt64 compares x against a signed native integer.
func (x *Int) CmpInt64(y int64) Comparison {
	if x.nan {
		return Incomparable
	}
	if y >= 0 {
		if x.negative {
			return Less
		}
		return x.CmpUint64(uint64(y))
	}
	if !x.negative {
		return Greater
	}
	mag := uint64(y)
	mag = -mag
	switch x.Abs().CmpUint64(mag) {
	case Greater:
		return Less
	case Less:
		return Greater
	}
	return Equal
}

// SetSign returns a copy of x with the given sign. Zero stays
// non-negative and the sign of NaN is meaningless; both are left alone.
func (x *Int) SetSign(negative bool) *Int {
	c := x.Copy()
	if !c.nan && !c.zero {
		c.negative = negative
	}
	return c
}

// Abs returns a copy of x with a non-negative sign.
func (x *Int) Abs() *Int { return x.SetSign(false) }

// Neg returns a copy of x with a negative sign.
func (x *Int) Neg() *Int { return x.SetSign(true) }

// Opp returns a copy of x with the sign flipped.
func (x *Int) Opp() *Int { return x.SetSign(!x.negative) }
