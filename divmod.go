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

// DivMod returns the floored quotient and remainder of x / y. The
// quotient rounds toward negative infinity and the remainder takes the
// divisor's sign, so q*y + r == x always holds. Both results are NaN on a
// NaN operand or a zero divisor.
//
// Division runs by repeated magnitude subtraction, so the cost is linear
// in the quotient.
func (x *Int) DivMod(y *Int) (*Int, *Int) {
	if x.nan || y.nan {
		orig := origOf(x, y)
		return NewError(DivNaN, orig), NewError(DivNaN, orig)
	}
	if y.zero {
		return NewError(DivideByZero, DivideByZero), NewError(DivideByZero, DivideByZero)
	}
	if x.zero {
		return newZero(), newZero()
	}
	neg := x.negative != y.negative
	if y.digits == 1 && y.data[0] == 0x01 {
		q := x.Copy()
		q.negative = neg
		return q, newZero()
	}
	rem := x.Abs()
	den := y.Abs()
	quo := newZero()
	for cmpMag(rem, den) != Less {
		rem.ISub(den)
		quo.IInc()
	}
	if neg {
		// Floored: a nonzero remainder pushes the quotient one
		// further from zero and measures the remainder from the
		// next multiple down.
		if rem.zero {
			quo.negative = true
			return quo, newZero()
		}
		quo.IInc()
		quo.negative = true
		r := den.Sub(rem)
		r.negative = y.negative
		return quo, r
	}
	if rem.zero {
		return quo, newZero()
	}
	rem.negative = y.negative
	return quo, rem
}

// Div returns the floored quotient of x / y.
func (x *Int) Div(y *Int) *Int {
	q, _ := x.DivMod(y)
	return q
}

// Mod returns the floored remainder of x / y, carrying the divisor's sign.
func (x *Int) Mod(y *Int) *Int {
	_, r := x.DivMod(y)
	return r
}

// Pow returns x raised to y by repeated multiplication. A negative
// exponent is NaN: there is no integer reciprocal.
func (x *Int) Pow(y *Int) *Int {
	if x.nan || y.nan {
		return NewError(PowNaN, origOf(x, y))
	}
	if y.negative {
		return NewError(PowNegative, PowNegative)
	}
	answer := newOne()
	for i := y.Copy(); !i.zero; i.IDec() {
		answer.IMul(x)
	}
	return answer
}

// Factorial returns x! for non-negative x. 0! and 1! are one.
func (x *Int) Factorial() *Int {
	if x.nan {
		return NewError(FactorialNaN, x.origErr)
	}
	if x.negative {
		return NewError(FactorialNegative, FactorialNegative)
	}
	if x.zero || x.digits == 1 && x.data[0] == 0x01 {
		return newOne()
	}
	ret := x.Copy()
	for i := x.Dec(); !i.zero; i.IDec() {
		ret.IMul(i)
	}
	return ret
}
