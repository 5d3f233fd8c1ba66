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

// The in-place operators compute through the pure operators and then
// replace the receiver with the result, so aliasing between receiver and
// argument is always safe. A shared constant receiver is left untouched.

// replace overwrites x with r. No-op when x is a shared constant.
func (x *Int) replace(r *Int) {
	if x.isConstant() {
		return
	}
	*x = *r
	x.constant = false
}

// IAdd sets x to x + y.
func (x *Int) IAdd(y *Int) { x.replace(x.Add(y)) }

// IInc sets x to x + 1.
func (x *Int) IInc() { x.replace(x.Inc()) }

// ISub sets x to x - y.
func (x *Int) ISub(y *Int) { x.replace(x.Sub(y)) }

// IDec sets x to x - 1.
func (x *Int) IDec() { x.replace(x.Dec()) }

// IMul sets x to x * y.
func (x *Int) IMul(y *Int) { x.replace(x.Mul(y)) }

// IDiv sets x to the floored quotient of x / y.
func (x *Int) IDiv(y *Int) { x.replace(x.Div(y)) }

// IMod sets x to the floored remainder of x / y.
func (x *Int) IMod(y *Int) { x.replace(x.Mod(y)) }

// IDivMod sets x to the floored quotient of x / y and y to the remainder.
func (x *Int) IDivMod(y *Int) {
	q, r := x.DivMod(y)
	x.replace(q)
	y.replace(r)
}

// IPow sets x to x raised to y.
func (x *Int) IPow(y *Int) { x.replace(x.Pow(y)) }

// IFactorial sets x to x!.
func (x *Int) IFactorial() { x.replace(x.Factorial()) }

// IMulUint64 sets x to x * y.
func (x *Int) IMulUint64(y uint64) { x.replace(x.MulUint64(y)) }

// IMulInt64 sets x to x * y.
func (x *Int) IMulInt64(y int64) { x.replace(x.MulInt64(y)) }

// IMulPow10 sets x to x * 10^tens.
func (x *Int) IMulPow10(tens uint64) { x.replace(x.MulPow10(tens)) }

// IDivPow10 sets x to x / 10^tens. Only even shifts are supported in
// place; an odd tens yields NaN with NotSupported.
func (x *Int) IDivPow10(tens uint64) {
	if tens%2 == 1 {
		x.replace(NewError(NotSupported, NotSupported))
		return
	}
	x.replace(x.DivPow10(tens))
}

// ISetSign gives x the requested sign. Zero and NaN are left alone.
func (x *Int) ISetSign(negative bool) {
	if x.isConstant() {
		return
	}
	if !x.nan && !x.zero {
		x.negative = negative
	}
}

// IAbs makes x non-negative.
func (x *Int) IAbs() { x.ISetSign(false) }

// INeg makes x negative.
func (x *Int) INeg() { x.ISetSign(true) }

// IOpp flips the sign of x.
func (x *Int) IOpp() { x.ISetSign(!x.negative) }
