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

// MulPow10 returns x * 10^tens. An even shift moves whole pairs; an odd
// shift swaps every digit's nibble, splitting each source pair across two
// destination pairs.
func (x *Int) MulPow10(tens uint64) *Int {
	if x.nan {
		return NewError(ShiftNaN, x.origErr)
	}
	if x.zero {
		return newZero()
	}
	if tens == 0 {
		return x.Copy()
	}
	digits := x.digits + int(tens)
	pairs := (digits + 1) / 2
	z := &Int{
		data:     make([]byte, pairs),
		digits:   digits,
		negative: x.negative,
		even:     true,
	}
	if tens%2 == 0 {
		copy(z.data[pairs-len(x.data):], x.data)
		return z
	}
	d := int(tens) / 2
	for i, p := range x.data {
		z.data[i+d] |= p << 4
		if i+d+1 < pairs {
			z.data[i+d+1] = p >> 4
		}
	}
	return z
}

// DivPow10 returns x / 10^tens, truncating toward zero by dropping the
// low tens digits. Shifting out every digit yields zero.
func (x *Int) DivPow10(tens uint64) *Int {
	if x.nan {
		return NewError(ShiftNaN, x.origErr)
	}
	if x.zero || tens >= uint64(x.digits) {
		return newZero()
	}
	if tens == 0 {
		return x.Copy()
	}
	digits := x.digits - int(tens)
	pairs := (digits + 1) / 2
	z := &Int{
		data:     make([]byte, pairs),
		digits:   digits,
		negative: x.negative,
	}
	diff := int(tens) / 2
	if tens%2 == 0 {
		copy(z.data, x.data[diff:diff+pairs])
	} else {
		for i := range z.data {
			z.data[i] = x.data[i+diff] >> 4
			if i+diff+1 < len(x.data) {
				z.data[i] |= x.data[i+diff+1] << 4
			}
		}
	}
	z.even = z.data[0]&0x01 == 0
	return z
}

// MulUint64 returns x * y without converting x to native form. Trailing
// decimal zeros of y become a single pow-10 shift; the rest of y is
// consumed digit by digit, each digit adding that many shifted copies of
// the base.
func (x *Int) MulUint64(y uint64) *Int {
	if x.nan {
		return NewError(MulNaN, x.origErr)
	}
	if y == 0 || x.zero {
		return newZero()
	}
	tens := uint64(0)
	for y%10 == 0 {
		y /= 10
		tens++
	}
	base := x
	if tens > 0 {
		base = x.MulPow10(tens)
	}
	ret := newZero()
	for p, t := maxPow10Uint64, uint64(maxPow10Exp); p > 1; p, t = p/10, t-1 {
		for y >= p {
			ret.IAdd(base.MulPow10(t))
			y -= p
		}
	}
	for ; y > 0; y-- {
		ret.IAdd(base)
	}
	return ret
}

// MulInt64 returns x * y for a signed native multiplier.
func (x *Int) MulInt64(y int64) *Int {
	if y >= 0 {
		return x.MulUint64(uint64(y))
	}
	mag := uint64(y)
	r := x.MulUint64(-mag)
	if !r.zero && !r.nan {
		r.negative = !r.negative
	}
	return r
}

// PowUint64 returns x^y for native operands.
func PowUint64(x, y uint64) *Int {
	answer := newOne()
	for ; y > 0; y-- {
		answer.IMulUint64(x)
	}
	return answer
}

// PowInt64 returns x^y for a signed native base.
func PowInt64(x int64, y uint64) *Int {
	answer := newOne()
	for ; y > 0; y-- {
		answer.IMulInt64(x)
	}
	return answer
}
