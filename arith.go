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

// addMag sums the magnitudes of x and y, ignoring sign. Each pair is
// added in binary and then decimal-corrected: 0x06 when the low digits
// overflow ten, 0x60 when the pair overflows a hundred.
func addMag(x, y *Int) *Int {
	long, short := x, y
	if len(short.data) > len(long.data) {
		long, short = y, x
	}
	data := make([]byte, len(long.data)+1)
	carry := 0
	for i, p := range long.data {
		c := int(p) + carry
		lo := int(p&0x0F) + carry
		if i < len(short.data) {
			q := short.data[i]
			c += int(q)
			lo += int(q & 0x0F)
		}
		if lo > 0x09 {
			c += 0x06
		}
		if c > 0x99 {
			c += 0x60
			carry = 1
		} else {
			carry = 0
		}
		data[i] = byte(c)
	}
	top := len(long.data)
	if carry == 1 {
		data[top] = 0x01
	} else {
		top--
	}
	r := &Int{data: data[:top+1], even: data[0]&0x01 == 0}
	if data[top]&0xF0 != 0 {
		r.digits = 2 * (top + 1)
	} else {
		r.digits = 2*top + 1
	}
	return r
}

// subMag subtracts the magnitude of small from big, which must be
// strictly larger. Borrows are decimal-corrected symmetrically to addMag:
// 0x06 off when the low digits borrow, 0xA0 on (a pair borrow of 0x100
// less the 0x60 correction) when the pair goes negative.
func subMag(big, small *Int) *Int {
	data := make([]byte, len(big.data))
	borrow := 0
	for i, p := range big.data {
		c := int(p) - borrow
		lo := int(p&0x0F) - borrow
		if i < len(small.data) {
			q := small.data[i]
			c -= int(q)
			lo -= int(q & 0x0F)
		}
		if lo < 0 {
			c -= 0x06
		}
		if c < 0 {
			c += 0xA0
			borrow = 1
		} else {
			borrow = 0
		}
		data[i] = byte(c)
	}
	top := len(data) - 1
	for data[top] == 0 {
		top--
	}
	r := &Int{data: data[:top+1], even: data[0]&0x01 == 0}
	if data[top]&0xF0 != 0 {
		r.digits = 2 * (top + 1)
	} else {
		r.digits = 2*top + 1
	}
	return r
}

// Add returns x + y. Operands of opposite sign route through Sub so the
// magnitude cores only ever see matching signs.
func (x *Int) Add(y *Int) *Int {
	if x.nan || y.nan {
		return NewError(AddNaN, origOf(x, y))
	}
	if x.zero {
		if y.zero {
			return newZero()
		}
		return y.Copy()
	}
	if y.zero {
		return x.Copy()
	}
	if x.negative != y.negative {
		return x.Sub(y.Opp())
	}
	r := addMag(x, y)
	r.negative = x.negative
	return r
}

// Sub returns x - y.
func (x *Int) Sub(y *Int) *Int {
	if x.nan || y.nan {
		return NewError(SubNaN, origOf(x, y))
	}
	if y.zero {
		if x.zero {
			return newZero()
		}
		return x.Copy()
	}
	if x.zero {
		return y.Opp()
	}
	if x.negative != y.negative {
		return x.Add(y.Opp())
	}
	switch cmpMag(x, y) {
	case Equal:
		return newZero()
	case Greater:
		r := subMag(x, y)
		r.negative = x.negative
		return r
	default:
		r := subMag(y, x)
		r.negative = !x.negative
		return r
	}
}

// Inc returns x + 1.
func (x *Int) Inc() *Int { return x.Add(One) }

// Dec returns x - 1.
func (x *Int) Dec() *Int { return x.Sub(One) }

// mulDigitPair multiplies two packed digit pairs ab and cd as
// (10a+b)(10c+d) = 100ac + 10(ad+bc) + bd. The result is at most 99*99,
// well within a uint16.
func mulDigitPair(ab, cd byte) uint16 {
	a, b := uint16(ab>>4), uint16(ab&0x0F)
	c, d := uint16(cd>>4), uint16(cd&0x0F)
	return 100*a*c + 10*(a*d+b*c) + b*d
}

// Mul returns x * y by schoolbook accumulation over digit pairs: each
// pair product is built as a small value, shifted into position by a
// power of ten, and added into the running total.
func (x *Int) Mul(y *Int) *Int {
	if x.nan || y.nan {
		return NewError(MulNaN, origOf(x, y))
	}
	if x.zero || y.zero {
		return newZero()
	}
	answer := newZero()
	for i, p := range x.data {
		for j, q := range y.data {
			prod := mulDigitPair(p, q)
			if prod == 0 {
				continue
			}
			addend := NewUnsigned(uint64(prod), false)
			if shift := 2 * (i + j); shift > 0 {
				addend.IMulPow10(uint64(shift))
			}
			answer.IAdd(addend)
		}
	}
	answer.negative = x.negative != y.negative
	return answer
}
