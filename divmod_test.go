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

import (
	"fmt"
	"testing"
)

func TestDivMod(t *testing.T) {
	tests := []struct {
		x, y, q, r string
	}{
		{"17", "5", "3", "2"},
		{"-17", "5", "-4", "3"},
		{"17", "-5", "-4", "-3"},
		{"-17", "-5", "3", "-2"},
		{"-15", "5", "-3", "0"},
		{"15", "5", "3", "0"},
		{"15", "-5", "-3", "0"},
		{"0", "5", "0", "0"},
		{"0", "-5", "0", "0"},
		{"3", "5", "0", "3"},
		{"-3", "5", "-1", "2"},
		{"3", "-5", "-1", "-2"},
		{"42", "1", "42", "0"},
		{"42", "-1", "-42", "0"},
		{"-42", "1", "-42", "0"},
		{"1000", "7", "142", "6"},
		{"9009", "99", "91", "0"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s/%s", tc.x, tc.y), func(t *testing.T) {
			x, y := newInt(t, tc.x), newInt(t, tc.y)
			q, r := x.DivMod(y)
			if q.String() != tc.q || r.String() != tc.r {
				t.Errorf("DivMod = (%s, %s), want (%s, %s)", q, r, tc.q, tc.r)
			}
			// The division law: q*y + r == x.
			if back := q.Mul(y).Add(r); back.Cmp(x) != Equal {
				t.Errorf("%s*%s + %s = %s, want %s", q, y, r, back, tc.x)
			}
			if got := x.Div(y); got.Cmp(q) != Equal {
				t.Errorf("Div = %s, want %s", got, q)
			}
			if got := x.Mod(y); got.Cmp(r) != Equal {
				t.Errorf("Mod = %s, want %s", got, r)
			}
		})
	}
}

func TestDivideByZero(t *testing.T) {
	q, r := New(17).DivMod(Zero)
	for _, v := range []*Int{q, r} {
		if !v.IsNaN() || v.ErrKind() != DivideByZero || v.OrigErrKind() != DivideByZero {
			t.Errorf("division by zero gave %#v", v)
		}
	}
	if v := Zero.Div(Zero); v.OrigErrKind() != DivideByZero {
		t.Errorf("0/0 gave %#v", v)
	}
}

func TestDivModNaN(t *testing.T) {
	q, r := NaN.DivMod(New(5))
	if q.ErrKind() != DivNaN || q.OrigErrKind() != OrigNaN {
		t.Errorf("quotient = %#v", q)
	}
	if r.ErrKind() != DivNaN || r.OrigErrKind() != OrigNaN {
		t.Errorf("remainder = %#v", r)
	}
}

func TestPow(t *testing.T) {
	tests := []struct {
		x, y, want string
	}{
		{"2", "10", "1024"},
		{"3", "0", "1"},
		{"0", "0", "1"},
		{"0", "5", "0"},
		{"1", "100", "1"},
		{"-2", "3", "-8"},
		{"-2", "4", "16"},
		{"10", "10", "10000000000"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%s^%s", tc.x, tc.y), func(t *testing.T) {
			if got := newInt(t, tc.x).Pow(newInt(t, tc.y)).String(); got != tc.want {
				t.Errorf("Pow = %q, want %q", got, tc.want)
			}
		})
	}
	t.Run("NegativeExponent", func(t *testing.T) {
		r := New(2).Pow(New(-1))
		if r.ErrKind() != PowNegative || r.OrigErrKind() != PowNegative {
			t.Errorf("got %#v", r)
		}
	})
	t.Run("NaN", func(t *testing.T) {
		if r := New(2).Pow(NaN); r.ErrKind() != PowNaN {
			t.Errorf("got %#v", r)
		}
	})
}

func TestFactorial(t *testing.T) {
	tests := []struct {
		x, want string
	}{
		{"0", "1"},
		{"1", "1"},
		{"2", "2"},
		{"5", "120"},
		{"10", "3628800"},
		{"20", "2432902008176640000"},
		{"25", "15511210043330985984000000"},
	}
	for _, tc := range tests {
		t.Run(tc.x, func(t *testing.T) {
			if got := newInt(t, tc.x).Factorial().String(); got != tc.want {
				t.Errorf("Factorial = %q, want %q", got, tc.want)
			}
		})
	}
	t.Run("Negative", func(t *testing.T) {
		r := New(-7).Factorial()
		if r.ErrKind() != FactorialNegative || r.OrigErrKind() != FactorialNegative {
			t.Errorf("got %#v", r)
		}
	})
	t.Run("NaN", func(t *testing.T) {
		freed := New(3)
		freed.Free()
		r := freed.Factorial()
		if r.ErrKind() != FactorialNaN || r.OrigErrKind() != UseAfterFree {
			t.Errorf("got %#v", r)
		}
	})
}
