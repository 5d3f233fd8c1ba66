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
	"strings"
	"testing"
)

func TestMulPow10(t *testing.T) {
	tests := []struct {
		x    string
		tens uint64
		want string
	}{
		{"5", 0, "5"},
		{"5", 1, "50"},
		{"5", 2, "500"},
		{"123", 1, "1230"},
		{"123", 2, "12300"},
		{"123", 3, "123000"},
		{"-123", 1, "-1230"},
		{"-123", 4, "-1230000"},
		{"99", 5, "9900000"},
		{"0", 7, "0"},
		{"12345", 9, "12345000000000"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%se%d", tc.x, tc.tens), func(t *testing.T) {
			x := newInt(t, tc.x)
			got := x.MulPow10(tc.tens)
			if s := got.String(); s != tc.want {
				t.Errorf("MulPow10 = %q, want %q", s, tc.want)
			}
			if tc.tens > 0 && !got.IsZero() && !got.IsEven() {
				t.Error("shifted value not even")
			}
		})
	}
}

func TestDivPow10(t *testing.T) {
	tests := []struct {
		x    string
		tens uint64
		want string
	}{
		{"12345", 0, "12345"},
		{"12345", 1, "1234"},
		{"12345", 2, "123"},
		{"12345", 3, "12"},
		{"12345", 4, "1"},
		{"12345", 5, "0"},
		{"12345", 100, "0"},
		{"-12345", 2, "-123"},
		{"-12345", 3, "-12"},
		{"1000000", 6, "1"},
		{"0", 3, "0"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%se-%d", tc.x, tc.tens), func(t *testing.T) {
			if got := newInt(t, tc.x).DivPow10(tc.tens).String(); got != tc.want {
				t.Errorf("DivPow10 = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPow10RoundTrip(t *testing.T) {
	for _, s := range []string{"1", "7", "42", "999", "-105", "123456789012345678901"} {
		for tens := uint64(0); tens < 12; tens++ {
			x := newInt(t, s)
			if back := x.MulPow10(tens).DivPow10(tens); back.Cmp(x) != Equal {
				t.Errorf("%s shifted up and down by %d gave %s", s, tens, back)
			}
		}
	}
}

func TestShiftNaN(t *testing.T) {
	if r := NaN.MulPow10(3); r.ErrKind() != ShiftNaN || r.OrigErrKind() != OrigNaN {
		t.Errorf("MulPow10 gave %#v", r)
	}
	if r := NaN.DivPow10(3); r.ErrKind() != ShiftNaN {
		t.Errorf("DivPow10 gave %#v", r)
	}
}

func TestMulUint64(t *testing.T) {
	tests := []struct {
		x    string
		y    uint64
		want string
	}{
		{"7", 0, "0"},
		{"0", 7, "0"},
		{"7", 1, "7"},
		{"7", 30, "210"},
		{"123", 1000, "123000"},
		{"123", 456, "56088"},
		{"-3", 7, "-21"},
		{"1", 18446744073709551615, "18446744073709551615"},
		{"25", 400, "10000"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%sx%d", tc.x, tc.y), func(t *testing.T) {
			x := newInt(t, tc.x)
			if got := x.MulUint64(tc.y).String(); got != tc.want {
				t.Errorf("MulUint64 = %q, want %q", got, tc.want)
			}
			// Agrees with full multiplication.
			if got := x.Mul(NewUnsigned(tc.y, false)); got.String() != tc.want {
				t.Errorf("Mul = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMulInt64(t *testing.T) {
	tests := []struct {
		x    string
		y    int64
		want string
	}{
		{"3", 4, "12"},
		{"3", -4, "-12"},
		{"-3", -4, "12"},
		{"-3", 4, "-12"},
		{"3", 0, "0"},
		{"0", -4, "0"},
		{"1", -9223372036854775808, "-9223372036854775808"},
	}
	for _, tc := range tests {
		if got := newInt(t, tc.x).MulInt64(tc.y).String(); got != tc.want {
			t.Errorf("%s.MulInt64(%d) = %q, want %q", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPowNative(t *testing.T) {
	if got := PowUint64(2, 10).String(); got != "1024" {
		t.Errorf("PowUint64(2, 10) = %q", got)
	}
	if got := PowUint64(7, 0).String(); got != "1" {
		t.Errorf("PowUint64(7, 0) = %q", got)
	}
	if got := PowUint64(0, 3).String(); got != "0" {
		t.Errorf("PowUint64(0, 3) = %q", got)
	}
	if want := "1" + strings.Repeat("0", 25); PowUint64(10, 25).String() != want {
		t.Errorf("PowUint64(10, 25) = %q", PowUint64(10, 25))
	}
	if got := PowInt64(-2, 3).String(); got != "-8" {
		t.Errorf("PowInt64(-2, 3) = %q", got)
	}
	if got := PowInt64(-2, 4).String(); got != "16" {
		t.Errorf("PowInt64(-2, 4) = %q", got)
	}
}
