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
	"math"

	"github.com/pkg/errors"
)

// Uint64 returns the magnitude of x as a uint64, ignoring sign. Values
// that do not fit return math.MaxUint64 as a sentinel: first by digit
// count, then by checking that the accumulated value still ends in x's
// lowest digit after any wrap.
func (x *Int) Uint64() uint64 {
	if x.nan || x.digits > maxUint64Digits {
		return math.MaxUint64
	}
	if x.zero {
		return 0
	}
	var answer uint64
	pow := uint64(1)
	for _, p := range x.data {
		answer += uint64(p>>4)*10*pow + uint64(p&0x0F)*pow
		pow *= 100
	}
	if answer%10 != uint64(x.data[0]&0x0F) {
		return math.MaxUint64
	}
	return answer
}

// Int64 returns x as an int64, or math.MinInt64 as a sentinel when x does
// not fit. The sentinel is ambiguous with the true minimum; use Int64E to
// tell them apart.
func (x *Int) Int64() int64 {
	if x.nan {
		return math.MinInt64
	}
	u := x.Uint64()
	if x.negative {
		if u > 1<<63 {
			return math.MinInt64
		}
		// u == 1<<63 negates onto itself, which is exactly MinInt64.
		return -int64(u)
	}
	if u > math.MaxInt64 {
		return math.MinInt64
	}
	return int64(u)
}

// Int64E returns x as an int64, reporting NaN and out-of-range values as
// errors instead of sentinels.
func (x *Int) Int64E() (int64, error) {
	if x.nan {
		return 0, errors.New("cannot convert NaN to int64")
	}
	v := x.Int64()
	if v == math.MinInt64 && x.Cmp(New(math.MinInt64)) != Equal {
		return 0, errors.Errorf("%s overflows int64", x)
	}
	return v, nil
}
