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

const (
	// maxPow10Exp is the largest n such that 10^n fits in a uint64.
	maxPow10Exp = 19
	// maxPow10Uint64 is 10^maxPow10Exp.
	maxPow10Uint64 = uint64(10_000_000_000_000_000_000)
	// maxUint64Digits is the decimal digit count of the largest uint64.
	maxUint64Digits = 20
)

// pow10Table maps n to 10^n for every power of ten representable in a
// uint64. numDigitsUint64 uses the borders to count digits without going
// through floating point, which would lose precision near the top of the
// range.
var pow10Table [maxPow10Exp + 1]uint64

func init() {
	p := uint64(1)
	for i := range pow10Table {
		pow10Table[i] = p
		if i < maxPow10Exp {
			p *= 10
		}
	}
}

// numDigitsUint64 returns the count of significant decimal digits in x.
// Zero has no significant digits.
func numDigitsUint64(x uint64) int {
	if x == 0 {
		return 0
	}
	for i := 1; i < len(pow10Table); i++ {
		if x < pow10Table[i] {
			return i
		}
	}
	return maxUint64Digits
}
