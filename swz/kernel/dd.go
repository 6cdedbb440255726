// Copyright 2025 go-swizzle Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package kernel

import "math"

// splitter is 2^27 + 1, the Veltkamp constant for 53-bit significands.
const splitter = 134217729.0

// DD is an unevaluated sum Hi + Lo with |Lo| <= ulp(Hi)/2.
type DD struct {
	Hi, Lo float64
}

// TwoSum returns s = fl(a+b) and the exact rounding error e, so that
// a + b == s + e holds exactly (Knuth). No ordering of a and b is required.
func TwoSum(a, b float64) (s, e float64) {
	s = a + b
	bb := s - a
	e = (a - (s - bb)) + (b - bb)
	return s, e
}

// FastTwoSum is TwoSum for |a| >= |b| (Dekker). The precondition is the
// caller's responsibility; it is not checked.
func FastTwoSum(a, b float64) (s, e float64) {
	s = a + b
	e = b - (s - a)
	return s, e
}

// Split splits a into hi + lo where each half fits in 26 bits, so that the
// product of two halves is exact.
func Split(a float64) (hi, lo float64) {
	c := float64(splitter * a)
	hi = c - (c - a)
	lo = a - hi
	return hi, lo
}

// TwoProduct returns p = fl(a*b) and the exact error e with a*b == p + e.
// It uses a fused multiply-add when the CPU has one and the Dekker split
// otherwise; both give identical results.
func TwoProduct(a, b float64) (p, e float64) {
	if currentPath == PathFMA {
		return twoProductFMA(a, b)
	}
	return twoProductDekker(a, b)
}

func twoProductFMA(a, b float64) (p, e float64) {
	p = float64(a * b)
	e = math.FMA(a, b, -p)
	return p, e
}

func twoProductDekker(a, b float64) (p, e float64) {
	p = float64(a * b)
	ah, al := Split(a)
	bh, bl := Split(b)
	e = ((float64(ah*bh) - p) + float64(ah*bl) + float64(al*bh)) + float64(al*bl)
	return p, e
}

// Add returns d + o with about 106 bits of precision.
func (d DD) Add(o DD) DD {
	s, e := TwoSum(d.Hi, o.Hi)
	t, f := TwoSum(d.Lo, o.Lo)
	e += t
	s, e = FastTwoSum(s, e)
	e += f
	s, e = FastTwoSum(s, e)
	return DD{s, e}
}

// AddFloat returns d + x.
func (d DD) AddFloat(x float64) DD {
	s, e := TwoSum(d.Hi, x)
	e += d.Lo
	s, e = FastTwoSum(s, e)
	return DD{s, e}
}

// Mul returns d * o with about 106 bits of precision.
func (d DD) Mul(o DD) DD {
	p, e := TwoProduct(d.Hi, o.Hi)
	e += float64(d.Hi*o.Lo) + float64(d.Lo*o.Hi)
	p, e = FastTwoSum(p, e)
	return DD{p, e}
}

// MulFloat returns d * x.
func (d DD) MulFloat(x float64) DD {
	p, e := TwoProduct(d.Hi, x)
	e += float64(d.Lo * x)
	p, e = FastTwoSum(p, e)
	return DD{p, e}
}

// Float64 rounds d to the nearest float64.
func (d DD) Float64() float64 {
	return d.Hi + d.Lo
}

// exactSign returns the sign (-1, 0 or 1) of the exact sum of terms.
//
// The terms are accumulated into a nonoverlapping expansion with
// Shewchuk's grow-expansion and zero elimination; the sign of such an
// expansion is the sign of its largest component.
func exactSign(terms ...float64) int {
	var exp [8]float64
	n := 0
	for _, t := range terms {
		q := t
		m := 0
		for i := 0; i < n; i++ {
			s, err := TwoSum(q, exp[i])
			if err != 0 {
				exp[m] = err
				m++
			}
			q = s
		}
		if q != 0 {
			exp[m] = q
			m++
		}
		n = m
	}
	if n == 0 {
		return 0
	}
	if exp[n-1] < 0 {
		return -1
	}
	return 1
}
