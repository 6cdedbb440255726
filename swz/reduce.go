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

package swz

import "github.com/ajroetker/go-swizzle/internal/check"

// Folds run left to right. Min and max compare strictly, so ties and NaNs
// later in the operand keep the earlier element.

func minOf[T Number, O Operand[T]](o O) T {
	m := o.At(0)
	for i := 1; i < o.Len(); i++ {
		if x := o.At(i); x < m {
			m = x
		}
	}
	return m
}

func maxOf[T Number, O Operand[T]](o O) T {
	m := o.At(0)
	for i := 1; i < o.Len(); i++ {
		if x := o.At(i); x > m {
			m = x
		}
	}
	return m
}

func sumOf[T Number, O Operand[T]](o O) T {
	s := o.At(0)
	for i := 1; i < o.Len(); i++ {
		s += o.At(i)
	}
	return s
}

func countTrue[O Operand[bool]](o O) int {
	n := 0
	for i := 0; i < o.Len(); i++ {
		if o.At(i) {
			n++
		}
	}
	return n
}

func allEqual[T Scalar, A Operand[T], B Operand[T]](a A, b B) bool {
	c := a.Len()
	checkCount(b.Len(), c)
	for i := 0; i < c; i++ {
		if a.At(i) != broadcastAt[T](b, i) {
			return false
		}
	}
	return true
}

// shift moves component i of src to position i+n of dst. Positions that
// receive nothing are zero, or with wrap set, take the components that fell
// off the other end.
func shift[T Scalar, D Sink[T], O Operand[T]](dst D, src O, n int, wrap bool) {
	c := dst.Len()
	check.Assertf(src.Len() == c, "shift source has %d components, want %d", src.Len(), c)
	var tmp [MaxLen]T
	if wrap {
		n %= c
		if n < 0 {
			n += c
		}
	}
	for i := 0; i < c; i++ {
		j := i + n
		if wrap {
			j %= c
		}
		if j >= 0 && j < c {
			tmp[j] = src.At(i)
		}
	}
	for i := 0; i < c; i++ {
		dst.SetAt(i, tmp[i])
	}
}
