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

import (
	"iter"

	"github.com/ajroetker/go-swizzle/internal/check"
)

// Operand is anything that yields components by logical position:
// vectors, views and scalars wrapped with S.
type Operand[T Scalar] interface {
	// Len returns the number of components, 1 to MaxLen.
	Len() int

	// At returns component i.
	At(i int) T
}

// Sink is a writable Operand.
type Sink[T Scalar] interface {
	Operand[T]

	// SetAt sets component i.
	SetAt(i int, x T)
}

// Sized is satisfied by pointers to the fixed-size vector types. It lets
// the dispatch framework build a result whose size is known statically.
type Sized[V any, T Scalar] interface {
	*V
	Sink[T]
}

// Single is a scalar viewed as a one-component operand. It broadcasts
// against operands of any count.
type Single[T Scalar] struct {
	v T
}

// S wraps x as a one-component operand.
func S[T Scalar](x T) Single[T] {
	return Single[T]{x}
}

// Len returns 1.
func (s Single[T]) Len() int { return 1 }

// At returns the wrapped scalar.
func (s Single[T]) At(i int) T {
	check.Index(i, 1)
	return s.v
}

// Get returns the wrapped scalar.
func (s Single[T]) Get() T { return s.v }

// forward iterates the components of o in order.
func forward[T Scalar, O Operand[T]](o O) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < o.Len(); i++ {
			if !yield(i, o.At(i)) {
				return
			}
		}
	}
}

// backward iterates the components of o from last to first.
func backward[T Scalar, O Operand[T]](o O) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := o.Len() - 1; i >= 0; i-- {
			if !yield(i, o.At(i)) {
				return
			}
		}
	}
}

// broadcastAt reads position i of o, or its only component when o is a
// one-component operand.
func broadcastAt[T Scalar, O Operand[T]](o O, i int) T {
	if o.Len() == 1 {
		return o.At(0)
	}
	return o.At(i)
}

// checkCount asserts that an operand of count n can take part in an
// operation producing count c.
func checkCount(n, c int) {
	check.Assertf(n == c || n == 1, "operand has %d components, want %d or 1", n, c)
}
