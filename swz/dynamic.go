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
	"fmt"

	"github.com/ajroetker/go-swizzle/internal/check"
)

// Dynamic is a swizzle chosen at run time, for patterns that come from
// data rather than from code (a shader-style expression parser, a config
// file). Unlike the generated accessors its writability is a property of
// the value, and misuse is reported as an error instead of failing to
// compile.
type Dynamic[T Scalar] struct {
	s        []T
	idx      [MaxLen]uint8
	n        int
	writable bool
}

// Len returns the number of components selected by the pattern.
func (d Dynamic[T]) Len() int { return d.n }

// At returns component i.
func (d Dynamic[T]) At(i int) T {
	check.Index(i, d.n)
	return d.s[d.idx[i]]
}

// Writable reports whether the pattern selects no component twice.
func (d Dynamic[T]) Writable() bool { return d.writable }

// Indices returns the storage positions in logical order.
func (d Dynamic[T]) Indices() []int {
	out := make([]int, d.n)
	for i := range out {
		out[i] = int(d.idx[i])
	}
	return out
}

// Reverse returns the swizzle with its components in reverse order.
func (d Dynamic[T]) Reverse() Dynamic[T] {
	r := d
	for i := 0; i < d.n; i++ {
		r.idx[i] = d.idx[d.n-1-i]
	}
	return r
}

// Lookup is At with an error instead of a panic.
func (d Dynamic[T]) Lookup(i int) (T, error) {
	if i < 0 || i >= d.n {
		var zero T
		return zero, fmt.Errorf("lookup %d of %d: %w", i, d.n, ErrIndexOutOfRange)
	}
	return d.s[d.idx[i]], nil
}

// Store sets component i.
func (d Dynamic[T]) Store(i int, x T) error {
	if !d.writable {
		return ErrNotWritable
	}
	if i < 0 || i >= d.n {
		return fmt.Errorf("store %d of %d: %w", i, d.n, ErrIndexOutOfRange)
	}
	d.s[d.idx[i]] = x
	return nil
}

// Assign copies src into the selected components, broadcasting a single
// component source. All of src is read before anything is written.
func (d Dynamic[T]) Assign(src Operand[T]) error {
	if !d.writable {
		return ErrNotWritable
	}
	if m := src.Len(); m != d.n && m != 1 {
		return fmt.Errorf("assign %d components to %d: %w", m, d.n, ErrCountMismatch)
	}
	var tmp [MaxLen]T
	for i := 0; i < d.n; i++ {
		tmp[i] = broadcastAt[T](src, i)
	}
	for i := 0; i < d.n; i++ {
		d.s[d.idx[i]] = tmp[i]
	}
	return nil
}

// String formats the selected components.
func (d Dynamic[T]) String() string {
	return formatOperand[T]("Dynamic", d)
}

type nameSet uint8

const (
	setXYZW nameSet = iota + 1
	setRGBA
	setSTPQ
)

// letter maps a component letter to its name set and position.
func letter(r byte) (nameSet, uint8, bool) {
	switch r {
	case 'x', 'y', 'z':
		return setXYZW, r - 'x', true
	case 'w':
		return setXYZW, 3, true
	case 'r':
		return setRGBA, 0, true
	case 'g':
		return setRGBA, 1, true
	case 'b':
		return setRGBA, 2, true
	case 'a':
		return setRGBA, 3, true
	case 's', 't':
		return setSTPQ, r - 's', true
	case 'p':
		return setSTPQ, 2, true
	case 'q':
		return setSTPQ, 3, true
	}
	return 0, 0, false
}

// pick parses a lower-case swizzle pattern over s.
func pick[T Scalar](s []T, pattern string) (Dynamic[T], error) {
	if len(pattern) == 0 || len(pattern) > MaxLen {
		return Dynamic[T]{}, fmt.Errorf("%w: %q must have 1 to %d letters", ErrBadSwizzle, pattern, MaxLen)
	}
	idx := make([]int, len(pattern))
	var set nameSet
	for i := 0; i < len(pattern); i++ {
		ls, pos, ok := letter(pattern[i])
		if !ok {
			return Dynamic[T]{}, fmt.Errorf("%w: %q has unknown letter %q", ErrBadSwizzle, pattern, pattern[i])
		}
		if set != 0 && ls != set {
			return Dynamic[T]{}, fmt.Errorf("%q: %w", pattern, ErrMixedNameSets)
		}
		set = ls
		idx[i] = int(pos)
	}
	d, err := pickIndex(s, idx...)
	if err != nil {
		return Dynamic[T]{}, fmt.Errorf("%q: %w", pattern, err)
	}
	return d, nil
}

// pickIndex selects storage positions of s by number.
func pickIndex[T Scalar](s []T, idx ...int) (Dynamic[T], error) {
	if len(idx) == 0 || len(idx) > MaxLen {
		return Dynamic[T]{}, fmt.Errorf("%w: %d indices", ErrBadSwizzle, len(idx))
	}
	d := Dynamic[T]{s: s, n: len(idx), writable: true}
	var seen [MaxLen]bool
	for i, j := range idx {
		if j < 0 || j >= len(s) {
			return Dynamic[T]{}, fmt.Errorf("component %d of a %d-component vector: %w", j, len(s), ErrIndexOutOfRange)
		}
		if seen[j] {
			d.writable = false
		}
		seen[j] = true
		d.idx[i] = uint8(j)
	}
	return d, nil
}
