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

package main

import "strings"

// MaxLen is the largest vector size and the longest swizzle.
const MaxLen = 4

// Mapping is the list of storage positions a swizzle reads, in logical
// order.
type Mapping []int

// Mappings returns every mapping of count positions into a storage of the
// given size, in lexicographic order: for size 2 and count 2 that is
// 00, 01, 10, 11.
func Mappings(size, count int) []Mapping {
	total := 1
	for range count {
		total *= size
	}
	out := make([]Mapping, 0, total)
	for n := 0; n < total; n++ {
		m := make(Mapping, count)
		k := n
		for i := count - 1; i >= 0; i-- {
			m[i] = k % size
			k /= size
		}
		out = append(out, m)
	}
	return out
}

// Injective reports whether no position repeats. Only injective mappings
// are writable.
func (m Mapping) Injective() bool {
	var seen [MaxLen]bool
	for _, p := range m {
		if seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}

// Name spells m with the letters of set.
func (m Mapping) Name(set NameSet) string {
	var sb strings.Builder
	for _, p := range m {
		sb.WriteByte(set.Letters[p])
	}
	return sb.String()
}

// Accessor is one generated swizzle method.
type Accessor struct {
	Name     string
	Mapping  Mapping
	Writable bool
}

// Accessors returns the swizzle methods of a storage of the given size for
// one name set, shortest first.
func Accessors(size int, set NameSet) []Accessor {
	var out []Accessor
	for count := 1; count <= MaxLen; count++ {
		for _, m := range Mappings(size, count) {
			out = append(out, Accessor{
				Name:     m.Name(set),
				Mapping:  m,
				Writable: m.Injective(),
			})
		}
	}
	return out
}
