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

// compose writes the components of parts into dst left to right. Together
// the parts must supply exactly dst.Len() components; since every operand
// has at least one component, that also means no part is superfluous.
func compose[T Scalar, D Sink[T]](dst D, parts []Operand[T]) {
	n := dst.Len()
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	if total > n && total-parts[len(parts)-1].Len() >= n {
		check.Assertf(false, "construction part %d is superfluous: the parts before it already supply %d components",
			len(parts)-1, n)
	}
	check.Assertf(total == n, "construction supplies %d components, want %d", total, n)

	k := 0
	for _, p := range parts {
		for i := 0; i < p.Len() && k < n; i++ {
			dst.SetAt(k, p.At(i))
			k++
		}
	}
}

// truncate copies the first dst.Len() components of src.
func truncate[T Scalar, D Sink[T], O Operand[T]](dst D, src O) {
	n := dst.Len()
	check.Assertf(src.Len() >= n, "cannot truncate %d components to %d", src.Len(), n)
	for i := 0; i < n; i++ {
		dst.SetAt(i, src.At(i))
	}
}

// fill sets every component of dst to x.
func fill[T Scalar, D Sink[T]](dst D, x T) {
	for i := 0; i < dst.Len(); i++ {
		dst.SetAt(i, x)
	}
}
