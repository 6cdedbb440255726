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

package mat

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-swizzle/internal/check"
	"github.com/ajroetker/go-swizzle/swz"
)

// flatten writes the components of parts into dst left to right, with the
// same exact-count rule as vector construction.
func flatten[T swz.Floats](dst []T, parts []swz.Operand[T]) {
	n := len(dst)
	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	if total > n && total-parts[len(parts)-1].Len() >= n {
		check.Assertf(false, "matrix part %d is superfluous: the parts before it already supply %d components",
			len(parts)-1, n)
	}
	check.Assertf(total == n, "matrix construction supplies %d components, want %d", total, n)

	k := 0
	for _, p := range parts {
		for i := 0; i < p.Len() && k < n; i++ {
			dst[k] = p.At(i)
			k++
		}
	}
}

func checkVec[T swz.Floats](v swz.Operand[T], n int) {
	check.Assertf(v.Len() == n, "matrix product with a %d-component vector, want %d", v.Len(), n)
}

// formatMat renders columns as name((c00, c10, ...), (c01, ...)).
func formatMat[T swz.Floats](name string, cols ...swz.Operand[T]) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for j, c := range cols {
		if j > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		for i := 0; i < c.Len(); i++ {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, c.At(i))
		}
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}
