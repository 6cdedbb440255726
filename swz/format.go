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
	"strings"
)

// formatOperand renders o as name(c0, c1, ...) using the %v verb for each
// component.
func formatOperand[T Scalar, O Operand[T]](name string, o O) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('(')
	for i := 0; i < o.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, o.At(i))
	}
	sb.WriteByte(')')
	return sb.String()
}
