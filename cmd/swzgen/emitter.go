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

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/tools/imports"
)

const (
	header      = "// Code generated by swzgen. DO NOT EDIT.\n"
	checkImport = "github.com/ajroetker/go-swizzle/internal/check"
)

// argNames names the components in constructor and Set parameter lists.
var argNames = [MaxLen]string{"x", "y", "z", "w"}

type binaryOp struct {
	Method string // facade method name
	Fn     string // scalar operator in package swz
	Doc    string
}

var arithmeticOps = []binaryOp{
	{"Add", "add", "v + o"},
	{"Sub", "sub", "v - o"},
	{"Mul", "mul", "v * o"},
	{"Div", "div", "v / o"},
	{"Mod", "mod", "v % o"},
	{"And", "and", "v & o"},
	{"Or", "or", "v | o"},
	{"Xor", "xor", "v ^ o"},
	{"Shl", "shl", "v << o"},
	{"Shr", "shr", "v >> o"},
}

var unaryOps = []binaryOp{
	{"Neg", "neg", "-v"},
	{"Pos", "pos", "+v"},
	{"Complement", "complement", "^v"},
}

var compareOps = []binaryOp{
	{"EqualTo", "equal", "v == o"},
	{"NotEqualTo", "notEqual", "v != o"},
	{"LessThan", "lessThan", "v < o"},
	{"LessEqual", "lessEqual", "v <= o"},
	{"GreaterThan", "greaterThan", "v > o"},
	{"GreaterEqual", "greaterEqual", "v >= o"},
}

var logicalOps = []binaryOp{
	{"And", "logicalAnd", "v && o"},
	{"Or", "logicalOr", "v || o"},
	{"Xor", "logicalXor", "v != o"},
}

// EmitStore writes the StoreN types and their swizzle accessors.
func EmitStore(buf *bytes.Buffer, pkg string, sets []NameSet) {
	emitPreamble(buf, pkg, true)
	for size := 1; size <= MaxLen; size++ {
		emitStoreType(buf, size)
		for _, set := range sets {
			emitAccessors(buf, size, set)
		}
	}
}

// EmitViews writes the ViewN and SwizzleN types.
func EmitViews(buf *bytes.Buffer, pkg string) {
	emitPreamble(buf, pkg, true)
	for n := 1; n <= MaxLen; n++ {
		emitView(buf, n)
		emitSwizzle(buf, n)
	}
}

// EmitVectors writes the VecN and BVecN facades.
func EmitVectors(buf *bytes.Buffer, pkg string) {
	emitPreamble(buf, pkg, false)
	for n := 1; n <= MaxLen; n++ {
		emitVec(buf, n)
		emitBVec(buf, n)
	}
}

func emitPreamble(buf *bytes.Buffer, pkg string, withImports bool) {
	fmt.Fprintf(buf, "%s\npackage %s\n", header, pkg)
	if withImports {
		fmt.Fprintf(buf, "\nimport (\n\t\"iter\"\n\n\t%q\n)\n", checkImport)
	}
}

func emitStoreType(buf *bytes.Buffer, n int) {
	recv := fmt.Sprintf("Store%d[T]", n)
	names := strings.Join(argNames[:n], ", ")

	fmt.Fprintf(buf, "\n// Store%d holds the components of a %d-component vector or matrix\n// column.\n", n, n)
	fmt.Fprintf(buf, "type Store%d[T Scalar] struct {\n\tc [%d]T\n}\n", n, n)

	fmt.Fprintf(buf, "\n// Len returns %d.\n", n)
	fmt.Fprintf(buf, "func (s %s) Len() int {\n\treturn %d\n}\n", recv, n)

	fmt.Fprintf(buf, "\n// At returns component i.\n")
	fmt.Fprintf(buf, "func (s %s) At(i int) T {\n\tcheck.Index(i, %d)\n\treturn s.c[i]\n}\n", recv, n)

	fmt.Fprintf(buf, "\n// SetAt sets component i.\n")
	fmt.Fprintf(buf, "func (s *%s) SetAt(i int, x T) {\n\tcheck.Index(i, %d)\n\ts.c[i] = x\n}\n", recv, n)

	fmt.Fprintf(buf, "\n// Set replaces every component.\n")
	fmt.Fprintf(buf, "func (s *%s) Set(%s T) {\n\ts.c = [%d]T{%s}\n}\n", recv, names, n, names)

	fmt.Fprintf(buf, "\n// Swap exchanges components i and j.\n")
	fmt.Fprintf(buf, "func (s *%s) Swap(i, j int) {\n\tcheck.Index(i, %d)\n\tcheck.Index(j, %d)\n\ts.c[i], s.c[j] = s.c[j], s.c[i]\n}\n", recv, n, n)

	fmt.Fprintf(buf, "\n// All iterates over the components in order.\n")
	fmt.Fprintf(buf, "func (s %s) All() iter.Seq2[int, T] {\n\treturn forward[T](s)\n}\n", recv)

	fmt.Fprintf(buf, "\n// Backward iterates over the components in reverse order.\n")
	fmt.Fprintf(buf, "func (s %s) Backward() iter.Seq2[int, T] {\n\treturn backward[T](s)\n}\n", recv)

	fmt.Fprintf(buf, "\n// Array returns a copy of the components.\n")
	fmt.Fprintf(buf, "func (s %s) Array() [%d]T {\n\treturn s.c\n}\n", recv, n)

	fmt.Fprintf(buf, "\n// Pick returns the run-time swizzle named by a lower-case pattern such as\n// \"zyx\", \"bgr\" or \"ts\".\n")
	fmt.Fprintf(buf, "func (s *%s) Pick(pattern string) (Dynamic[T], error) {\n\treturn pick(s.c[:], pattern)\n}\n", recv)

	fmt.Fprintf(buf, "\n// PickIndex returns the run-time swizzle selecting the given components.\n")
	fmt.Fprintf(buf, "func (s *%s) PickIndex(idx ...int) (Dynamic[T], error) {\n\treturn pickIndex(s.c[:], idx...)\n}\n", recv)
}

func emitAccessors(buf *bytes.Buffer, size int, set NameSet) {
	fmt.Fprintf(buf, "\n// Swizzles of Store%d spelled with %s.\n", size, set.Name)
	for _, a := range Accessors(size, set) {
		typ, ctor := "View", "view"
		if a.Writable {
			typ, ctor = "Swizzle", "swizzle"
		}
		count := len(a.Mapping)
		fmt.Fprintf(buf, "\nfunc (s *Store%d[T]) %s() %s%d[T] {\n\treturn %s%d(s.c[:], %s)\n}\n",
			size, a.Name, typ, count, ctor, count, joinInts(a.Mapping, "%d"))
	}
}

func emitView(buf *bytes.Buffer, n int) {
	recv := fmt.Sprintf("View%d[T]", n)
	params := joinSeq(n, "i%d")

	fmt.Fprintf(buf, "\n// View%d is a read-only %d-component view of a vector's storage. It may\n// select a component more than once.\n", n, n)
	fmt.Fprintf(buf, "type View%d[T Scalar] struct {\n\ts   []T\n\tidx [%d]uint8\n}\n", n, n)

	fmt.Fprintf(buf, "\nfunc view%d[T Scalar](s []T, %s uint8) View%d[T] {\n\treturn View%d[T]{s: s, idx: [%d]uint8{%s}}\n}\n",
		n, params, n, n, n, params)

	fmt.Fprintf(buf, "\n// Len returns %d.\n", n)
	fmt.Fprintf(buf, "func (v %s) Len() int {\n\treturn %d\n}\n", recv, n)

	fmt.Fprintf(buf, "\n// At returns component i of the view.\n")
	fmt.Fprintf(buf, "func (v %s) At(i int) T {\n\tcheck.Index(i, %d)\n\treturn v.s[v.idx[i]]\n}\n", recv, n)

	if n == 1 {
		fmt.Fprintf(buf, "\n// Get returns the viewed component.\n")
		fmt.Fprintf(buf, "func (v %s) Get() T {\n\treturn v.s[v.idx[0]]\n}\n", recv)
	}

	fmt.Fprintf(buf, "\n// All iterates over the viewed components in order.\n")
	fmt.Fprintf(buf, "func (v %s) All() iter.Seq2[int, T] {\n\treturn forward[T](v)\n}\n", recv)

	fmt.Fprintf(buf, "\n// Backward iterates over the viewed components in reverse order.\n")
	fmt.Fprintf(buf, "func (v %s) Backward() iter.Seq2[int, T] {\n\treturn backward[T](v)\n}\n", recv)

	fmt.Fprintf(buf, "\n// Array returns a copy of the viewed components.\n")
	fmt.Fprintf(buf, "func (v %s) Array() [%d]T {\n\treturn [%d]T{%s}\n}\n", recv, n, n, joinSeq(n, "v.s[v.idx[%d]]"))

	fmt.Fprintf(buf, "\n// Indices returns the storage positions the view reads, in order.\n")
	fmt.Fprintf(buf, "func (v %s) Indices() [%d]int {\n\treturn [%d]int{%s}\n}\n", recv, n, n, joinSeq(n, "int(v.idx[%d])"))

	if n > 1 {
		fmt.Fprintf(buf, "\n// Reverse returns the view with its components in reverse order.\n")
		fmt.Fprintf(buf, "func (v %s) Reverse() View%d[T] {\n\treturn view%d(v.s, %s)\n}\n", recv, n, n, joinRevSeq(n, "v.idx[%d]"))
	}

	fmt.Fprintf(buf, "\n// String formats the viewed components.\n")
	fmt.Fprintf(buf, "func (v %s) String() string {\n\treturn formatOperand[T](\"View%d\", v)\n}\n", recv, n)
}

func emitSwizzle(buf *bytes.Buffer, n int) {
	recv := fmt.Sprintf("Swizzle%d[T]", n)
	params := joinSeq(n, "i%d")

	fmt.Fprintf(buf, "\n// Swizzle%d is a writable %d-component view of a vector's storage that\n// selects each component at most once.\n", n, n)
	fmt.Fprintf(buf, "type Swizzle%d[T Scalar] struct {\n\tView%d[T]\n}\n", n, n)

	fmt.Fprintf(buf, "\nfunc swizzle%d[T Scalar](s []T, %s uint8) Swizzle%d[T] {\n\treturn Swizzle%d[T]{view%d(s, %s)}\n}\n",
		n, params, n, n, n, params)

	fmt.Fprintf(buf, "\n// SetAt sets component i of the view.\n")
	fmt.Fprintf(buf, "func (v %s) SetAt(i int, x T) {\n\tcheck.Index(i, %d)\n\tv.s[v.idx[i]] = x\n}\n", recv, n)

	fmt.Fprintf(buf, "\n// Set replaces every viewed component.\n")
	fmt.Fprintf(buf, "func (v %s) Set(%s T) {\n", recv, joinSeq(n, "x%d"))
	for i := range n {
		fmt.Fprintf(buf, "\tv.s[v.idx[%d]] = x%d\n", i, i)
	}
	fmt.Fprintf(buf, "}\n")

	fmt.Fprintf(buf, "\n// Assign copies src into the viewed components, broadcasting a single\n// component source. All of src is read before anything is written, so src\n// may alias the view.\n")
	fmt.Fprintf(buf, "func (v %s) Assign(src Operand[T]) {\n\tMap1(v, identity[T], src)\n}\n", recv)

	if n > 1 {
		fmt.Fprintf(buf, "\n// Reverse returns the swizzle with its components in reverse order.\n")
		fmt.Fprintf(buf, "func (v %s) Reverse() Swizzle%d[T] {\n\treturn Swizzle%d[T]{v.View%d.Reverse()}\n}\n", recv, n, n, n)
	}

	fmt.Fprintf(buf, "\n// String formats the viewed components.\n")
	fmt.Fprintf(buf, "func (v %s) String() string {\n\treturn formatOperand[T](\"Swizzle%d\", v)\n}\n", recv, n)
}

func emitVec(buf *bytes.Buffer, n int) {
	vec := fmt.Sprintf("Vec%d[T]", n)
	names := strings.Join(argNames[:n], ", ")

	fmt.Fprintf(buf, "\n// Vec%d is a %d-component numeric vector.\n", n, n)
	fmt.Fprintf(buf, "type Vec%d[T Number] struct {\n\tStore%d[T]\n}\n", n, n)

	fmt.Fprintf(buf, "\n// NewVec%d returns the vector (%s).\n", n, names)
	fmt.Fprintf(buf, "func NewVec%d[T Number](%s T) %s {\n\tvar v %s\n\tv.c = [%d]T{%s}\n\treturn v\n}\n", n, names, vec, vec, n, names)

	fmt.Fprintf(buf, "\n// Splat%d returns a vector with every component set to x.\n", n)
	fmt.Fprintf(buf, "func Splat%d[T Number](x T) %s {\n\tvar v %s\n\tfill(&v, x)\n\treturn v\n}\n", n, vec, vec)

	fmt.Fprintf(buf, "\n// Vec%dFromArray returns the vector holding a.\n", n)
	fmt.Fprintf(buf, "func Vec%dFromArray[T Number](a [%d]T) %s {\n\tvar v %s\n\tv.c = a\n\treturn v\n}\n", n, n, vec, vec)

	fmt.Fprintf(buf, "\n// Vec%dFrom flattens parts left to right into a new vector. The parts must\n// supply exactly as many components as it holds.\n", n)
	fmt.Fprintf(buf, "func Vec%dFrom[T Number](parts ...Operand[T]) %s {\n\tvar v %s\n\tcompose(&v, parts)\n\treturn v\n}\n", n, vec, vec)

	fmt.Fprintf(buf, "\n// Truncate%d returns a Vec%d of the leading components of o.\n", n, n)
	fmt.Fprintf(buf, "func Truncate%d[T Number, O Operand[T]](o O) %s {\n\tvar v %s\n\ttruncate[T](&v, o)\n\treturn v\n}\n", n, vec, vec)

	fmt.Fprintf(buf, "\n// Convert%d converts every component of v to kind R.\n", n)
	fmt.Fprintf(buf, "func Convert%d[R, T Number](v %s) Vec%d[R] {\n\treturn Apply1[Vec%d[R]](convert[R, T], v)\n}\n", n, vec, n, n)

	if n == 1 {
		fmt.Fprintf(buf, "\n// Value returns the single component.\n")
		fmt.Fprintf(buf, "func (v %s) Value() T {\n\treturn v.c[0]\n}\n", vec)
	}

	for _, op := range arithmeticOps {
		fmt.Fprintf(buf, "\n// %s returns %s.\n", op.Method, op.Doc)
		fmt.Fprintf(buf, "func (v %s) %s(o Operand[T]) %s {\n\treturn Apply2[%s](%s[T], v, o)\n}\n", vec, op.Method, vec, vec, op.Fn)
	}
	for _, op := range arithmeticOps {
		fmt.Fprintf(buf, "\n// %sAssign sets v to %s.\n", op.Method, op.Doc)
		fmt.Fprintf(buf, "func (v *%s) %sAssign(o Operand[T]) {\n\tUpdate2(v, %s[T], o)\n}\n", vec, op.Method, op.Fn)
	}
	for _, op := range unaryOps {
		fmt.Fprintf(buf, "\n// %s returns %s.\n", op.Method, op.Doc)
		fmt.Fprintf(buf, "func (v %s) %s() %s {\n\treturn Apply1[%s](%s[T], v)\n}\n", vec, op.Method, vec, vec, op.Fn)
	}

	fmt.Fprintf(buf, "\n// Inc adds one to every component and returns the result.\n")
	fmt.Fprintf(buf, "func (v *%s) Inc() %s {\n\tUpdate1(v, inc[T])\n\treturn *v\n}\n", vec, vec)
	fmt.Fprintf(buf, "\n// Dec subtracts one from every component and returns the result.\n")
	fmt.Fprintf(buf, "func (v *%s) Dec() %s {\n\tUpdate1(v, dec[T])\n\treturn *v\n}\n", vec, vec)

	fmt.Fprintf(buf, "\n// Equal reports whether every component of v equals o.\n")
	fmt.Fprintf(buf, "func (v %s) Equal(o Operand[T]) bool {\n\treturn allEqual[T](v, o)\n}\n", vec)
	fmt.Fprintf(buf, "\n// NotEqual reports whether some component of v differs from o.\n")
	fmt.Fprintf(buf, "func (v %s) NotEqual(o Operand[T]) bool {\n\treturn !allEqual[T](v, o)\n}\n", vec)
	for _, op := range compareOps {
		fmt.Fprintf(buf, "\n// %s reports %s componentwise.\n", op.Method, op.Doc)
		fmt.Fprintf(buf, "func (v %s) %s(o Operand[T]) BVec%d {\n\treturn Apply2[BVec%d](%s[T], v, o)\n}\n", vec, op.Method, n, n, op.Fn)
	}

	fmt.Fprintf(buf, "\n// Min returns the smallest component, the first one on ties.\n")
	fmt.Fprintf(buf, "func (v %s) Min() T {\n\treturn minOf[T](v)\n}\n", vec)
	fmt.Fprintf(buf, "\n// Max returns the largest component, the first one on ties.\n")
	fmt.Fprintf(buf, "func (v %s) Max() T {\n\treturn maxOf[T](v)\n}\n", vec)
	fmt.Fprintf(buf, "\n// Sum returns the components added left to right.\n")
	fmt.Fprintf(buf, "func (v %s) Sum() T {\n\treturn sumOf[T](v)\n}\n", vec)

	fmt.Fprintf(buf, "\n// Shift moves every component n positions toward the end and fills the\n// vacated positions with zero. Negative n moves toward the front.\n")
	fmt.Fprintf(buf, "func (v %s) Shift(n int) %s {\n\tvar out %s\n\tshift[T](&out, v, n, false)\n\treturn out\n}\n", vec, vec, vec)
	fmt.Fprintf(buf, "\n// CShift is Shift with the components that fall off one end reappearing\n// at the other.\n")
	fmt.Fprintf(buf, "func (v %s) CShift(n int) %s {\n\tvar out %s\n\tshift[T](&out, v, n, true)\n\treturn out\n}\n", vec, vec, vec)

	fmt.Fprintf(buf, "\n// Dot returns the dot product of v and o.\n")
	fmt.Fprintf(buf, "func (v %s) Dot(o Operand[T]) T {\n\treturn dot[T](v, o)\n}\n", vec)
	fmt.Fprintf(buf, "\n// Length returns the Euclidean length of v. T must be a float kind.\n")
	fmt.Fprintf(buf, "func (v %s) Length() T {\n\treturn length[T](v)\n}\n", vec)
	fmt.Fprintf(buf, "\n// Distance returns the length of v - o.\n")
	fmt.Fprintf(buf, "func (v %s) Distance(o Operand[T]) T {\n\treturn v.Sub(o).Length()\n}\n", vec)
	fmt.Fprintf(buf, "\n// Normalize returns v scaled to unit length. The zero vector gives NaN\n// components.\n")
	fmt.Fprintf(buf, "func (v %s) Normalize() %s {\n\treturn v.Div(S(v.Length()))\n}\n", vec, vec)
	fmt.Fprintf(buf, "\n// Lerp returns v + (o-v)*t.\n")
	fmt.Fprintf(buf, "func (v %s) Lerp(o Operand[T], t T) %s {\n\treturn Apply3[%s](mix[T], v, o, S(t))\n}\n", vec, vec, vec)
	fmt.Fprintf(buf, "\n// Reflect returns v reflected about the plane with unit normal n.\n")
	fmt.Fprintf(buf, "func (v %s) Reflect(n %s) %s {\n\treturn Apply2[%s](reflectBy(n.Dot(v)), v, n)\n}\n", vec, vec, vec, vec)
	fmt.Fprintf(buf, "\n// FaceForward returns v if dot(nref, i) < 0 and -v otherwise.\n")
	fmt.Fprintf(buf, "func (v %s) FaceForward(i, nref %s) %s {\n\tif nref.Dot(i) < 0 {\n\t\treturn v\n\t}\n\treturn v.Neg()\n}\n", vec, vec, vec)

	fmt.Fprintf(buf, "\n// Map returns f applied to every component.\n")
	fmt.Fprintf(buf, "func (v %s) Map(f func(T) T) %s {\n\treturn Apply1[%s](f, v)\n}\n", vec, vec, vec)
	fmt.Fprintf(buf, "\n// Zip returns f applied to the components of v and o pairwise.\n")
	fmt.Fprintf(buf, "func (v %s) Zip(o Operand[T], f func(T, T) T) %s {\n\treturn Apply2[%s](f, v, o)\n}\n", vec, vec, vec)

	if n > 1 {
		fmt.Fprintf(buf, "\n// Reverse returns the components in reverse order.\n")
		fmt.Fprintf(buf, "func (v %s) Reverse() %s {\n\treturn Vec%dFromArray([%d]T{%s})\n}\n", vec, vec, n, n, joinRevSeq(n, "v.c[%d]"))
	}

	fmt.Fprintf(buf, "\n// String formats v as Vec%d(%s).\n", n, names)
	fmt.Fprintf(buf, "func (v %s) String() string {\n\treturn formatOperand[T](\"Vec%d\", v)\n}\n", vec, n)
}

func emitBVec(buf *bytes.Buffer, n int) {
	vec := fmt.Sprintf("BVec%d", n)
	names := strings.Join(argNames[:n], ", ")

	fmt.Fprintf(buf, "\n// BVec%d is a %d-component boolean vector, as produced by componentwise\n// comparisons.\n", n, n)
	fmt.Fprintf(buf, "type BVec%d struct {\n\tStore%d[bool]\n}\n", n, n)

	fmt.Fprintf(buf, "\n// NewBVec%d returns the vector (%s).\n", n, names)
	fmt.Fprintf(buf, "func NewBVec%d(%s bool) %s {\n\tvar v %s\n\tv.c = [%d]bool{%s}\n\treturn v\n}\n", n, names, vec, vec, n, names)

	fmt.Fprintf(buf, "\n// BVec%dFromArray returns the vector holding a.\n", n)
	fmt.Fprintf(buf, "func BVec%dFromArray(a [%d]bool) %s {\n\tvar v %s\n\tv.c = a\n\treturn v\n}\n", n, n, vec, vec)

	fmt.Fprintf(buf, "\n// BVec%dFrom flattens parts left to right into a new vector. The parts must\n// supply exactly as many components as it holds.\n", n)
	fmt.Fprintf(buf, "func BVec%dFrom(parts ...Operand[bool]) %s {\n\tvar v %s\n\tcompose(&v, parts)\n\treturn v\n}\n", n, vec, vec)

	for _, op := range logicalOps {
		fmt.Fprintf(buf, "\n// %s returns %s componentwise.\n", op.Method, op.Doc)
		fmt.Fprintf(buf, "func (v %s) %s(o Operand[bool]) %s {\n\treturn Apply2[%s](%s, v, o)\n}\n", vec, op.Method, vec, vec, op.Fn)
	}
	fmt.Fprintf(buf, "\n// Not returns !v componentwise.\n")
	fmt.Fprintf(buf, "func (v %s) Not() %s {\n\treturn Apply1[%s](logicalNot, v)\n}\n", vec, vec, vec)

	fmt.Fprintf(buf, "\n// AnyTrue reports whether some component is true.\n")
	fmt.Fprintf(buf, "func (v %s) AnyTrue() bool {\n\treturn countTrue(v) > 0\n}\n", vec)
	fmt.Fprintf(buf, "\n// AllTrue reports whether every component is true.\n")
	fmt.Fprintf(buf, "func (v %s) AllTrue() bool {\n\treturn countTrue(v) == %d\n}\n", vec, n)
	fmt.Fprintf(buf, "\n// CountTrue returns the number of true components.\n")
	fmt.Fprintf(buf, "func (v %s) CountTrue() int {\n\treturn countTrue(v)\n}\n", vec)

	fmt.Fprintf(buf, "\n// Equal reports whether every component of v equals o.\n")
	fmt.Fprintf(buf, "func (v %s) Equal(o Operand[bool]) bool {\n\treturn allEqual[bool](v, o)\n}\n", vec)
	fmt.Fprintf(buf, "\n// NotEqual reports whether some component of v differs from o.\n")
	fmt.Fprintf(buf, "func (v %s) NotEqual(o Operand[bool]) bool {\n\treturn !allEqual[bool](v, o)\n}\n", vec)

	if n > 1 {
		fmt.Fprintf(buf, "\n// Reverse returns the components in reverse order.\n")
		fmt.Fprintf(buf, "func (v %s) Reverse() %s {\n\treturn BVec%dFromArray([%d]bool{%s})\n}\n", vec, vec, n, n, joinRevSeq(n, "v.c[%d]"))
	}

	fmt.Fprintf(buf, "\n// String formats v as BVec%d(%s).\n", n, names)
	fmt.Fprintf(buf, "func (v %s) String() string {\n\treturn formatOperand[bool](\"BVec%d\", v)\n}\n", vec, n)
}

// joinInts formats each of xs with format and joins them with ", ".
func joinInts(xs []int, format string) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprintf(format, x)
	}
	return strings.Join(parts, ", ")
}

// joinSeq is joinInts over 0, 1, ..., n-1.
func joinSeq(n int, format string) string {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = i
	}
	return joinInts(xs, format)
}

// joinRevSeq is joinInts over n-1, ..., 1, 0.
func joinRevSeq(n int, format string) string {
	xs := make([]int, n)
	for i := range xs {
		xs[i] = n - 1 - i
	}
	return joinInts(xs, format)
}

// writeSource formats src and writes it to path.
func writeSource(path string, src []byte) error {
	formatted, err := imports.Process(path, src, nil)
	if err != nil {
		return fmt.Errorf("format %s: %w", path, err)
	}
	if err := os.WriteFile(path, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
