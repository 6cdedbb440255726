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

// Command swzgen generates the storage, view and vector types of package
// swz. Go has no way to be generic over an array length or to synthesize
// method names, so every vector size gets its own StoreN, ViewN, SwizzleN,
// VecN and BVecN, and every swizzle (x, xy, zyx, rgba, ...) becomes an
// accessor method on StoreN. A swizzle that repeats a component returns a
// read-only ViewN; the rest return a writable SwizzleN.
//
// Usage:
//
//	swzgen --output swz --package swz --sets xyzw,rgba
//
// Or via go:generate, from package swz:
//
//	//go:generate go run ../cmd/swzgen --output . --package swz --sets xyzw,rgba
//
// The command writes store.gen.go, view.gen.go and vec.gen.go.
package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		output  string
		pkg     string
		sets    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "swzgen",
		Short: "Generate swizzle storage, views and vectors for package swz",
		Long: `swzgen enumerates every swizzle of 1 to 4 components over vectors of
1 to 4 components and writes the accessor methods, view types and vector
facades of package swz.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			nameSets, err := ParseSets(sets)
			if err != nil {
				return err
			}
			gen := &Generator{
				OutputDir: output,
				Package:   pkg,
				Sets:      nameSets,
				Logger:    newLogger(cmd.ErrOrStderr(), verbose),
			}
			return gen.Run()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", ".", "Output directory")
	cmd.Flags().StringVarP(&pkg, "package", "p", "swz", "Package name of the generated files")
	cmd.Flags().StringVar(&sets, "sets", "xyzw,rgba", "Comma-separated name sets ("+strings.Join(AvailableSets(), ",")+") or 'all'")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output")
	return cmd
}
