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
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Generator writes the generated part of package swz.
type Generator struct {
	OutputDir string       // Output directory
	Package   string       // Package clause of the generated files
	Sets      []NameSet    // Name sets spelled as accessor methods
	Logger    *slog.Logger // Progress output; nil discards it
}

// outputFile is one generated file and the function filling it.
type outputFile struct {
	name string
	emit func(buf *bytes.Buffer)
}

func (g *Generator) files() []outputFile {
	return []outputFile{
		{"store.gen.go", func(buf *bytes.Buffer) { EmitStore(buf, g.Package, g.Sets) }},
		{"view.gen.go", func(buf *bytes.Buffer) { EmitViews(buf, g.Package) }},
		{"vec.gen.go", func(buf *bytes.Buffer) { EmitVectors(buf, g.Package) }},
	}
}

// Run generates every file into OutputDir.
func (g *Generator) Run() error {
	log := g.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if g.Package == "" {
		return fmt.Errorf("no package name")
	}
	if len(g.Sets) == 0 {
		return fmt.Errorf("no name sets")
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	accessors := 0
	for size := 1; size <= MaxLen; size++ {
		for _, set := range g.Sets {
			accessors += len(Accessors(size, set))
		}
	}
	log.Debug("enumerated swizzles", "sets", len(g.Sets), "accessors", accessors)

	for _, f := range g.files() {
		start := time.Now()
		var buf bytes.Buffer
		f.emit(&buf)
		path := filepath.Join(g.OutputDir, f.name)
		if err := writeSource(path, buf.Bytes()); err != nil {
			return err
		}
		log.Info("generated", "file", path, "bytes", buf.Len(), "elapsed", time.Since(start))
	}
	return nil
}
