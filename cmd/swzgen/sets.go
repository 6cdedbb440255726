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
	"fmt"
	"slices"
	"strings"
)

// NameSet is one alphabet of component names. Accessors are spelled with
// the upper-case letters, so "xyzw" yields X(), XY(), ZYX() and so on.
type NameSet struct {
	Name    string // "xyzw", used on the command line
	Letters string // "XYZW", indexed by storage position
}

var nameSets = []NameSet{
	{Name: "xyzw", Letters: "XYZW"},
	{Name: "rgba", Letters: "RGBA"},
	{Name: "stpq", Letters: "STPQ"},
}

// AvailableSets returns the names accepted by GetSet.
func AvailableSets() []string {
	names := make([]string, len(nameSets))
	for i, s := range nameSets {
		names[i] = s.Name
	}
	return names
}

// GetSet returns the name set called name.
func GetSet(name string) (NameSet, error) {
	for _, s := range nameSets {
		if s.Name == name {
			return s, nil
		}
	}
	return NameSet{}, fmt.Errorf("unknown name set %q (available: %s)", name, strings.Join(AvailableSets(), ","))
}

// ParseSets parses a comma-separated list of name sets, or "all". Sets may
// not repeat, since the accessor names would collide.
func ParseSets(s string) ([]NameSet, error) {
	var names []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	if len(names) == 1 && names[0] == "all" {
		names = AvailableSets()
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no name sets specified")
	}

	var sets []NameSet
	for _, name := range names {
		set, err := GetSet(name)
		if err != nil {
			return nil, err
		}
		if slices.Contains(sets, set) {
			return nil, fmt.Errorf("name set %q listed twice", name)
		}
		sets = append(sets, set)
	}
	return sets, nil
}
