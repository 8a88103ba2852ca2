package iconspec

import (
	"fmt"
	"sort"
)

// DefaultSet is the set used when none is requested.
const DefaultSet = "ios-universal"

// Set is a named, ordered list of icons generated together.
type Set struct {
	Name  string
	Specs []IconSpec
}

// universal mirrors the AppIcon.appiconset layout of a universal iOS app.
// Three filenames repeat between iphone and ipad; they share a pixel size.
var universal = []IconSpec{
	{"20x20", 2, IdiomIPhone, "AppIcon-20x20@2x.png"},
	{"20x20", 3, IdiomIPhone, "AppIcon-20x20@3x.png"},
	{"29x29", 2, IdiomIPhone, "AppIcon-29x29@2x.png"},
	{"29x29", 3, IdiomIPhone, "AppIcon-29x29@3x.png"},
	{"40x40", 2, IdiomIPhone, "AppIcon-40x40@2x.png"},
	{"40x40", 3, IdiomIPhone, "AppIcon-40x40@3x.png"},
	{"60x60", 2, IdiomIPhone, "AppIcon-60x60@2x.png"},
	{"60x60", 3, IdiomIPhone, "AppIcon-60x60@3x.png"},
	{"20x20", 1, IdiomIPad, "AppIcon-20x20@1x.png"},
	{"20x20", 2, IdiomIPad, "AppIcon-20x20@2x.png"},
	{"29x29", 1, IdiomIPad, "AppIcon-29x29@1x.png"},
	{"29x29", 2, IdiomIPad, "AppIcon-29x29@2x.png"},
	{"40x40", 1, IdiomIPad, "AppIcon-40x40@1x.png"},
	{"40x40", 2, IdiomIPad, "AppIcon-40x40@2x.png"},
	{"76x76", 1, IdiomIPad, "AppIcon-76x76@1x.png"},
	{"76x76", 2, IdiomIPad, "AppIcon-76x76@2x.png"},
	{"83.5x83.5", 2, IdiomIPad, "AppIcon-83.5x83.5@2x.png"},
	{"1024x1024", 1, IdiomMarketing, "AppIcon-1024x1024.png"},
}

// Built-in sets. Idiom sets are filtered views of the universal table.
var sets = map[string]Set{
	DefaultSet:             {Name: DefaultSet, Specs: universal},
	string(IdiomIPhone):    {Name: string(IdiomIPhone), Specs: filter(universal, IdiomIPhone)},
	string(IdiomIPad):      {Name: string(IdiomIPad), Specs: filter(universal, IdiomIPad)},
	string(IdiomMarketing): {Name: string(IdiomMarketing), Specs: filter(universal, IdiomMarketing)},
}

// Get returns a copy of the named set.
func Get(name string) (Set, error) {
	s, ok := sets[name]
	if !ok {
		return Set{}, fmt.Errorf("unknown icon set %q (available: %v)", name, Names())
	}
	s.Specs = append([]IconSpec(nil), s.Specs...)
	return s, nil
}

// Universal returns a copy of the full icon table.
func Universal() []IconSpec {
	return append([]IconSpec(nil), universal...)
}

// Names returns the built-in set names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Filenames returns the distinct filenames of s in first-seen order.
func (s Set) Filenames() []string {
	seen := map[string]bool{}
	var out []string
	for _, spec := range s.Specs {
		if !seen[spec.Filename] {
			seen[spec.Filename] = true
			out = append(out, spec.Filename)
		}
	}
	return out
}

func filter(specs []IconSpec, idiom Idiom) []IconSpec {
	var out []IconSpec
	for _, s := range specs {
		if s.Idiom == idiom {
			out = append(out, s)
		}
	}
	return out
}
