package cinterop

import (
	"slices"

	"github.com/appsworld/go-cinterop/types"
)

// NameSet records the symbol names produced for a batch of declarations and
// flags duplicates, so that collisions surface while bindings are generated
// rather than at link time. A NameSet is not safe for concurrent use.
type NameSet struct {
	mangler *Mangler
	names   map[string]struct{}
}

// NewNameSet returns an empty set that mangles with m. A nil m uses an
// empty-context mangler.
func NewNameSet(m *Mangler) *NameSet {
	if m == nil {
		m = defaultMangler
	}
	return &NameSet{mangler: m, names: make(map[string]struct{})}
}

// Add mangles d, records the resulting name and reports whether that name
// was already present. A duplicate is not always a defect: kinds that share
// a symbol family, such as a constant and a macro constant of equal name and
// type, collide by contract.
func (s *NameSet) Add(d types.Declaration) (name string, dup bool) {
	name = s.mangler.UniqueSymbolName(d)
	if _, dup = s.names[name]; !dup {
		s.names[name] = struct{}{}
	}
	return name, dup
}

// Contains reports whether name has been recorded.
func (s *NameSet) Contains(name string) bool {
	_, ok := s.names[name]
	return ok
}

// Len returns the number of distinct names recorded.
func (s *NameSet) Len() int { return len(s.names) }

// Names returns the recorded names in sorted order.
func (s *NameSet) Names() []string {
	out := make([]string, 0, len(s.names))
	for name := range s.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}
