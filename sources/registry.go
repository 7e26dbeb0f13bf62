package sources

import (
	"sort"
)

type Constructor func(Options) Source

var registry = struct {
	r map[string]Constructor
}{
	r: make(map[string]Constructor),
}

func register(name string, constructor Constructor) {
	registry.r[name] = constructor
}

// New builds the source registered under name.
func New(name string, opts Options) (Source, bool) {
	c, ok := registry.r[name]
	if !ok {
		return nil, false
	}
	return c(opts), true
}

// Names lists every registered source, sorted.
func Names() []string {
	names := make([]string, 0, len(registry.r))
	for name := range registry.r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
