package tiling

import "sort"

// Factory constructs a preset tiling.
type Factory func() (*Tiling, error)

var presets = map[string]Factory{}

// Register adds a tiling factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of available tiling factories.
func Presets() map[string]Factory { return presets }

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	// The extra relations quotient the infinite groups down to a finite
	// ball that fits the transition table.
	Register("heptagonal", func() (*Tiling, error) {
		return New("heptagonal", []int{7, 3}, []string{"0 2 1;8"}, nil)
	})
	Register("octagonal", func() (*Tiling, error) {
		return New("octagonal", []int{8, 3, 3}, []string{"0 2 1 0 2 1 0 1;2"}, nil)
	})
	// Euclidean; enumeration stops at the limit and the rim renders with
	// the sentinel fallback.
	Register("hexagonal", func() (*Tiling, error) {
		return New("hexagonal", []int{6, 3}, nil, nil)
	})
	// Spherical, finite without any quotient.
	Register("tetrahedral", func() (*Tiling, error) {
		return New("tetrahedral", []int{3, 3}, nil, nil)
	})
}
