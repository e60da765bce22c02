package qm

import "strings"

// Factory constructs one backend instance.
type Factory func() Program

// registry of program factories, populated by init() in each backend
// package or explicitly via Register. Registration must complete
// before the first Create; after that the map is read-only and safe
// for concurrent lookups.
var programs = map[string]Factory{}

// Register stores factory under the case-normalized name. Registering
// a name twice overwrites the earlier factory; that is the intended
// override mechanism, not an error.
func Register(name string, factory Factory) {
	programs[strings.ToLower(name)] = factory
}

// Create resolves name case-insensitively and returns a fresh backend
// instance, or an *UnsupportedProgramError carrying the original name.
func Create(name string) (Program, error) {
	factory, ok := programs[strings.ToLower(name)]
	if !ok {
		return nil, &UnsupportedProgramError{Name: name}
	}
	return factory(), nil
}

// IsSupported reports whether a backend is registered under name.
func IsSupported(name string) bool {
	_, ok := programs[strings.ToLower(name)]
	return ok
}

// SupportedPrograms returns the registered names in no particular
// order.
func SupportedPrograms() []string {
	names := make([]string, 0, len(programs))
	for name := range programs {
		names = append(names, name)
	}
	return names
}
