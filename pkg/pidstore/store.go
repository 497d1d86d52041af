package pidstore

import (
	"sort"

	"github.com/rdm-protocol/rdm-go/pkg/messaging"
)

// Parameter is one catalog entry: an RDM PID and the schema for the
// text-entered fields of its request.
type Parameter struct {
	// PID is the E1.20 parameter ID.
	PID uint16

	// Name is the parameter's canonical E1.20 name.
	Name string

	// Description is a short human-readable summary.
	Description string

	// Descriptor is the field schema for the parameter's data.
	Descriptor *messaging.Descriptor
}

// Store is a lookup table of parameters by PID and by name.
type Store struct {
	byPID  map[uint16]*Parameter
	byName map[string]*Parameter
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byPID:  make(map[uint16]*Parameter),
		byName: make(map[string]*Parameter),
	}
}

// Add registers a parameter. A parameter with the same PID or name
// replaces the previous entry. Add must not be called once the store
// is shared across goroutines.
func (s *Store) Add(p *Parameter) {
	s.byPID[p.PID] = p
	s.byName[p.Name] = p
}

// LookupPID returns the parameter registered for the PID.
func (s *Store) LookupPID(pid uint16) (*Parameter, bool) {
	p, ok := s.byPID[pid]
	return p, ok
}

// LookupName returns the parameter registered under the name.
func (s *Store) LookupName(name string) (*Parameter, bool) {
	p, ok := s.byName[name]
	return p, ok
}

// Len returns the number of registered parameters.
func (s *Store) Len() int {
	return len(s.byPID)
}

// Names returns all parameter names in lexical order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.byName))
	for name := range s.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
