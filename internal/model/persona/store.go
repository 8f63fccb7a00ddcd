package persona

// Store exposes persona lookup to the generator and HTTP handlers.
type Store interface {
	List() []Persona
	FindByID(id string) (Persona, bool)
	// Default returns the persona used when a caller does not pick one.
	Default() Persona
}

// MemoryStore keeps personas in insertion order; the first one is the default.
type MemoryStore struct {
	order []string
	byID  map[string]Persona
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied personas.
// Later entries with a duplicate ID replace earlier ones.
func NewMemoryStore(items []Persona) *MemoryStore {
	s := &MemoryStore{byID: make(map[string]Persona, len(items))}
	for _, item := range items {
		if _, exists := s.byID[item.ID]; !exists {
			s.order = append(s.order, item.ID)
		}
		s.byID[item.ID] = item
	}
	return s
}

// List returns personas in the order they were seeded.
func (s *MemoryStore) List() []Persona {
	out := make([]Persona, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// FindByID looks up a persona by identifier.
func (s *MemoryStore) FindByID(id string) (Persona, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Default returns the first seeded persona, or Kino when the store is empty.
func (s *MemoryStore) Default() Persona {
	if len(s.order) == 0 {
		return Seed()[0]
	}
	return s.byID[s.order[0]]
}
