package ui

// ID identifies a widget across frames. Labeled widgets hash their label
// within the current scope; unlabeled ones hash a per-scope counter.
type ID uint64

const (
	idSeed    ID     = 14695981039346656037 // FNV-1a offset basis
	fnvPrime  uint64 = 1099511628211
	separator        = 0xff
)

type idScope struct {
	id    ID
	autos int
}

func hashString(seed ID, s string) ID {
	h := uint64(seed)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	h ^= separator
	h *= fnvPrime
	if h == 0 {
		h = 1
	}
	return ID(h)
}

func hashInt(seed ID, n int) ID {
	h := uint64(seed)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(n >> (8 * i)))
		h *= fnvPrime
	}
	if h == 0 {
		h = 1
	}
	return ID(h)
}

// ID returns the id a widget labeled label gets in the current scope.
func (c *Ctx) ID(label string) ID {
	return hashString(c.scopes[len(c.scopes)-1].id, label)
}

func (c *Ctx) autoID(kind string) ID {
	s := &c.scopes[len(c.scopes)-1]
	s.autos++
	return hashInt(hashString(s.id, kind), s.autos)
}

// PushID opens a scope so equal labels in different groups stay distinct.
func (c *Ctx) PushID(label string) {
	c.scopes = append(c.scopes, idScope{id: c.ID(label)})
}

func (c *Ctx) PopID() {
	if len(c.scopes) > 1 {
		c.scopes = c.scopes[:len(c.scopes)-1]
	}
}
