package entity

// Catalog is the ordered movie list.
type Catalog []Movie

// FindByID does a linear scan; the returned pointer aliases the catalog entry.
func (c Catalog) FindByID(id int) (*Movie, bool) {
	for i := range c {
		if c[i].ID == id {
			return &c[i], true
		}
	}
	return nil, false
}

// Clone deep-copies every record. A nil catalog stays nil.
func (c Catalog) Clone() Catalog {
	if c == nil {
		return nil
	}
	out := make(Catalog, len(c))
	for i, m := range c {
		out[i] = m.Clone()
	}
	return out
}

// DuplicateIDs lists ids that occur more than once.
func (c Catalog) DuplicateIDs() []int {
	seen := make(map[int]int, len(c))
	var dups []int
	for _, m := range c {
		seen[m.ID]++
		if seen[m.ID] == 2 {
			dups = append(dups, m.ID)
		}
	}
	return dups
}
