package smt

// NameSet tracks the symbolic variable names declared within one session.
// Names must be unique per query: two variables sharing a name alias each
// other in the solver and silently corrupt the encoding.
type NameSet struct {
	elements map[string]struct{}
}

func NewNameSet() *NameSet {
	return &NameSet{
		elements: make(map[string]struct{}),
	}
}

// Add reports false when the name is already taken.
func (set *NameSet) Add(name string) bool {
	if _, ok := set.elements[name]; ok {
		return false
	}
	set.elements[name] = struct{}{}
	return true
}

func (set *NameSet) Has(name string) bool {
	_, ok := set.elements[name]
	return ok
}

func (set *NameSet) Len() int {
	return len(set.elements)
}

func (set *NameSet) Clone() *NameSet {
	clone := make(map[string]struct{}, len(set.elements))
	for elem := range set.elements {
		clone[elem] = struct{}{}
	}
	return &NameSet{
		elements: clone,
	}
}
