package ini

// A Section is one labeled block of fields from a source file. Repeated keys
// keep every occurrence in source order; repeated section headers produce
// separate Section entries in the stream.
type Section struct {
	// Name is the lowercased section header, without brackets.
	Name string

	fields map[string][]Value
	keys   []string // first-appearance order
}

// NewSection creates an empty section with the given (lowercased) name.
// It is exported for tests and tools that synthesize streams.
func NewSection(name string) Section {
	return Section{Name: name, fields: make(map[string][]Value)}
}

// Add appends one occurrence of key with the given scalar tuple.
func (s *Section) Add(key string, scalars ...any) {
	if _, seen := s.fields[key]; !seen {
		s.keys = append(s.keys, key)
	}
	s.fields[key] = append(s.fields[key], Value(scalars))
}

// Has reports whether the section contains at least one occurrence of key.
func (s *Section) Has(key string) bool {
	_, ok := s.fields[key]
	return ok
}

// Keys returns the field names in first-appearance order.
func (s *Section) Keys() []string {
	return s.keys
}

// All returns every occurrence of key in source order, or nil.
func (s *Section) All(key string) []Value {
	return s.fields[key]
}

// Last returns the final occurrence of key. This is the "folding" rule for
// fields the game treats as single-valued: a later line overrides an earlier
// one.
func (s *Section) Last(key string) (Value, bool) {
	vs := s.fields[key]
	if len(vs) == 0 {
		return nil, false
	}
	return vs[len(vs)-1], true
}

// First returns the first occurrence of key.
func (s *Section) First(key string) (Value, bool) {
	vs := s.fields[key]
	if len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// Flat returns the scalars of every occurrence of key concatenated in source
// order, stringified. Used for fields that are ordered sequences across
// occurrences (e.g. news "base" and "rank" lines).
func (s *Section) Flat(key string) []string {
	var out []string
	for _, v := range s.fields[key] {
		out = append(out, v.Strings()...)
	}
	return out
}
