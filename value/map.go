package value

// Map is a symbol-keyed mapping. Every key must resolve against the symbol
// table the codec is configured with; the restriction is enforced by
// encode, not by this type.
//
// Entries preserve insertion order so the encoder can reproduce the caller's
// iteration order on the wire.
type Map struct {
	keys   []string
	values []Value
	index  map[string]int
}

// NewMap returns an empty Map ready for Set calls.
func NewMap() *Map {
	return &Map{index: make(map[string]int)}
}

func (*Map) Kind() Kind { return KindMap }

// Set assigns value to key, preserving the position of the first insertion
// of key if it already exists.
func (m *Map) Set(key string, value Value) {
	if i, ok := m.index[key]; ok {
		m.values[i] = value
		return
	}

	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns the value for key and whether it was present.
func (m *Map) Get(key string) (Value, bool) {
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}

	return m.values[i], true
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Range calls fn for each entry in insertion order. It stops early if fn
// returns false.
func (m *Map) Range(fn func(key string, value Value) bool) {
	for i, k := range m.keys {
		if !fn(k, m.values[i]) {
			return
		}
	}
}

// Keys returns the entry keys in insertion order.
func (m *Map) Keys() []string {
	return m.keys
}
