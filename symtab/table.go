// Package symtab holds the externally supplied symbol table that the codec
// consults to turn map keys into small integer references.
//
// Construction of the table is a caller concern; this package only
// specifies how encode and decode consume it — string-to-index lookup on
// the encode side, index-to-string lookup on the decode side. The same
// table must be supplied to both sides for a payload to decode correctly.
package symtab

// Table is an ordered, externally supplied list of strings.
//
// Duplicate strings are permitted but meaningless: Index resolves to the
// first occurrence.
type Table struct {
	symbols []string
	index   map[string]int
}

// New builds a Table from an ordered slice of symbols.
//
// The slice is not copied; callers must not mutate it afterward.
func New(symbols []string) *Table {
	t := &Table{
		symbols: symbols,
		index:   make(map[string]int, len(symbols)),
	}

	for i, s := range symbols {
		if _, exists := t.index[s]; !exists {
			t.index[s] = i
		}
	}

	return t
}

// Index returns the index of s in the table and whether it was found.
func (t *Table) Index(s string) (int, bool) {
	i, ok := t.index[s]
	return i, ok
}

// MustIndex returns the index of s, panicking if s is not present.
//
// Intended for callers that have already validated membership with Contains
// and want a direct accessor without the ok-pattern.
func (t *Table) MustIndex(s string) int {
	i, ok := t.index[s]
	if !ok {
		panic("symtab: symbol not in table: " + s)
	}

	return i
}

// Contains reports whether s is present in the table.
func (t *Table) Contains(s string) bool {
	_, ok := t.index[s]
	return ok
}

// String returns the symbol at index i and whether i is in range.
func (t *Table) String(i int) (string, bool) {
	if i < 0 || i >= len(t.symbols) {
		return "", false
	}

	return t.symbols[i], true
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	return len(t.symbols)
}
