package protocol

// Pair is one key/value entry. HasValue is false when the source row carried
// only a key column.
type Pair struct {
	Key      string
	Value    string
	HasValue bool
}

// Pairs is an ordered key/value collection. Keys are unique when built
// through Set; order is kept so serialized requests are deterministic.
type Pairs []Pair

// Set replaces the value of an existing key or appends a new pair.
func (p *Pairs) Set(key, value string) {
	for i := range *p {
		if (*p)[i].Key == key {
			(*p)[i].Value = value
			(*p)[i].HasValue = true
			return
		}
	}
	*p = append(*p, Pair{Key: key, Value: value, HasValue: true})
}

// Get returns the value stored under key. ok is false when the key is missing
// or was present without a value.
func (p Pairs) Get(key string) (value string, ok bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, pair.HasValue
		}
	}
	return "", false
}

// Has reports whether key is present, with or without a value.
func (p Pairs) Has(key string) bool {
	for _, pair := range p {
		if pair.Key == key {
			return true
		}
	}
	return false
}

// Map flattens the pairs into a map. Pairs without a value map to "".
func (p Pairs) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, pair := range p {
		m[pair.Key] = pair.Value
	}
	return m
}

// TableToPairs reads column 0 as key and column 1 as value for every row.
// Empty rows are skipped.
func TableToPairs(rows Table) Pairs {
	pairs := make(Pairs, 0, len(rows))

	for _, row := range rows {
		switch len(row) {
		case 0:
			continue
		case 1:
			pairs = append(pairs, Pair{Key: row[0]})
		default:
			pairs = append(pairs, Pair{Key: row[0], Value: row[1], HasValue: true})
		}
	}

	return pairs
}

// PairsToTable emits one row per pair in order. A pair without a value becomes
// a single-column row.
func PairsToTable(pairs Pairs) Table {
	rows := make(Table, 0, len(pairs))

	for _, pair := range pairs {
		if !pair.HasValue {
			rows = append(rows, []string{pair.Key})
			continue
		}
		rows = append(rows, []string{pair.Key, pair.Value})
	}

	return rows
}
