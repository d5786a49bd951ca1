package vpic

// Table maps an endpoint's external field spellings to canonical
// lower_snake_case names. Lookups that miss leave the key untouched, so
// applying a table is idempotent and never drops data.
//
// Tables are addressed per response shape rather than globally: the
// same canonical name can come from different external spellings
// depending on the endpoint, and a flat global table would collide.
type Table map[string]string

// canonical returns the canonical name for an external key, or the key
// itself when it is unknown (or already canonical).
func (t Table) canonical(key string) string {
	if c, ok := t[key]; ok {
		return c
	}
	return key
}

// Apply rewrites the keys of a record in place-order: the result keeps
// the source's key order, with each key replaced by its canonical name.
// Values are never altered except to recurse into nested records and
// lists.
func (t Table) Apply(r *Record) *Record {
	out := NewRecord()
	for _, k := range r.Keys() {
		v, _ := r.Get(k)
		out.Set(t.canonical(k), t.applyValue(v))
	}
	return out
}

// ApplyAll rewrites the keys of every record.
func (t Table) ApplyAll(records []*Record) []*Record {
	out := make([]*Record, len(records))
	for i, r := range records {
		out[i] = t.Apply(r)
	}
	return out
}

func (t Table) applyValue(v any) any {
	switch val := v.(type) {
	case *Record:
		return t.Apply(val)
	case []any:
		items := make([]any, len(val))
		for i, item := range val {
			items[i] = t.applyValue(item)
		}
		return items
	default:
		return v
	}
}

// merge builds a table from base entries plus shape-specific overrides.
// Later tables win on key conflicts.
func merge(tables ...Table) Table {
	out := make(Table)
	for _, t := range tables {
		for k, v := range t {
			out[k] = v
		}
	}
	return out
}
