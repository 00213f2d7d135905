package kinderr

import "sort"

// Details is an optional bag of structured key/value context attached to an
// error. A nil Details means "no details".
//
// Key order is semantically irrelevant but serialization is deterministic:
// encoding/json marshals map keys in sorted order, and Keys returns them
// sorted for callers that iterate at a boundary.
type Details map[string]any

// Clone returns a shallow copy of the details. Cloning a nil Details
// returns nil.
func (d Details) Clone() Details {
	if d == nil {
		return nil
	}
	out := make(Details, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// With returns a copy of the details with the given key set.
// Safe to call on a nil Details.
func (d Details) With(key string, value any) Details {
	out := d.Clone()
	if out == nil {
		out = make(Details, 1)
	}
	out[key] = value
	return out
}

// Keys returns the detail keys in sorted order.
func (d Details) Keys() []string {
	if len(d) == 0 {
		return nil
	}
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
