package row

// Pick returns a new Row holding exactly keys, in the given order.
// A key the row does not carry is read as Undefined.
func Pick(r Row, keys []string) Row {
	out := empty(len(keys))
	for _, k := range keys {
		out.set(k, r.Value(k))
	}
	return out
}

// Omit returns a new Row holding allKeys minus exclude, in allKeys order.
// allKeys is supplied by the caller, normally the owning DataFrame's columns,
// so fields the row carries beyond allKeys are dropped and keys it lacks are
// read as Undefined.
func Omit(r Row, allKeys []string, exclude []string) Row {
	skip := make(map[string]bool, len(exclude))
	for _, k := range exclude {
		skip[k] = true
	}

	out := empty(len(allKeys))
	for _, k := range allKeys {
		if !skip[k] {
			out.set(k, r.Value(k))
		}
	}
	return out
}
