package document

// Merge deep-merges fragment into dst and returns the merged document.
//
// When both sides are mappings, dst is updated in place: keys only in dst are
// kept, keys in both are merged recursively and keys only in fragment are
// inserted. In every other case (scalars, sequences, mismatched kinds) the
// fragment value replaces dst, so callers must use the returned value.
//
// Values taken from fragment are deep-copied; dst never shares structure
// with fragment after the call.
func Merge(dst, fragment any) any {
	src, ok := fragment.(map[string]any)
	if !ok {
		return Clone(fragment)
	}
	target, ok := dst.(map[string]any)
	if !ok {
		return Clone(fragment)
	}

	for key, value := range src {
		if existing, found := target[key]; found {
			target[key] = Merge(existing, value)
			continue
		}
		target[key] = Clone(value)
	}
	return target
}
