package predicates

import (
	"reflect"
	"strings"
)

// In reports whether needle is a member of container. Strings
// report substring containment, slices and arrays report element
// membership, and maps report key membership, all using loose
// equality. Non-container values report false.
func In(needle, container any) bool {
	if container == nil {
		return false
	}

	if s, ok := container.(string); ok {
		sub, isStr := needle.(string)
		return isStr && strings.Contains(s, sub)
	}

	rv := reflect.ValueOf(container)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if Equal(needle, rv.Index(i).Interface()) {
				return true
			}
		}
	case reflect.Map:
		for _, key := range rv.MapKeys() {
			if Equal(needle, key.Interface()) {
				return true
			}
		}
	}

	return false
}

// ContainsOnly reports whether every element of value is a
// member of allowed. A non-iterable value reports false; an
// empty value trivially passes.
func ContainsOnly(value, allowed any) bool {
	elems, ok := elementsOf(value)
	if !ok {
		return false
	}

	for _, e := range elems {
		if !In(e, allowed) {
			return false
		}
	}

	return true
}

// IsSubsetOf reports whether value is structurally contained in
// comparable: every key or index present in value must match the
// same key or index in comparable, recursing through nested maps
// and slices.
func IsSubsetOf(value, comparable any) bool {
	return matchesStructure(comparable, value)
}

// IsSupersetOf is the mirror test: every key or index present in
// comparable must match in value.
func IsSupersetOf(value, comparable any) bool {
	return matchesStructure(value, comparable)
}

// IsUnique reports whether a value contains no duplicate
// elements under loose equality. A map is checked over its
// values, not its keys; first-seen ordering decides which
// occurrence counts as the original. Non-iterable values report
// false.
func IsUnique(v any) bool {
	elems, ok := uniqueElements(v)
	if !ok {
		return false
	}

	var seen []any
	for _, e := range elems {
		for _, s := range seen {
			if Equal(e, s) {
				return false
			}
		}
		seen = append(seen, e)
	}

	return true
}

// Length returns the element count of a string, slice, array,
// or map. The second return is false for anything unmeasurable.
func Length(v any) (int, bool) {
	if v == nil {
		return 0, false
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array,
		reflect.Map:
		return rv.Len(), true
	}

	return 0, false
}

// matchesStructure reports whether small is contained in big:
// for maps, every key of small exists in big with a matching
// value; for slices and arrays, every index of small matches the
// same index of big; leaves compare loosely.
func matchesStructure(big, small any) bool {
	bv := reflect.ValueOf(big)
	sv := reflect.ValueOf(small)

	if big == nil || small == nil {
		return Equal(big, small)
	}

	switch {
	case bv.Kind() == reflect.Map && sv.Kind() == reflect.Map:
		for _, key := range sv.MapKeys() {
			bval, found := mapLookup(bv, key.Interface())
			if !found {
				return false
			}

			sval := sv.MapIndex(key).Interface()
			if !matchesStructure(bval, sval) {
				return false
			}
		}
		return true

	case isSequence(bv) && isSequence(sv):
		if sv.Len() > bv.Len() {
			return false
		}
		for i := 0; i < sv.Len(); i++ {
			if !matchesStructure(
				bv.Index(i).Interface(),
				sv.Index(i).Interface(),
			) {
				return false
			}
		}
		return true
	}

	return Equal(big, small)
}

// mapLookup finds a map entry whose key is loosely equal to the
// given key.
func mapLookup(mv reflect.Value, key any) (any, bool) {
	for _, k := range mv.MapKeys() {
		if Equal(key, k.Interface()) {
			return mv.MapIndex(k).Interface(), true
		}
	}

	return nil, false
}

// isSequence reports whether a reflect value is a slice or
// array.
func isSequence(rv reflect.Value) bool {
	k := rv.Kind()
	return k == reflect.Slice || k == reflect.Array
}

// elementsOf enumerates a value as a sequence: slices and arrays
// yield their elements, strings yield single-character strings,
// and maps yield their keys.
func elementsOf(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}

	if s, ok := v.(string); ok {
		out := make([]any, 0, len(s))
		for _, r := range s {
			out = append(out, string(r))
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = rv.Index(i).Interface()
		}
		return out, true
	case reflect.Map:
		keys := rv.MapKeys()
		out := make([]any, 0, len(keys))
		for _, k := range keys {
			out = append(out, k.Interface())
		}
		return out, true
	}

	return nil, false
}

// uniqueElements enumerates a value for duplicate detection.
// Unlike elementsOf, maps yield their values.
func uniqueElements(v any) ([]any, bool) {
	if v != nil && reflect.ValueOf(v).Kind() == reflect.Map {
		rv := reflect.ValueOf(v)
		out := make([]any, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			out = append(out, rv.MapIndex(k).Interface())
		}
		return out, true
	}

	return elementsOf(v)
}
