package uidebug

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// Fingerprint hashes the value a reference points to, so that in-place
// mutation of a pointee is observable even though the reference is unchanged.
// Values that are not references hash to 0.
func Fingerprint(v any) uint64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		rv = rv.Elem()
	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return 0
		}
	default:
		return 0
	}

	h := fnv.New64a()
	// Nested pointers are printed as addresses, which bounds the walk.
	fmt.Fprintf(h, "%T:%+v", v, printable(rv))
	return h.Sum64()
}

func printable(rv reflect.Value) any {
	if rv.CanInterface() {
		return rv.Interface()
	}
	return rv.String()
}
