package orderedmap

import "strings"

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// ValueKey is a value-first pair. Callers building option lists want
// the display value leading and the key carried along as the payload.
type ValueKey[K comparable, V any] struct {
	Value V
	Key   K
}

type CaseSensitivity uint8

const (
	CaseSensitive CaseSensitivity = iota
	CaseInsensitive
)

// KeyLister is satisfied by both container kinds.
type KeyLister[K comparable] interface {
	Keys() []K
}

// ContainsCase reports whether a container with text-like keys holds key,
// compared case sensitively or insensitively against the key sequence.
func ContainsCase[K ~string](c KeyLister[K], key K, cs CaseSensitivity) bool {
	for _, k := range c.Keys() {
		if cs == CaseInsensitive {
			if strings.EqualFold(string(k), string(key)) {
				return true
			}
			continue
		}

		if k == key {
			return true
		}
	}

	return false
}

func getZero[T any]() T {
	var result T
	return result
}
