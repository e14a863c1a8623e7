package orderedmap

import (
	"github.com/denismitr/dll"
)

// OrderedMultiMap is an insertion ordered map that keeps several values
// per key. The key sequence carries one entry per Insert, duplicates
// included; the store keeps the values grouped by key, most recent
// last. Prepend and Replace can leave the store holding more or fewer
// values for a key than the sequence has occurrences of it - the
// multiplicity match is a weak invariant, not an enforced one.
type OrderedMultiMap[K comparable, V any] struct {
	m    map[K][]V
	list *dll.DoublyLinkedList[K]
}

func NewOrderedMultiMap[K comparable, V any]() *OrderedMultiMap[K, V] {
	return &OrderedMultiMap[K, V]{
		m:    make(map[K][]V),
		list: dll.New[K](),
	}
}

// Insert adds value under key and appends key to the key sequence even
// when the key is already present. N inserts grow the sequence to
// length N.
func (om *OrderedMultiMap[K, V]) Insert(key K, value V) {
	om.m[key] = append(om.m[key], value)
	om.list.PushTail(dll.NewElement(key))
}

// Append is an alias of Insert.
func (om *OrderedMultiMap[K, V]) Append(key K, value V) {
	om.Insert(key, value)
}

// Prepend adds value under key. The key goes to the front of the key
// sequence only when it has never been seen before; for a known key
// the sequence is left alone while the store still grows, so the
// stored value count can exceed the sequence occurrence count.
func (om *OrderedMultiMap[K, V]) Prepend(key K, value V) {
	_, found := om.m[key]
	om.m[key] = append(om.m[key], value)
	if !found {
		om.list.PushHead(dll.NewElement(key))
	}
}

// Replace drops every value stored under key and keeps the single
// replacement. A new key is appended to the sequence; occurrences
// accumulated by earlier inserts stay in place even though only one
// value remains.
func (om *OrderedMultiMap[K, V]) Replace(key K, value V) {
	if _, found := om.m[key]; !found {
		om.list.PushTail(dll.NewElement(key))
	}

	om.m[key] = []V{value}
}

// Remove deletes every value stored under key together with every
// occurrence of key in the sequence. It returns the number of values
// removed.
func (om *OrderedMultiMap[K, V]) Remove(key K) int {
	values, found := om.m[key]
	if !found {
		return 0
	}

	delete(om.m, key)

	curr := om.list.Head()
	for curr != nil {
		next := curr.Next()
		if curr.Value() == key {
			om.list.Remove(curr)
		}
		curr = next
	}

	return len(values)
}

// Value returns the most recently stored value under key, or the zero
// value when the key is absent.
func (om *OrderedMultiMap[K, V]) Value(key K) V {
	values := om.m[key]
	if len(values) == 0 {
		return getZero[V]()
	}

	return values[len(values)-1]
}

// ValueOr returns the most recently stored value under key, or
// defaultValue when the key is absent.
func (om *OrderedMultiMap[K, V]) ValueOr(key K, defaultValue V) V {
	values := om.m[key]
	if len(values) == 0 {
		return defaultValue
	}

	return values[len(values)-1]
}

func (om *OrderedMultiMap[K, V]) HasGet(key K) (V, bool) {
	values := om.m[key]
	if len(values) == 0 {
		return getZero[V](), false
	}

	return values[len(values)-1], true
}

// Find returns a snapshot of the values stored under key, most recent
// first. The order among a key's values is a property of the store;
// the key sequence plays no part in it.
func (om *OrderedMultiMap[K, V]) Find(key K) []V {
	values := om.m[key]
	if len(values) == 0 {
		return nil
	}

	result := make([]V, len(values))
	for i, v := range values {
		result[len(values)-1-i] = v
	}
	return result
}

// Last returns the value most recently stored under the key at the
// tail of the sequence, or the zero value on an empty container.
func (om *OrderedMultiMap[K, V]) Last() V {
	el := om.list.Tail()
	if el == nil {
		return getZero[V]()
	}

	return om.Value(el.Value())
}

func (om *OrderedMultiMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

// Count reports how many values are stored under key.
func (om *OrderedMultiMap[K, V]) Count(key K) int {
	return len(om.m[key])
}

// Len returns the total number of stored values across all keys.
func (om *OrderedMultiMap[K, V]) Len() int {
	total := 0
	for _, values := range om.m {
		total += len(values)
	}
	return total
}

func (om *OrderedMultiMap[K, V]) IsEmpty() bool {
	return len(om.m) == 0
}

// Key returns the key at the given sequence position, or the zero key
// when the index is invalid.
func (om *OrderedMultiMap[K, V]) Key(index int) K {
	if index < 0 {
		return getZero[K]()
	}

	curr := om.list.Head()
	for i := 0; curr != nil && i < index; i++ {
		curr = curr.Next()
	}

	if curr == nil {
		return getZero[K]()
	}

	return curr.Value()
}

// Keys returns a copy of the key sequence, one entry per Insert,
// duplicates included.
func (om *OrderedMultiMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		keys = append(keys, curr.Value())
	}
	return keys
}

// Clear empties both the key sequence and the value store.
func (om *OrderedMultiMap[K, V]) Clear() {
	om.m = make(map[K][]V)
	om.list = dll.New[K]()
}

// With inserts and returns the same map, so that constant tables can be
// built with chained calls.
func (om *OrderedMultiMap[K, V]) With(key K, value V) *OrderedMultiMap[K, V] {
	om.Insert(key, value)
	return om
}

// Push appends the pair and returns the same map.
func (om *OrderedMultiMap[K, V]) Push(p Pair[K, V]) *OrderedMultiMap[K, V] {
	om.Insert(p.Key, p.Value)
	return om
}

// ToMap copies the store into a plain map of value slices, dropping
// the key order.
func (om *OrderedMultiMap[K, V]) ToMap() map[K][]V {
	result := make(map[K][]V, len(om.m))
	for key, values := range om.m {
		result[key] = append([]V(nil), values...)
	}
	return result
}

// Clone copies the store and the key sequence exactly as they are,
// including any multiplicity divergence between the two.
func (om *OrderedMultiMap[K, V]) Clone() *OrderedMultiMap[K, V] {
	result := NewOrderedMultiMap[K, V]()
	for key, values := range om.m {
		result.m[key] = append([]V(nil), values...)
	}
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		result.list.PushTail(dll.NewElement(curr.Value()))
	}
	return result
}
