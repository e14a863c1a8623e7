package orderedmap

import (
	"context"

	"github.com/denismitr/dll"
	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// ErrIndexOutOfRange is returned by the index validated accessors
// At, ReplaceAt and RemoveAt.
var ErrIndexOutOfRange = errors.New("index out of range")

type (
	// OrderedMap is a unique key map that iterates in insertion order.
	// The key sequence is kept separately from the value store, so
	// positional access never depends on map iteration order. The set of
	// keys in the sequence always equals the set of keys in the store.
	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[Pair[K, V]]
		list *dll.DoublyLinkedList[Pair[K, V]]
	}

	ForEachFn[K comparable, V any]  func(key K, value V, order int)
	LessPairFn[K comparable, V any] func(a Pair[K, V], b Pair[K, V]) (less bool)
)

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[Pair[K, V]]),
		list: dll.New[Pair[K, V]](),
	}
}

// Insert stores value under key. A new key is appended to the key
// sequence; an existing key keeps its position and only its value
// is replaced.
func (om *OrderedMap[K, V]) Insert(key K, value V) {
	existingEl, found := om.m[key]
	if !found {
		p := Pair[K, V]{Key: key, Value: value}
		newEl := dll.NewElement(p)
		om.m[key] = newEl
		om.list.PushTail(newEl)
		return
	}

	existingEl.ReplaceValue(Pair[K, V]{Key: key, Value: value})
}

// Append is an alias of Insert.
func (om *OrderedMap[K, V]) Append(key K, value V) {
	om.Insert(key, value)
}

// Prepend stores value under key. A new key goes to the front of the
// key sequence; an existing key keeps its current position, only its
// value is replaced. It deliberately does not move a known key.
func (om *OrderedMap[K, V]) Prepend(key K, value V) {
	existingEl, found := om.m[key]
	if !found {
		p := Pair[K, V]{Key: key, Value: value}
		newEl := dll.NewElement(p)
		om.m[key] = newEl
		om.list.PushHead(newEl)
		return
	}

	existingEl.ReplaceValue(Pair[K, V]{Key: key, Value: value})
}

// GetOrInsert returns the value stored under key. A missing key is
// appended to the key sequence with the zero value, which is then
// returned.
func (om *OrderedMap[K, V]) GetOrInsert(key K) V {
	if el, found := om.m[key]; found {
		return el.Value().Value
	}

	om.Insert(key, getZero[V]())
	return getZero[V]()
}

// At returns the value whose key occupies the given sequence position.
func (om *OrderedMap[K, V]) At(index int) (V, error) {
	el, err := om.elementAt(index)
	if err != nil {
		return getZero[V](), err
	}

	return el.Value().Value, nil
}

// ValueAt is the safe counterpart of At: an invalid index yields the
// zero value instead of an error.
func (om *OrderedMap[K, V]) ValueAt(index int) V {
	el, err := om.elementAt(index)
	if err != nil {
		return getZero[V]()
	}

	return el.Value().Value
}

// ReplaceAt overwrites the value at the given sequence position and
// returns the key occupying it. The key keeps its position.
func (om *OrderedMap[K, V]) ReplaceAt(index int, value V) (K, error) {
	el, err := om.elementAt(index)
	if err != nil {
		return getZero[K](), err
	}

	key := el.Value().Key
	el.ReplaceValue(Pair[K, V]{Key: key, Value: value})
	return key, nil
}

// Value returns the value stored under key, or the zero value when the
// key is absent. It never mutates the container.
func (om *OrderedMap[K, V]) Value(key K) V {
	el, found := om.m[key]
	if !found {
		return getZero[V]()
	}

	return el.Value().Value
}

// ValueOr returns the value stored under key, or defaultValue when the
// key is absent.
func (om *OrderedMap[K, V]) ValueOr(key K, defaultValue V) V {
	el, found := om.m[key]
	if !found {
		return defaultValue
	}

	return el.Value().Value
}

func (om *OrderedMap[K, V]) HasGet(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return getZero[V](), false
	}

	return el.Value().Value, true
}

func (om *OrderedMap[K, V]) Has(key K) bool {
	_, found := om.m[key]
	return found
}

// Remove deletes key from both the sequence and the store. It returns
// the position the key occupied, or -1 when the key was absent.
func (om *OrderedMap[K, V]) Remove(key K) int {
	el, found := om.m[key]
	if !found {
		return -1
	}

	order := 0
	for curr := om.list.Head(); curr != nil && curr != el; curr = curr.Next() {
		order++
	}

	delete(om.m, key)
	om.list.Remove(el)
	return order
}

// RemoveAt deletes the key at the given sequence position from both
// the sequence and the store and returns it.
func (om *OrderedMap[K, V]) RemoveAt(index int) (K, error) {
	el, err := om.elementAt(index)
	if err != nil {
		return getZero[K](), err
	}

	key := el.Value().Key
	delete(om.m, key)
	om.list.Remove(el)
	return key, nil
}

// RemoveLast deletes the most recently appended key and returns it.
// On an empty container it reports false and removes nothing.
func (om *OrderedMap[K, V]) RemoveLast() (K, bool) {
	el := om.list.Tail()
	if el == nil {
		return getZero[K](), false
	}

	key := el.Value().Key
	delete(om.m, key)
	om.list.Remove(el)
	return key, true
}

// Last returns the pair at the tail of the key sequence, or a zero
// pair when the container is empty.
func (om *OrderedMap[K, V]) Last() Pair[K, V] {
	el := om.list.Tail()
	if el == nil {
		return Pair[K, V]{}
	}

	return el.Value()
}

// Keys returns a copy of the key sequence.
func (om *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(om.m))
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		keys = append(keys, curr.Value().Key)
	}
	return keys
}

// Values returns the values in key sequence order.
func (om *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(om.m))
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		values = append(values, curr.Value().Value)
	}
	return values
}

// ValueKeyList returns the (value, key) projection of the container in
// sequence order. With addEmptyPair an extra zero pair is included as a
// "no selection" placeholder, leading or trailing depending on
// emptyPairFirst.
func (om *OrderedMap[K, V]) ValueKeyList(addEmptyPair, emptyPairFirst bool) []ValueKey[K, V] {
	result := make([]ValueKey[K, V], 0, len(om.m)+1)
	if addEmptyPair && emptyPairFirst {
		result = append(result, ValueKey[K, V]{})
	}

	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		p := curr.Value()
		result = append(result, ValueKey[K, V]{Value: p.Value, Key: p.Key})
	}

	if addEmptyPair && !emptyPairFirst {
		result = append(result, ValueKey[K, V]{})
	}

	return result
}

// KeyOrder returns the sequence position of key, or -1 when the key
// is absent.
func (om *OrderedMap[K, V]) KeyOrder(key K) int {
	el, found := om.m[key]
	if !found {
		return -1
	}

	order := 0
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		if curr == el {
			return order
		}
		order++
	}

	return -1
}

// Key returns the key at the given sequence position, or the zero key
// when the index is invalid.
func (om *OrderedMap[K, V]) Key(index int) K {
	el, err := om.elementAt(index)
	if err != nil {
		return getZero[K]()
	}

	return el.Value().Key
}

// Count reports how many values are stored under key: 0 or 1.
func (om *OrderedMap[K, V]) Count(key K) int {
	if _, found := om.m[key]; found {
		return 1
	}
	return 0
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

func (om *OrderedMap[K, V]) IsEmpty() bool {
	return len(om.m) == 0
}

// Clear empties both the key sequence and the value store.
func (om *OrderedMap[K, V]) Clear() {
	om.m = make(map[K]*dll.Element[Pair[K, V]])
	om.list = dll.New[Pair[K, V]]()
}

// With inserts and returns the same map, so that constant tables can be
// built with chained calls.
func (om *OrderedMap[K, V]) With(key K, value V) *OrderedMap[K, V] {
	om.Insert(key, value)
	return om
}

// Push appends the pair and returns the same map.
func (om *OrderedMap[K, V]) Push(p Pair[K, V]) *OrderedMap[K, V] {
	om.Insert(p.Key, p.Value)
	return om
}

// PushFront prepends the pair and returns the same map.
func (om *OrderedMap[K, V]) PushFront(p Pair[K, V]) *OrderedMap[K, V] {
	om.Prepend(p.Key, p.Value)
	return om
}

// ToMap copies the container into a plain map, dropping the key order.
func (om *OrderedMap[K, V]) ToMap() map[K]V {
	result := make(map[K]V, len(om.m))
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		p := curr.Value()
		result[p.Key] = p.Value
	}
	return result
}

func (om *OrderedMap[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		f(curr.Value().Key, curr.Value().Value, order)
		order++
	}
}

// Pairs streams the pairs in sequence order until the container is
// exhausted or ctx is cancelled. The snapshot is taken lazily, so the
// container must not be mutated while the channel is being drained.
func (om *OrderedMap[K, V]) Pairs(ctx context.Context) <-chan Pair[K, V] {
	resultCh := make(chan Pair[K, V])

	go func() {
		defer close(resultCh)

		curr := om.list.Head()
		for curr != nil {
			if ctx.Err() != nil {
				return
			}

			resultCh <- curr.Value()
			curr = curr.Next()
		}
	}()

	return resultCh
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := NewOrderedMap[K, V]()
	for curr := om.list.Head(); curr != nil; curr = curr.Next() {
		p := curr.Value()
		result.Insert(p.Key, p.Value)
	}
	return result
}

// SortBy - sorts a copy of the map by the given pair comparison and
// returns it; the receiver is left untouched.
func (om *OrderedMap[K, V]) SortBy(lessFn LessPairFn[K, V]) *OrderedMap[K, V] {
	clone := om.Clone()
	clone.list.Sort(dll.LessFn[Pair[K, V]](lessFn))
	return clone
}

// Sorted returns a copy of the map whose key sequence follows the
// natural key order, the way a plain sorted map would iterate.
func Sorted[K constraints.Ordered, V any](om *OrderedMap[K, V]) *OrderedMap[K, V] {
	return om.SortBy(func(a, b Pair[K, V]) bool {
		return a.Key < b.Key
	})
}

func (om *OrderedMap[K, V]) elementAt(index int) (*dll.Element[Pair[K, V]], error) {
	if index < 0 || index >= len(om.m) {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d, size %d", index, len(om.m))
	}

	curr := om.list.Head()
	for i := 0; i < index; i++ {
		curr = curr.Next()
	}

	return curr, nil
}
