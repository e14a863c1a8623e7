package orderedmap

import (
	"bytes"
	"encoding"
	"encoding/gob"
	"encoding/json"

	"github.com/denismitr/dll"
	"github.com/pkg/errors"
)

// AnyMap and AnyMultiMap are the text keyed, dynamically valued
// instantiations most consumers store inside generic "any" containers.
// They are registered with gob under stable names so that they can
// travel as interface values.
type (
	AnyMap      = OrderedMap[string, any]
	AnyMultiMap = OrderedMultiMap[string, any]
)

func init() {
	gob.RegisterName("orderedmap.AnyMap", &AnyMap{})
	gob.RegisterName("orderedmap.AnyMultiMap", &AnyMultiMap{})
}

var (
	_ encoding.BinaryMarshaler   = (*AnyMap)(nil)
	_ encoding.BinaryUnmarshaler = (*AnyMap)(nil)
	_ json.Marshaler             = (*AnyMap)(nil)
	_ json.Unmarshaler           = (*AnyMap)(nil)
	_ encoding.BinaryMarshaler   = (*AnyMultiMap)(nil)
	_ encoding.BinaryUnmarshaler = (*AnyMultiMap)(nil)
	_ json.Marshaler             = (*AnyMultiMap)(nil)
	_ json.Unmarshaler           = (*AnyMultiMap)(nil)
)

// The wire layout of both container kinds is the ordered key sequence
// followed by a plain mapping. The multimap mapping keeps every value,
// so a round trip restores the container exactly.
type (
	mapPayload[K comparable, V any] struct {
		Keys   []K     `json:"keys"`
		Values map[K]V `json:"values"`
	}

	multiMapPayload[K comparable, V any] struct {
		Keys   []K       `json:"keys"`
		Values map[K][]V `json:"values"`
	}
)

// MarshalBinary encodes the map for a gob stream.
func (om *OrderedMap[K, V]) MarshalBinary() ([]byte, error) {
	payload := mapPayload[K, V]{Keys: om.Keys(), Values: om.ToMap()}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, errors.Wrap(err, "ordered map binary encoding")
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary rebuilds the map by inserting every decoded key, in
// sequence order, with the value the mapping holds for it. Whatever
// the map held before is discarded.
func (om *OrderedMap[K, V]) UnmarshalBinary(data []byte) error {
	var payload mapPayload[K, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&payload); err != nil {
		return errors.Wrap(err, "ordered map binary decoding")
	}

	om.fromPayload(payload)
	return nil
}

// MarshalJSON mirrors the binary layout in JSON form and keeps the key
// order that a plain JSON object would lose.
func (om *OrderedMap[K, V]) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(mapPayload[K, V]{Keys: om.Keys(), Values: om.ToMap()})
	if err != nil {
		return nil, errors.Wrap(err, "ordered map json encoding")
	}
	return b, nil
}

func (om *OrderedMap[K, V]) UnmarshalJSON(data []byte) error {
	var payload mapPayload[K, V]
	if err := json.Unmarshal(data, &payload); err != nil {
		return errors.Wrap(err, "ordered map json decoding")
	}

	om.fromPayload(payload)
	return nil
}

func (om *OrderedMap[K, V]) fromPayload(payload mapPayload[K, V]) {
	om.Clear()
	for _, key := range payload.Keys {
		om.Insert(key, payload.Values[key])
	}
}

// MarshalBinary encodes the multimap for a gob stream.
func (om *OrderedMultiMap[K, V]) MarshalBinary() ([]byte, error) {
	payload := multiMapPayload[K, V]{Keys: om.Keys(), Values: om.ToMap()}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(payload); err != nil {
		return nil, errors.Wrap(err, "ordered multimap binary encoding")
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary restores the key sequence and the value store as
// they were written, including any multiplicity divergence between
// the two. Whatever the multimap held before is discarded.
func (om *OrderedMultiMap[K, V]) UnmarshalBinary(data []byte) error {
	var payload multiMapPayload[K, V]
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&payload); err != nil {
		return errors.Wrap(err, "ordered multimap binary decoding")
	}

	om.fromPayload(payload)
	return nil
}

// MarshalJSON mirrors the binary layout in JSON form.
func (om *OrderedMultiMap[K, V]) MarshalJSON() ([]byte, error) {
	b, err := json.Marshal(multiMapPayload[K, V]{Keys: om.Keys(), Values: om.ToMap()})
	if err != nil {
		return nil, errors.Wrap(err, "ordered multimap json encoding")
	}
	return b, nil
}

func (om *OrderedMultiMap[K, V]) UnmarshalJSON(data []byte) error {
	var payload multiMapPayload[K, V]
	if err := json.Unmarshal(data, &payload); err != nil {
		return errors.Wrap(err, "ordered multimap json decoding")
	}

	om.fromPayload(payload)
	return nil
}

func (om *OrderedMultiMap[K, V]) fromPayload(payload multiMapPayload[K, V]) {
	om.Clear()
	for key, values := range payload.Values {
		om.m[key] = append([]V(nil), values...)
	}
	for _, key := range payload.Keys {
		om.list.PushTail(dll.NewElement(key))
	}
}
