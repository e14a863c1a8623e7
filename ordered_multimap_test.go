package orderedmap_test

import (
	"testing"

	"github.com/denismitr/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMultiMap_Insert(t *testing.T) {
	t.Run("repeated inserts grow sequence and store 1:1", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("foo", 2)
		om.Insert("foo", 3)

		assert.Equal(t, 3, om.Len())
		assert.Equal(t, 3, om.Count("foo"))
		assert.Equal(t, []string{"foo", "foo", "foo"}, om.Keys())
	})

	t.Run("order among different keys follows the sequence", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("bar", 2)
		om.Insert("foo", 3)

		assert.Equal(t, []string{"foo", "bar", "foo"}, om.Keys())
		assert.Equal(t, "foo", om.Key(0))
		assert.Equal(t, "bar", om.Key(1))
		assert.Equal(t, "foo", om.Key(2))
	})

	t.Run("value returns the most recently stored value", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("foo", 2)

		assert.Equal(t, 2, om.Value("foo"))
		assert.Equal(t, 0, om.Value("bar"))
		assert.Equal(t, 99, om.ValueOr("bar", 99))

		v, ok := om.HasGet("foo")
		assert.True(t, ok)
		assert.Equal(t, 2, v)
	})
}

func TestOrderedMultiMap_Prepend(t *testing.T) {
	t.Run("a never seen key goes to the front", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("a", 1)
		om.Prepend("b", 2)

		assert.Equal(t, []string{"b", "a"}, om.Keys())
		assert.Equal(t, 2, om.Value("b"))
	})

	t.Run("a known key keeps the sequence but still grows the store", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("a", 1)
		om.Prepend("a", 9)

		// the documented weak invariant: one sequence occurrence,
		// two stored values
		assert.Equal(t, []string{"a"}, om.Keys())
		assert.Equal(t, 2, om.Count("a"))
		assert.Equal(t, 9, om.Value("a"))
	})
}

func TestOrderedMultiMap_Replace(t *testing.T) {
	t.Run("replace collapses all values down to one", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("foo", 2)
		om.Insert("foo", 3)

		om.Replace("foo", 42)

		assert.Equal(t, 1, om.Count("foo"))
		assert.Equal(t, 42, om.Value("foo"))
		// sequence occurrences accumulated by the inserts stay put
		assert.Equal(t, []string{"foo", "foo", "foo"}, om.Keys())
	})

	t.Run("replace of a new key appends it", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Replace("bar", 2)

		assert.Equal(t, []string{"foo", "bar"}, om.Keys())
		assert.Equal(t, 2, om.Value("bar"))
	})
}

func TestOrderedMultiMap_Remove(t *testing.T) {
	t.Run("remove drops every value and every occurrence", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("bar", 2)
		om.Insert("foo", 3)
		om.Insert("baz", 4)

		removed := om.Remove("foo")

		assert.Equal(t, 2, removed)
		assert.False(t, om.Has("foo"))
		assert.Equal(t, []string{"bar", "baz"}, om.Keys())
		assert.Equal(t, 2, om.Len())
	})

	t.Run("removing a missing key removes nothing", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)

		assert.Equal(t, 0, om.Remove("bar"))
		assert.Equal(t, 1, om.Len())
	})
}

func TestOrderedMultiMap_Find(t *testing.T) {
	t.Run("find lists the values most recent first", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("foo", 2)
		om.Insert("foo", 3)

		assert.Equal(t, []int{3, 2, 1}, om.Find("foo"))
		assert.Nil(t, om.Find("bar"))
	})

	t.Run("the snapshot does not alias the store", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("foo", 2)

		values := om.Find("foo")
		values[0] = 99

		assert.Equal(t, 2, om.Value("foo"))
	})
}

func TestOrderedMultiMap_Last(t *testing.T) {
	t.Run("last follows the tail of the sequence", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("foo", 1)
		om.Insert("bar", 2)
		om.Insert("foo", 3)

		assert.Equal(t, 3, om.Last())
	})

	t.Run("last on an empty multimap returns the zero value", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		assert.Equal(t, 0, om.Last())
	})
}

func TestOrderedMultiMap_Key(t *testing.T) {
	om := orderedmap.NewOrderedMultiMap[string, int]()
	om.Insert("foo", 1)
	om.Insert("bar", 2)

	assert.Equal(t, "foo", om.Key(0))
	assert.Equal(t, "bar", om.Key(1))
	assert.Equal(t, "", om.Key(2))
	assert.Equal(t, "", om.Key(-1))
}

func TestOrderedMultiMap_ContainsCase(t *testing.T) {
	om := orderedmap.NewOrderedMultiMap[string, int]()
	om.Insert("Monday", 2)
	om.Insert("monday", 3)
	om.Insert("Tuesday", 4)

	assert.True(t, orderedmap.ContainsCase[string](om, "Monday", orderedmap.CaseSensitive))
	assert.False(t, orderedmap.ContainsCase[string](om, "MONDAY", orderedmap.CaseSensitive))
	assert.True(t, orderedmap.ContainsCase[string](om, "MONDAY", orderedmap.CaseInsensitive))
	assert.False(t, orderedmap.ContainsCase[string](om, "friday", orderedmap.CaseInsensitive))
}

func TestOrderedMultiMap_Fluent(t *testing.T) {
	om := orderedmap.NewOrderedMultiMap[string, int]().
		With("a", 1).
		With("a", 2).
		Push(orderedmap.Pair[string, int]{Key: "b", Value: 3})

	assert.Equal(t, []string{"a", "a", "b"}, om.Keys())
	assert.Equal(t, 2, om.Count("a"))
	assert.Equal(t, 3, om.Value("b"))
}

func TestOrderedMultiMap_Clear(t *testing.T) {
	om := orderedmap.NewOrderedMultiMap[string, int]()
	om.Insert("foo", 1)
	om.Insert("foo", 2)

	assert.False(t, om.IsEmpty())

	om.Clear()

	assert.True(t, om.IsEmpty())
	assert.Equal(t, 0, om.Len())
	assert.Empty(t, om.Keys())
}

func TestOrderedMultiMap_Clone(t *testing.T) {
	t.Run("clone keeps the weak invariant divergence", func(t *testing.T) {
		om := orderedmap.NewOrderedMultiMap[string, int]()
		om.Insert("a", 1)
		om.Prepend("a", 2)

		clone := om.Clone()

		assert.Equal(t, []string{"a"}, clone.Keys())
		assert.Equal(t, 2, clone.Count("a"))

		clone.Insert("b", 3)
		assert.False(t, om.Has("b"))
	})
}

func TestOrderedMultiMap_ToMap(t *testing.T) {
	om := orderedmap.NewOrderedMultiMap[string, int]()
	om.Insert("foo", 1)
	om.Insert("foo", 2)
	om.Insert("bar", 3)

	m := om.ToMap()
	require.Equal(t, map[string][]int{"foo": {1, 2}, "bar": {3}}, m)

	m["foo"][0] = 99
	assert.Equal(t, []int{2, 1}, om.Find("foo"), "the copy must not alias the store")
}
