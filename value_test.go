package nbt

import (
	"bytes"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamedValueRoundTrip(t *testing.T) {
	values := map[string]Value{
		"byte":   Byte(-7),
		"short":  Short(1234),
		"int":    Int(-1),
		"long":   Long(1 << 40),
		"float":  Float(3.5),
		"double": Double(-0.25),
		"string": String("héllo"),
		"bytes":  ByteArray{1, -1, 127},
		"ints":   IntArray{0, -2, 1 << 20},
		"longs":  LongArray{-1, 1 << 50},
		"list":   List{String("a"), String("b")},
	}
	for name, v := range values {
		var buf bytes.Buffer
		require.NoError(t, WriteNamedValue(&buf, name, v))
		gotName, got, err := ReadNamedValue(&buf)
		require.NoError(t, err, name)
		assert.Equal(t, name, gotName)
		assert.Equal(t, v, got)
		assert.Zero(t, buf.Len(), "trailing bytes after %s", name)
	}
}

func TestNestedCompoundRoundTrip(t *testing.T) {
	inner := &Compound{}
	inner.Insert("depth", Int(2))
	outer := &Compound{}
	outer.Insert("name", String("outer"))
	outer.Insert("inner", inner)
	outer.Insert("tail", Byte(1))

	var buf bytes.Buffer
	require.NoError(t, WriteNamedValue(&buf, "root", outer))
	name, got, err := ReadNamedValue(&buf)
	require.NoError(t, err)
	assert.Equal(t, "root", name)

	c, ok := got.(*Compound)
	require.True(t, ok)
	assert.Equal(t, []string{"name", "inner", "tail"}, c.Keys())
	v, ok := c.Get("inner")
	require.True(t, ok)
	in, ok := v.(*Compound)
	require.True(t, ok)
	depth, ok := in.Get("depth")
	require.True(t, ok)
	assert.Equal(t, Int(2), depth)
}

func TestListOfCompounds(t *testing.T) {
	mk := func(n int32) Value {
		c := &Compound{}
		c.Insert("n", Int(n))
		return c
	}
	l := List{mk(1), mk(2), mk(3)}
	var buf bytes.Buffer
	require.NoError(t, WriteValue(&buf, l))
	got, err := ReadValue(&buf, TagList)
	require.NoError(t, err)
	assert.Equal(t, Value(l), got)
}

func TestEmptyListRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteValue(&buf, List{}))
	// Element tag TagEnd, count 0.
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00, 0x00}, buf.Bytes())
	got, err := ReadValue(&buf, TagList)
	require.NoError(t, err)
	assert.Empty(t, got.(List))
}

func TestHeterogeneousListRejected(t *testing.T) {
	var buf bytes.Buffer
	err := WriteValue(&buf, List{Int(1), String("two")})
	require.ErrorIs(t, err, ErrHeterogeneousList)
}

func TestListOfEndTagRejected(t *testing.T) {
	// Nonempty list claiming TagEnd elements.
	data := []byte{0x00, 0x02, 0x00, 0x00, 0x00}
	_, err := ReadValue(bytes.NewReader(data), TagList)
	require.ErrorIs(t, err, ErrInvalidTag)
}

func TestReadValueInvalidTag(t *testing.T) {
	_, err := ReadValue(bytes.NewReader([]byte{0x01}), Tag(0x7f))
	require.ErrorIs(t, err, ErrInvalidTag)
}

func TestReadNamedValueTerminator(t *testing.T) {
	name, v, err := ReadNamedValue(bytes.NewReader([]byte{0x00}))
	require.NoError(t, err)
	assert.Empty(t, name)
	assert.Nil(t, v)
}

func TestCompoundInsertReplace(t *testing.T) {
	c := &Compound{}
	c.Insert("a", Int(1))
	c.Insert("b", Int(2))
	c.Insert("a", Int(3))
	assert.Equal(t, []string{"a", "b"}, c.Keys())
	v, _ := c.Get("a")
	assert.Equal(t, Int(3), v)
	assert.Equal(t, 2, c.Len())
}

func TestScalarValueRoundTripQuick(t *testing.T) {
	condition := func(b int8, s int16, i int32, l int64) bool {
		c := &Compound{}
		c.Insert("b", Byte(b))
		c.Insert("s", Short(s))
		c.Insert("i", Int(i))
		c.Insert("l", Long(l))
		var buf bytes.Buffer
		require.NoError(t, WriteValue(&buf, c))
		got, err := ReadValue(&buf, TagCompound)
		require.NoError(t, err)
		return assert.ObjectsAreEqual(Value(c), got)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func TestPrettyPrint(t *testing.T) {
	c := &Compound{}
	c.Insert("count", Int(5))
	c.Insert("names", List{String("a"), String("b")})
	out := c.String()
	assert.Contains(t, out, `TAG_Int("count"): 5`)
	assert.Contains(t, out, `TAG_List("names"): 2 entries of type TAG_String`)
	assert.Contains(t, out, `TAG_String: "a"`)
}
