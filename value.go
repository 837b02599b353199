package nbt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is one node of an NBT tree: a scalar, a string, a fixed-element
// array, a list, or a compound. Concrete types are small named Go types so
// values read naturally at call sites (nbt.Int(5), nbt.String("x")).
type Value interface {
	// Tag returns the wire tag identifying this value's type.
	Tag() Tag

	pretty(sb *strings.Builder, indent string)
}

type (
	Byte   int8
	Short  int16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	String string

	ByteArray []int8
	IntArray  []int32
	LongArray []int64

	// List holds values that must all share one tag. Homogeneity is
	// enforced when the list is written.
	List []Value
)

func (Byte) Tag() Tag      { return TagByte }
func (Short) Tag() Tag     { return TagShort }
func (Int) Tag() Tag       { return TagInt }
func (Long) Tag() Tag      { return TagLong }
func (Float) Tag() Tag     { return TagFloat }
func (Double) Tag() Tag    { return TagDouble }
func (String) Tag() Tag    { return TagString }
func (ByteArray) Tag() Tag { return TagByteArray }
func (IntArray) Tag() Tag  { return TagIntArray }
func (LongArray) Tag() Tag { return TagLongArray }
func (List) Tag() Tag      { return TagList }

// Compound is an ordered set of named values. Iteration and encoding follow
// insertion order so that encode/decode round trips are byte-stable.
type Compound struct {
	keys    []string
	entries map[string]Value
}

func (*Compound) Tag() Tag { return TagCompound }

// Get returns the value stored under name, if any.
func (c *Compound) Get(name string) (Value, bool) {
	v, ok := c.entries[name]
	return v, ok
}

// Insert stores v under name, replacing any previous value while keeping its
// original position.
func (c *Compound) Insert(name string, v Value) {
	if c.entries == nil {
		c.entries = make(map[string]Value)
	}
	if _, ok := c.entries[name]; !ok {
		c.keys = append(c.keys, name)
	}
	c.entries[name] = v
}

// Len returns the number of entries.
func (c *Compound) Len() int { return len(c.keys) }

// Keys returns the entry names in insertion order. The returned slice is
// shared; callers must not modify it.
func (c *Compound) Keys() []string { return c.keys }

// WriteValue writes the bare payload of v: no tag byte, no name. The caller
// owns the surrounding header (see WriteNamedValue).
func WriteValue(w io.Writer, v Value) error {
	switch v := v.(type) {
	case Byte:
		return WriteBareByte(w, int8(v))
	case Short:
		return WriteBareShort(w, int16(v))
	case Int:
		return WriteBareInt(w, int32(v))
	case Long:
		return WriteBareLong(w, int64(v))
	case Float:
		return WriteBareFloat(w, float32(v))
	case Double:
		return WriteBareDouble(w, float64(v))
	case String:
		return WriteBareString(w, string(v))
	case ByteArray:
		return WriteBareByteArray(w, v)
	case IntArray:
		return WriteBareIntArray(w, v)
	case LongArray:
		return WriteBareLongArray(w, v)
	case List:
		return writeList(w, v)
	case *Compound:
		return writeCompound(w, v)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidTag, v)
	}
}

// WriteNamedValue writes the full header+payload form of v: its tag byte,
// the name as a bare string, then the bare payload.
func WriteNamedValue(w io.Writer, name string, v Value) error {
	if err := writeBytes(w, []byte{byte(v.Tag())}); err != nil {
		return err
	}
	if err := WriteBareString(w, name); err != nil {
		return err
	}
	return WriteValue(w, v)
}

// ReadValue reads the bare payload of a value whose tag the caller has
// already consumed, typically via ReadHeader.
func ReadValue(r io.Reader, t Tag) (Value, error) {
	switch t {
	case TagByte:
		v, err := ReadBareByte(r)
		return Byte(v), err
	case TagShort:
		v, err := ReadBareShort(r)
		return Short(v), err
	case TagInt:
		v, err := ReadBareInt(r)
		return Int(v), err
	case TagLong:
		v, err := ReadBareLong(r)
		return Long(v), err
	case TagFloat:
		v, err := ReadBareFloat(r)
		return Float(v), err
	case TagDouble:
		v, err := ReadBareDouble(r)
		return Double(v), err
	case TagString:
		v, err := ReadBareString(r)
		return String(v), err
	case TagByteArray:
		v, err := ReadBareByteArray(r)
		return ByteArray(v), err
	case TagIntArray:
		v, err := ReadBareIntArray(r)
		return IntArray(v), err
	case TagLongArray:
		v, err := ReadBareLongArray(r)
		return LongArray(v), err
	case TagList:
		return readList(r)
	case TagCompound:
		return readCompound(r)
	default:
		return nil, fmt.Errorf("%w: 0x%02x", ErrInvalidTag, byte(t))
	}
}

// ReadNamedValue reads one header and, unless the header is the container
// terminator, the payload that follows it. A terminator yields ("", nil, nil).
func ReadNamedValue(r io.Reader) (string, Value, error) {
	tag, name, err := ReadHeader(r)
	if err != nil {
		return "", nil, err
	}
	if tag == TagEnd {
		return "", nil, nil
	}
	v, err := ReadValue(r, tag)
	if err != nil {
		return name, nil, err
	}
	return name, v, nil
}

// Lists are written as: element tag byte, i32 count, then bare payloads. An
// empty list carries TagEnd as its element tag.
func writeList(w io.Writer, l List) error {
	elem := TagEnd
	if len(l) > 0 {
		elem = l[0].Tag()
	}
	for _, v := range l {
		if v.Tag() != elem {
			return fmt.Errorf("%w: %v and %v", ErrHeterogeneousList, elem, v.Tag())
		}
	}
	if err := writeBytes(w, []byte{byte(elem)}); err != nil {
		return err
	}
	if err := WriteBareInt(w, int32(len(l))); err != nil {
		return err
	}
	for _, v := range l {
		if err := WriteValue(w, v); err != nil {
			return err
		}
	}
	return nil
}

func readList(r io.Reader) (List, error) {
	var b [1]byte
	if err := readBytes(r, b[:]); err != nil {
		return nil, err
	}
	elem := Tag(b[0])
	// Value headers are 16 bytes; bound the prealloc the same way the
	// array readers do.
	n, capHint, err := arrayLen(r, 16)
	if err != nil {
		return nil, err
	}
	if n > 0 && (elem == TagEnd || !elem.Valid()) {
		return nil, fmt.Errorf("%w: list of 0x%02x", ErrInvalidTag, byte(elem))
	}
	l := make(List, 0, capHint)
	for i := 0; i < n; i++ {
		v, err := ReadValue(r, elem)
		if err != nil {
			return nil, err
		}
		l = append(l, v)
	}
	return l, nil
}

func writeCompound(w io.Writer, c *Compound) error {
	for _, name := range c.keys {
		if err := WriteNamedValue(w, name, c.entries[name]); err != nil {
			return err
		}
	}
	return WriteEndTag(w)
}

func readCompound(r io.Reader) (*Compound, error) {
	c := &Compound{}
	for {
		tag, name, err := ReadHeader(r)
		if err != nil {
			return nil, err
		}
		if tag == TagEnd {
			return c, nil
		}
		v, err := ReadValue(r, tag)
		if err != nil {
			return nil, err
		}
		c.Insert(name, v)
	}
}

func (v Byte) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Short) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Int) String() string    { return strconv.FormatInt(int64(v), 10) }
func (v Long) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string  { return strconv.FormatFloat(float64(v), 'g', -1, 32) }
func (v Double) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
func (v String) String() string { return strconv.Quote(string(v)) }

func (v ByteArray) String() string { return fmt.Sprintf("%d bytes", len(v)) }
func (v IntArray) String() string  { return fmt.Sprintf("%d ints", len(v)) }
func (v LongArray) String() string { return fmt.Sprintf("%d longs", len(v)) }

func (v Byte) pretty(sb *strings.Builder, _ string)      { sb.WriteString(v.String()) }
func (v Short) pretty(sb *strings.Builder, _ string)     { sb.WriteString(v.String()) }
func (v Int) pretty(sb *strings.Builder, _ string)       { sb.WriteString(v.String()) }
func (v Long) pretty(sb *strings.Builder, _ string)      { sb.WriteString(v.String()) }
func (v Float) pretty(sb *strings.Builder, _ string)     { sb.WriteString(v.String()) }
func (v Double) pretty(sb *strings.Builder, _ string)    { sb.WriteString(v.String()) }
func (v String) pretty(sb *strings.Builder, _ string)    { sb.WriteString(v.String()) }
func (v ByteArray) pretty(sb *strings.Builder, _ string) { sb.WriteString(v.String()) }
func (v IntArray) pretty(sb *strings.Builder, _ string)  { sb.WriteString(v.String()) }
func (v LongArray) pretty(sb *strings.Builder, _ string) { sb.WriteString(v.String()) }

func (l List) String() string {
	var sb strings.Builder
	l.pretty(&sb, "")
	return sb.String()
}

func (l List) pretty(sb *strings.Builder, indent string) {
	elem := TagEnd
	if len(l) > 0 {
		elem = l[0].Tag()
	}
	fmt.Fprintf(sb, "%d entries of type %v\n%s{\n", len(l), elem, indent)
	inner := indent + "  "
	for _, v := range l {
		fmt.Fprintf(sb, "%s%v: ", inner, v.Tag())
		v.pretty(sb, inner)
		sb.WriteByte('\n')
	}
	sb.WriteString(indent)
	sb.WriteByte('}')
}

func (c *Compound) String() string {
	var sb strings.Builder
	c.pretty(&sb, "")
	return sb.String()
}

func (c *Compound) pretty(sb *strings.Builder, indent string) {
	fmt.Fprintf(sb, "%d entries\n%s{\n", len(c.keys), indent)
	inner := indent + "  "
	for _, name := range c.keys {
		v := c.entries[name]
		fmt.Fprintf(sb, "%s%v(%q): ", inner, v.Tag(), name)
		v.pretty(sb, inner)
		sb.WriteByte('\n')
	}
	sb.WriteString(indent)
	sb.WriteByte('}')
}
