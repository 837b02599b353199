package nbt

import "fmt"

// Tag identifies the type of the value that follows it in a container.
// Tag values are wire constants; they match the NBT format byte for byte.
type Tag byte

const (
	TagEnd       Tag = 0x00
	TagByte      Tag = 0x01
	TagShort     Tag = 0x02
	TagInt       Tag = 0x03
	TagLong      Tag = 0x04
	TagFloat     Tag = 0x05
	TagDouble    Tag = 0x06
	TagByteArray Tag = 0x07
	TagString    Tag = 0x08
	TagList      Tag = 0x09
	TagCompound  Tag = 0x0a
	TagIntArray  Tag = 0x0b
	TagLongArray Tag = 0x0c
)

var tagNames = [...]string{
	"TAG_End", "TAG_Byte", "TAG_Short", "TAG_Int", "TAG_Long",
	"TAG_Float", "TAG_Double", "TAG_ByteArray", "TAG_String",
	"TAG_List", "TAG_Compound", "TAG_IntArray", "TAG_LongArray",
}

// Valid reports whether t is a tag defined by the format.
func (t Tag) Valid() bool { return t <= TagLongArray }

func (t Tag) String() string {
	if t.Valid() {
		return tagNames[t]
	}
	return fmt.Sprintf("TAG_Invalid(0x%02x)", byte(t))
}
