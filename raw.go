package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Primitive read/write functions for bare NBT values: the payload bytes of a
// value without its tag and name. These are not needed for everyday use (see
// Blob and Value for the high-level API) but are exposed for hand-written
// encoders and decoders that want full control over the stream.
//
// All multi-byte quantities are little-endian. Every function is stateless
// and transcodes exactly one value at the stream's current position; on error
// the stream position is unspecified and the stream must not be reused for
// further structured reads.

// maxPrealloc caps the bytes eagerly allocated from a wire-supplied length
// field. Lengths come from untrusted input, so larger sequences grow
// incrementally instead of trusting the declared count up front.
const maxPrealloc = 1 << 20

func writeBytes(w io.Writer, p []byte) error {
	if _, err := w.Write(p); err != nil {
		return fmt.Errorf("nbt: write: %w", err)
	}
	return nil
}

// readBytes fills buf from r, retrying partial reads. Exhaustion before buf
// is full reports ErrIncompleteValue; any other failure is a transport error.
func readBytes(r io.Reader, buf []byte) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return ErrIncompleteValue
		}
		return fmt.Errorf("nbt: read: %w", err)
	}
	return nil
}

// WriteEndTag writes the single 0x00 byte that closes an open compound.
func WriteEndTag(w io.Writer) error {
	return writeBytes(w, []byte{byte(TagEnd)})
}

// ReadHeader reads the (tag, name) pair that precedes a value inside a
// compound. A TagEnd byte carries no name and terminates the enclosing
// container; the name is returned empty and no further bytes are consumed.
func ReadHeader(r io.Reader) (Tag, string, error) {
	var b [1]byte
	if err := readBytes(r, b[:]); err != nil {
		return TagEnd, "", err
	}
	tag := Tag(b[0])
	if tag == TagEnd {
		return TagEnd, "", nil
	}
	name, err := ReadBareString(r)
	if err != nil {
		return tag, "", err
	}
	return tag, name, nil
}

func WriteBareByte(w io.Writer, v int8) error {
	return writeBytes(w, []byte{byte(v)})
}

func WriteBareShort(w io.Writer, v int16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(v))
	return writeBytes(w, b[:])
}

func WriteBareInt(w io.Writer, v int32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(v))
	return writeBytes(w, b[:])
}

func WriteBareLong(w io.Writer, v int64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	return writeBytes(w, b[:])
}

// WriteBareFloat writes the IEEE-754 bit pattern of v. NaN and infinity
// payloads round-trip exactly.
func WriteBareFloat(w io.Writer, v float32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	return writeBytes(w, b[:])
}

func WriteBareDouble(w io.Writer, v float64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return writeBytes(w, b[:])
}

func ReadBareByte(r io.Reader) (int8, error) {
	var b [1]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func ReadBareShort(r io.Reader) (int16, error) {
	var b [2]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(b[:])), nil
}

func ReadBareInt(r io.Reader) (int32, error) {
	var b [4]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(b[:])), nil
}

func ReadBareLong(r io.Reader) (int64, error) {
	var b [8]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func ReadBareFloat(r io.Reader) (float32, error) {
	var b [4]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return math.Float32frombits(binary.LittleEndian.Uint32(b[:])), nil
}

func ReadBareDouble(r io.Reader) (float64, error) {
	var b [8]byte
	if err := readBytes(r, b[:]); err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.LittleEndian.Uint64(b[:])), nil
}

// WriteBareString writes the UTF-8 byte length of s as an unsigned 16-bit
// little-endian integer followed by the bytes themselves. Strings longer
// than 65535 bytes cannot be represented and report ErrStringTooLong.
func WriteBareString(w io.Writer, s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w (%d bytes)", ErrStringTooLong, len(s))
	}
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], uint16(len(s)))
	if err := writeBytes(w, b[:]); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return writeBytes(w, []byte(s))
}

// ReadBareString reads a 16-bit length prefix and exactly that many bytes of
// UTF-8 text. A stream that ends before the declared length is satisfied
// reports ErrIncompleteValue; payload bytes that are not valid UTF-8 report
// a *UTF8Error carrying the raw bytes.
func ReadBareString(r io.Reader) (string, error) {
	var b [2]byte
	if err := readBytes(r, b[:]); err != nil {
		return "", err
	}
	n := int(binary.LittleEndian.Uint16(b[:]))
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if err := readBytes(r, buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf) {
		return "", &UTF8Error{Bytes: buf}
	}
	return string(buf), nil
}

func WriteBareByteArray(w io.Writer, v []int8) error {
	if err := WriteBareInt(w, int32(len(v))); err != nil {
		return err
	}
	for _, e := range v {
		if err := WriteBareByte(w, e); err != nil {
			return err
		}
	}
	return nil
}

func WriteBareIntArray(w io.Writer, v []int32) error {
	if err := WriteBareInt(w, int32(len(v))); err != nil {
		return err
	}
	for _, e := range v {
		if err := WriteBareInt(w, e); err != nil {
			return err
		}
	}
	return nil
}

func WriteBareLongArray(w io.Writer, v []int64) error {
	if err := WriteBareInt(w, int32(len(v))); err != nil {
		return err
	}
	for _, e := range v {
		if err := WriteBareLong(w, e); err != nil {
			return err
		}
	}
	return nil
}

// arrayLen reads and validates an element count. elemSize bounds the initial
// allocation so a corrupt count cannot demand gigabytes up front.
func arrayLen(r io.Reader, elemSize int) (n, capHint int, err error) {
	c, err := ReadBareInt(r)
	if err != nil {
		return 0, 0, err
	}
	if c < 0 {
		return 0, 0, fmt.Errorf("%w (%d)", ErrNegativeLength, c)
	}
	n = int(c)
	capHint = n
	if max := maxPrealloc / elemSize; capHint > max {
		capHint = max
	}
	return n, capHint, nil
}

func ReadBareByteArray(r io.Reader) ([]int8, error) {
	n, capHint, err := arrayLen(r, 1)
	if err != nil {
		return nil, err
	}
	buf := make([]int8, 0, capHint)
	for i := 0; i < n; i++ {
		e, err := ReadBareByte(r)
		if err != nil {
			return nil, err
		}
		buf = append(buf, e)
	}
	return buf, nil
}

func ReadBareIntArray(r io.Reader) ([]int32, error) {
	n, capHint, err := arrayLen(r, 4)
	if err != nil {
		return nil, err
	}
	buf := make([]int32, 0, capHint)
	for i := 0; i < n; i++ {
		e, err := ReadBareInt(r)
		if err != nil {
			return nil, err
		}
		buf = append(buf, e)
	}
	return buf, nil
}

func ReadBareLongArray(r io.Reader) ([]int64, error) {
	n, capHint, err := arrayLen(r, 8)
	if err != nil {
		return nil, err
	}
	buf := make([]int64, 0, capHint)
	for i := 0; i < n; i++ {
		e, err := ReadBareLong(r)
		if err != nil {
			return nil, err
		}
		buf = append(buf, e)
	}
	return buf, nil
}
