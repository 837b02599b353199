package nbt

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// Blob is a complete NBT document: a named root compound. On the wire it is
// a TagCompound header carrying the blob's name, the entries, and a closing
// end tag.
type Blob struct {
	Name    string
	content Compound
}

// NewBlob returns an empty document with the given root name. The root name
// is usually empty in files found in the wild.
func NewBlob(name string) *Blob {
	return &Blob{Name: name}
}

// Get returns the top-level value stored under name, if any.
func (b *Blob) Get(name string) (Value, bool) { return b.content.Get(name) }

// Insert stores v at the top level under name.
func (b *Blob) Insert(name string, v Value) { b.content.Insert(name, v) }

// Len returns the number of top-level entries.
func (b *Blob) Len() int { return b.content.Len() }

// Keys returns the top-level entry names in insertion order.
func (b *Blob) Keys() []string { return b.content.Keys() }

// Write encodes the document to w uncompressed.
func (b *Blob) Write(w io.Writer) error {
	return WriteNamedValue(w, b.Name, &b.content)
}

// WriteGzip encodes the document to w behind a gzip stream.
func (b *Blob) WriteGzip(w io.Writer) error {
	zw := gzip.NewWriter(w)
	if err := b.Write(zw); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("nbt: gzip: %w", err)
	}
	return nil
}

// WriteZlib encodes the document to w behind a zlib stream.
func (b *Blob) WriteZlib(w io.Writer) error {
	zw := zlib.NewWriter(w)
	if err := b.Write(zw); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("nbt: zlib: %w", err)
	}
	return nil
}

// ReadBlob decodes an uncompressed document from r. The stream must begin
// with a compound header; any other root tag reports ErrNoRootCompound.
func ReadBlob(r io.Reader) (*Blob, error) {
	tag, name, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	if tag != TagCompound {
		return nil, fmt.Errorf("%w: got %v", ErrNoRootCompound, tag)
	}
	c, err := readCompound(r)
	if err != nil {
		return nil, err
	}
	return &Blob{Name: name, content: *c}, nil
}

// ReadGzipBlob decodes a gzip-compressed document from r.
func ReadGzipBlob(r io.Reader) (*Blob, error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("nbt: gzip: %w", err)
	}
	defer zr.Close()
	return ReadBlob(zr)
}

// ReadZlibBlob decodes a zlib-compressed document from r.
func ReadZlibBlob(r io.Reader) (*Blob, error) {
	zr, err := zlib.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("nbt: zlib: %w", err)
	}
	defer zr.Close()
	return ReadBlob(zr)
}

func (b *Blob) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v(%q): ", TagCompound, b.Name)
	b.content.pretty(&sb, "")
	return sb.String()
}
