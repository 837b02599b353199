// nbtdump prints the tree structure of NBT files.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	nbt "github.com/ocecaco/hematite-nbt"
)

var compression = pflag.String("compression", "auto", "stream compression: auto, none, gzip or zlib")

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: nbtdump [flags] <file>...\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()
	if pflag.NArg() == 0 {
		pflag.Usage()
		os.Exit(2)
	}

	exit := 0
	for _, path := range pflag.Args() {
		if err := dump(path); err != nil {
			fmt.Fprintf(os.Stderr, "nbtdump: %s: %v\n", path, err)
			exit = 1
		}
	}
	os.Exit(exit)
}

func dump(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	blob, err := readBlob(bufio.NewReader(f), *compression)
	if err != nil {
		return err
	}
	fmt.Println(blob)
	return nil
}

func readBlob(r *bufio.Reader, mode string) (*nbt.Blob, error) {
	if mode == "auto" {
		mode = sniff(r)
	}
	switch mode {
	case "gzip":
		return nbt.ReadGzipBlob(r)
	case "zlib":
		return nbt.ReadZlibBlob(r)
	case "none":
		return nbt.ReadBlob(r)
	default:
		return nil, fmt.Errorf("unknown compression %q", mode)
	}
}

// sniff inspects the first byte without consuming it. 0x1f opens a gzip
// stream, 0x78 a zlib one; a plain NBT file starts with a tag byte, and no
// tag shares those values.
func sniff(r *bufio.Reader) string {
	b, err := r.Peek(1)
	if err != nil && err != io.EOF {
		return "none"
	}
	if len(b) == 0 {
		return "none"
	}
	switch b[0] {
	case 0x1f:
		return "gzip"
	case 0x78:
		return "zlib"
	default:
		return "none"
	}
}
