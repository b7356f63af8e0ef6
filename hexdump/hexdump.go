// Package hexdump renders byte buffers as offset, hex and ASCII columns.
//
//	00000000  1f 8b 08 00 00 00 00 00  00 03 4b 4c 4a 06 00 c2  |..........KLJ...|
package hexdump

import (
	"fmt"
	"io"
	"strings"
)

const DefaultWidth = 16

// Lines renders data as one line per width bytes. A width below 1 uses
// DefaultWidth.
func Lines(data []byte, width int) []string {
	if width < 1 {
		width = DefaultWidth
	}

	lines := make([]string, 0, (len(data)+width-1)/width)
	for offset := 0; offset < len(data); offset += width {
		lines = append(lines, Line(data, offset, width))
	}

	return lines
}

// Line renders the width bytes of data starting at offset. Slots past the
// end of data are blank.
func Line(data []byte, offset, width int) string {
	if width < 1 {
		width = DefaultWidth
	}

	var b strings.Builder
	b.Grow(8 + width*4 + width/2 + 4)

	fmt.Fprintf(&b, "%08x", offset)

	for i := 0; i < width; i++ {
		if width != 1 && i%(width/2) == 0 {
			b.WriteByte(' ')
		}
		if offset+i < len(data) {
			fmt.Fprintf(&b, " %02x", data[offset+i])
		} else {
			b.WriteString("   ")
		}
	}

	b.WriteString("  |")
	for i := 0; i < width; i++ {
		if offset+i < len(data) {
			b.WriteByte(printable(data[offset+i]))
		} else {
			b.WriteByte(' ')
		}
	}
	b.WriteByte('|')

	return b.String()
}

// Write writes every line of the dump to w, each followed by a newline.
func Write(w io.Writer, data []byte, width int) error {
	for _, line := range Lines(data, width) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func printable(c byte) byte {
	if c < 0x20 || c >= 0x7f {
		return '.'
	}
	return c
}
