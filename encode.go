package pdfwriter

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/encoding/unicode"
)

// An object is one of the indirect object kinds this package can write.
// The set is closed: only types in this package implement it.
type object interface {
	kind() Kind
	// refs lists every indirect reference the object makes.
	refs() []refUse
	writeTo(e *encoder)
}

type encoder struct {
	bytes.Buffer

	offsets map[Ref]int
}

// encode writes the header, every bound object in ascending order, the
// cross-reference table and the trailer.
func (e *encoder) encode(d *Document) []byte {
	e.Reset()
	e.offsets = make(map[Ref]int, len(d.objects))

	fmt.Fprintf(e, "%%PDF-%s\n", d.cfg.Version)
	e.WriteString("%\xE2\xE3\xCF\xD3\n")

	last := d.alloc.last()
	for r := Ref(1); r <= last; r++ {
		o, ok := d.objects[r]
		if !ok {
			continue
		}
		e.offsets[r] = e.Len()
		fmt.Fprintf(e, "%d 0 obj\n", r)
		o.writeTo(e)
		e.WriteString("\nendobj\n")
	}

	startxref := e.Len()
	e.WriteString("xref\n")
	fmt.Fprintf(e, "0 %d\n", last+1)
	fmt.Fprintf(e, "%010d 65535 f \n", e.nextFree(0, last))
	for r := Ref(1); r <= last; r++ {
		if offset, ok := e.offsets[r]; ok {
			fmt.Fprintf(e, "%010d 00000 n \n", offset)
		} else {
			fmt.Fprintf(e, "%010d 65535 f \n", e.nextFree(r, last))
		}
	}

	e.WriteString("trailer\n")
	fmt.Fprintf(e, "<< /Size %d /Root ", last+1)
	e.writeRef(d.root)
	if d.info != 0 {
		e.WriteString(" /Info ")
		e.writeRef(d.info)
	}
	e.WriteString(" >>\n")
	e.WriteString("startxref\n")
	fmt.Fprintln(e, startxref)
	e.WriteString("%%EOF\n")

	return e.Bytes()
}

// nextFree returns the first unbound object number after r, or 0, which
// links the free entries into the list the xref format expects.
func (e *encoder) nextFree(r, last Ref) Ref {
	for n := r + 1; n <= last; n++ {
		if _, ok := e.offsets[n]; !ok {
			return n
		}
	}
	return 0
}

func (e *encoder) writeRef(r Ref) {
	fmt.Fprintf(e, "%d 0 R", r)
}

func (e *encoder) writeNumber(v float64) {
	e.WriteString(formatNumber(v))
}

func (e *encoder) writeNumbers(vs ...float64) {
	e.WriteByte('[')
	for i, v := range vs {
		if i > 0 {
			e.WriteByte(' ')
		}
		e.writeNumber(v)
	}
	e.WriteByte(']')
}

// writeRect writes r as a four-number array.
func (e *encoder) writeRect(r Rect) {
	e.writeNumbers(r.X1, r.Y1, r.X2, r.Y2)
}

func (e *encoder) writeName(n string) {
	writeName(&e.Buffer, n)
}

// formatNumber formats v as a PDF number. PDF has no exponent notation, so
// 'f' formatting is used with the shortest float32 representation.
func formatNumber(v float64) string {
	if v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'f', -1, 32)
}

// finite reports whether every v is a number PDF can represent.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func isDelimiter(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

// writeName writes /n, escaping bytes that may not appear in a name.
func writeName(b *bytes.Buffer, n string) {
	b.WriteByte('/')
	for i := 0; i < len(n); i++ {
		c := n[i]
		if c < '!' || c > '~' || c == '#' || isDelimiter(c) {
			fmt.Fprintf(b, "#%02X", c)
			continue
		}
		b.WriteByte(c)
	}
}

// writeLiteral writes s as a literal string.
func writeLiteral(b *bytes.Buffer, s []byte) {
	b.WriteByte('(')
	for _, c := range s {
		switch c {
		case '(', ')', '\\':
			b.WriteByte('\\')
			b.WriteByte(c)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < ' ' || c == 0x7f {
				fmt.Fprintf(b, "\\%03o", c)
			} else {
				b.WriteByte(c)
			}
		}
	}
	b.WriteByte(')')
}

var utf16BE = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// writeTextString writes s as a text string: a literal when s is ASCII,
// otherwise UTF-16BE with a byte order mark in hex form.
func writeTextString(b *bytes.Buffer, s string) {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		writeLiteral(b, []byte(s))
		return
	}

	encoded, err := utf16BE.NewEncoder().Bytes([]byte(s))
	if err != nil {
		// Only invalid UTF-8 gets here; keep the raw bytes.
		writeLiteral(b, []byte(s))
		return
	}
	fmt.Fprintf(b, "<%X>", encoded)
}
