package pdfwriter

import "golang.org/x/text/encoding/charmap"

// BeginText starts a text object (BT).
func (c *Content) BeginText() *Content {
	if !c.emit("BT") {
		return c
	}
	if c.inText {
		c.log.Warn("content stream nests text objects")
	}
	c.inText = true
	c.state.TextLine = Identity()
	return c
}

// EndText ends the text object (ET).
func (c *Content) EndText() *Content {
	if !c.emit("ET") {
		return c
	}
	if !c.inText {
		c.log.Warn("content stream ends a text object that was not begun")
	}
	c.inText = false
	return c
}

// SetFont selects the named font resource at size (Tf).
func (c *Content) SetFont(resource string, size float64) *Content {
	if c.emit("Tf", name(resource), number(size)) {
		c.state.Font = resource
		c.state.FontSize = size
	}
	return c
}

// SetLeading sets the distance between lines used by NextLine (TL).
func (c *Content) SetLeading(leading float64) *Content {
	if c.emit("TL", number(leading)) {
		c.state.Leading = leading
	}
	return c
}

// MoveText moves to the start of the next line, offset by tx, ty from the
// start of the current one (Td).
func (c *Content) MoveText(tx, ty float64) *Content {
	if c.emit("Td", numbers(tx, ty)...) {
		c.state.TextLine = Translate(tx, ty).Multiply(c.state.TextLine)
	}
	return c
}

// NextLine moves down by the current leading (T*).
func (c *Content) NextLine() *Content {
	if c.emit("T*") {
		c.state.TextLine = Translate(0, -c.state.Leading).Multiply(c.state.TextLine)
	}
	return c
}

// SetTextMatrix replaces the text matrix (Tm).
func (c *Content) SetTextMatrix(m Matrix) *Content {
	if c.emit("Tm", numbers(m[:]...)...) {
		c.state.TextLine = m
	}
	return c
}

// Show paints text with the current font (Tj). The text is converted to
// WinAnsiEncoding; characters it cannot represent become '?'.
func (c *Content) Show(text string) *Content {
	return c.ShowBytes(winAnsi(text))
}

// ShowBytes paints an already encoded string (Tj).
func (c *Content) ShowBytes(s []byte) *Content {
	c.emit("Tj", literal(append([]byte(nil), s...)))
	return c
}

func winAnsi(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}
