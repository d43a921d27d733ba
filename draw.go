package pdfwriter

// MoveTo starts a new path or subpath at x, y.
func (c *Content) MoveTo(x, y float64) *Content {
	c.emit("m", numbers(x, y)...)
	return c
}

// LineTo adds a straight line to the current path.
func (c *Content) LineTo(x, y float64) *Content {
	c.emit("l", numbers(x, y)...)
	return c
}

// CubicTo appends a cubic Bézier curve to the current path.
func (c *Content) CubicTo(x1, y1, x2, y2, x3, y3 float64) *Content {
	c.emit("c", numbers(x1, y1, x2, y2, x3, y3)...)
	return c
}

// ClosePath closes the current subpath with a straight line to its starting
// point.
func (c *Content) ClosePath() *Content {
	c.emit("h")
	return c
}

// Rect adds a closed rectangle to the current path.
func (c *Content) Rect(x, y, width, height float64) *Content {
	c.emit("re", numbers(x, y, width, height)...)
	return c
}

// Stroke strokes the current path.
func (c *Content) Stroke() *Content {
	c.emit("S")
	return c
}

// Fill fills the current path.
func (c *Content) Fill() *Content {
	c.emit("f")
	return c
}

// FillAndStroke fills and strokes the current path.
func (c *Content) FillAndStroke() *Content {
	c.emit("B")
	return c
}

// EndPath ends the current path without painting it.
func (c *Content) EndPath() *Content {
	c.emit("n")
	return c
}

// SetLineWidth sets the width of the line to be drawn by Stroke.
func (c *Content) SetLineWidth(w float64) *Content {
	if c.emit("w", number(w)) {
		c.state.LineWidth = w
	}
	return c
}

func (c *Content) SetLineJoin(j LineJoin) *Content {
	if c.emit("j", number(j)) {
		c.state.LineJoin = j
	}
	return c
}

func (c *Content) SetLineCap(lc LineCap) *Content {
	if c.emit("J", number(lc)) {
		c.state.LineCap = lc
	}
	return c
}

// SetDash sets the dash pattern. An empty array draws solid lines.
func (c *Content) SetDash(array []float64, phase float64) *Content {
	if c.emit("d", numberArray(append([]float64(nil), array...)), number(phase)) {
		c.state.Dash = append([]float64(nil), array...)
		c.state.DashPhase = phase
	}
	return c
}

// SetStrokeRGB sets an RGB color to be used by Stroke.
// Each component is in the range from 0 to 1.
func (c *Content) SetStrokeRGB(r, g, b float64) *Content {
	if c.emit("RG", numbers(r, g, b)...) {
		c.state.StrokeColor = [3]float64{r, g, b}
	}
	return c
}

// SetFillRGB sets an RGB color to be used by Fill.
// Each component is in the range from 0 to 1.
func (c *Content) SetFillRGB(r, g, b float64) *Content {
	if c.emit("rg", numbers(r, g, b)...) {
		c.state.FillColor = [3]float64{r, g, b}
	}
	return c
}

// SetStrokeGray sets a grayscale value to be used by Stroke.
// 0 is black and 1 is white.
func (c *Content) SetStrokeGray(g float64) *Content {
	if c.emit("G", number(g)) {
		c.state.StrokeColor = [3]float64{g, g, g}
	}
	return c
}

// SetFillGray sets a grayscale value to be used by Fill.
// 0 is black and 1 is white.
func (c *Content) SetFillGray(g float64) *Content {
	if c.emit("g", number(g)) {
		c.state.FillColor = [3]float64{g, g, g}
	}
	return c
}
