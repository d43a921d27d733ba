package pdfwriter

import (
	"bytes"

	"github.com/andybalholm/pdfwriter/logger"
)

type operand interface {
	appendOperand(b *bytes.Buffer)
	// finite reports whether every number in the operand is finite.
	finite() bool
}

type number float64

func (n number) appendOperand(b *bytes.Buffer) { b.WriteString(formatNumber(float64(n))) }

func (n number) finite() bool { return finite(float64(n)) }

type name string

func (name) finite() bool { return true }

func (n name) appendOperand(b *bytes.Buffer) { writeName(b, string(n)) }

type literal []byte

func (literal) finite() bool { return true }

func (s literal) appendOperand(b *bytes.Buffer) { writeLiteral(b, s) }

type numberArray []float64

func (a numberArray) finite() bool { return finite(a...) }

func (a numberArray) appendOperand(b *bytes.Buffer) {
	b.WriteByte('[')
	for i, v := range a {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(v))
	}
	b.WriteByte(']')
}

func numbers(vs ...float64) []operand {
	ops := make([]operand, len(vs))
	for i, v := range vs {
		ops[i] = number(v)
	}
	return ops
}

type operation struct {
	operator string
	operands []operand
}

// Content is a page content stream under construction. Operators are kept
// in the order they are added and written out unchanged by Finish.
//
// Methods return c so calls can be chained. Coordinates and colours are not
// range checked, but NaN and infinite numbers are rejected: the operator is
// dropped and Err and Finish report ErrInvalidParam.
type Content struct {
	ops   []operation
	state GraphicsState
	stack []GraphicsState
	log   logger.LogFunc

	inText   bool
	finished bool
	data     []byte
	err      error
}

// NewContent returns an empty content stream. It logs through the package
// logger until it is added to a document; Document.NewContent uses the
// document's logger from the start.
func NewContent() *Content {
	return &Content{state: DefaultGraphicsState()}
}

// emit appends an operator. It reports false, and records an error, if c
// is already finished or an operand is not a finite number.
func (c *Content) emit(operator string, operands ...operand) bool {
	if c.finished {
		if c.err == nil {
			c.err = ErrContentFinished
		}
		return false
	}
	for _, o := range operands {
		if !o.finite() {
			if c.err == nil {
				c.err = paramError("Content."+operator, 0, "operand %v is not a finite number", o)
			}
			return false
		}
	}
	c.ops = append(c.ops, operation{operator, operands})
	return true
}

// State returns the graphics state after the operators added so far.
func (c *Content) State() GraphicsState {
	return c.state.clone()
}

// Depth returns the number of unmatched SaveState calls.
func (c *Content) Depth() int {
	return len(c.stack)
}

// Len returns the number of operators added so far.
func (c *Content) Len() int {
	return len(c.ops)
}

// Err returns the first error recorded by c.
func (c *Content) Err() error {
	return c.err
}

// Finish serializes the operators. Calling it again returns the same bytes;
// adding operators afterwards is an error.
func (c *Content) Finish() ([]byte, error) {
	if c.err != nil {
		return nil, c.err
	}
	if c.finished {
		return c.data, nil
	}
	if len(c.stack) > 0 {
		c.log.Warn("content stream has unmatched save state", "depth", len(c.stack))
	}
	if c.inText {
		c.log.Warn("content stream has an unclosed text object")
	}

	var b bytes.Buffer
	for _, op := range c.ops {
		for _, o := range op.operands {
			o.appendOperand(&b)
			b.WriteByte(' ')
		}
		b.WriteString(op.operator)
		b.WriteByte('\n')
	}
	c.data = b.Bytes()
	c.finished = true
	c.ops = nil
	return c.data, nil
}

// SaveState pushes a copy of the graphics state (q).
func (c *Content) SaveState() *Content {
	if c.emit("q") {
		c.stack = append(c.stack, c.state.clone())
	}
	return c
}

// RestoreState pops the graphics state saved by the matching SaveState (Q).
// An unmatched restore is written anyway and logged as a warning.
func (c *Content) RestoreState() *Content {
	if !c.emit("Q") {
		return c
	}
	if len(c.stack) == 0 {
		c.log.Warn("content stream restores state without a matching save")
		return c
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return c
}

// Transform concatenates m with the current transformation matrix (cm).
func (c *Content) Transform(m Matrix) *Content {
	if c.emit("cm", numbers(m[:]...)...) {
		c.state.CTM = m.Multiply(c.state.CTM)
	}
	return c
}

// XObject paints the named image resource (Do).
func (c *Content) XObject(resource string) *Content {
	c.emit("Do", name(resource))
	return c
}

// DrawImage paints the named image resource at p, leaving the graphics
// state unchanged.
func (c *Content) DrawImage(resource string, p Placement) *Content {
	return c.SaveState().
		Transform(p.Matrix()).
		XObject(resource).
		RestoreState()
}
