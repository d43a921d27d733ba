package pdfwriter

// A Matrix is an affine transformation [a b c d e f], mapping (x, y) to
// (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

func Scale(sx, sy float64) Matrix {
	return Matrix{sx, 0, 0, sy, 0, 0}
}

// Multiply returns m × n: the transformation that applies m first and then n.
func (m Matrix) Multiply(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

type LineJoin int

const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

type LineCap int

const (
	ButtCap LineCap = iota
	RoundCap
	ProjectingSquareCap
)

// GraphicsState is the part of the graphics state that Content tracks
// while operators are appended.
type GraphicsState struct {
	CTM         Matrix
	StrokeColor [3]float64
	FillColor   [3]float64
	LineWidth   float64
	LineJoin    LineJoin
	LineCap     LineCap
	Dash        []float64
	DashPhase   float64

	Font     string
	FontSize float64
	Leading  float64

	// TextLine is the text line matrix; it is reset by BeginText.
	TextLine Matrix
}

// DefaultGraphicsState is the state at the start of every content stream.
func DefaultGraphicsState() GraphicsState {
	return GraphicsState{
		CTM:       Identity(),
		LineWidth: 1,
		TextLine:  Identity(),
	}
}

func (s GraphicsState) clone() GraphicsState {
	s.Dash = append([]float64(nil), s.Dash...)
	return s
}
