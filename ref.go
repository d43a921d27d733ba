package pdfwriter

import "strconv"

// A Ref identifies an indirect object. Valid refs are positive and come from
// Document.Alloc.
type Ref int

func (r Ref) String() string {
	return strconv.Itoa(int(r)) + " 0 R"
}

// allocator hands out object numbers 1, 2, 3, ... and never reuses them.
type allocator struct {
	n Ref
}

func (a *allocator) next() Ref {
	a.n++
	return a.n
}

// last returns the highest number handed out so far.
func (a *allocator) last() Ref {
	return a.n
}

func (a *allocator) allocated(r Ref) bool {
	return r > 0 && r <= a.n
}
