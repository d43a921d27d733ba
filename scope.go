package pdfwriter

import "fmt"

// scope tracks whether a builder is finished and how many of its child
// builders are still open.
type scope struct {
	parent *scope
	open   int
	done   bool
}

// child opens a sub-builder scope under s.
func (s *scope) child() *scope {
	s.open++
	return &scope{parent: s}
}

// check reports whether the builder may be finished now.
func (s *scope) check(op string, ref Ref) error {
	if s.done {
		return newPDFError(op, ref, ErrAlreadyFinished)
	}
	if s.open > 0 {
		return newPDFError(op, ref, fmt.Errorf("%w: %d open", ErrUnfinishedChild, s.open))
	}
	return nil
}

// finished reports whether the builder is already finished. If so, the
// call op is recorded as misuse in *err and in d.
func (s *scope) finished(d *Document, op string, ref Ref, err *error) bool {
	if s == nil || !s.done {
		return false
	}
	e := d.late(op, ref)
	if *err == nil {
		*err = e
	}
	return true
}

func (s *scope) close() {
	s.done = true
	if s.parent != nil {
		s.parent.open--
	}
}

// late records a change made to a builder after its Finish. The change is
// lost, so Document.Finish reports it.
func (d *Document) late(op string, ref Ref) error {
	err := newPDFError(op, ref, ErrAlreadyFinished)
	if d.misuse == nil {
		d.misuse = err
	}
	return err
}

// kindSet is a set of object kinds a reference may point to.
type kindSet uint

func kinds(ks ...Kind) kindSet {
	var s kindSet
	for _, k := range ks {
		s |= 1 << uint(k)
	}
	return s
}

func (s kindSet) has(k Kind) bool {
	return s&(1<<uint(k)) != 0
}

// refUse is one outgoing reference and the kinds it may resolve to.
type refUse struct {
	ref  Ref
	want kindSet
}

func fmtRefError(err error, target Ref) error {
	return fmt.Errorf("%w: %d", err, target)
}
