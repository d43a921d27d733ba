package pdfwriter

// info is the document information dictionary.
type info struct {
	entries [6]*string
}

var infoKeys = [...]string{"Title", "Author", "Subject", "Keywords", "Creator", "Producer"}

func (in *info) kind() Kind { return KindInfo }

func (in *info) refs() []refUse { return nil }

func (in *info) writeTo(e *encoder) {
	e.WriteString("<<")
	for i, v := range in.entries {
		if v == nil {
			continue
		}
		e.WriteString(" /")
		e.WriteString(infoKeys[i])
		e.WriteByte(' ')
		writeTextString(&e.Buffer, *v)
	}
	e.WriteString(" >>")
}

// InfoBuilder describes the document information dictionary, which the
// trailer points to. No dates are written, so output stays reproducible.
type InfoBuilder struct {
	d     *Document
	ref   Ref
	scope scope
	err   error

	in info
}

// Info begins the document information dictionary.
func (d *Document) Info(ref Ref) *InfoBuilder {
	b := &InfoBuilder{d: d, ref: ref}
	if d.info != 0 {
		b.err = paramError("Info", ref, "document already has info dictionary %d", d.info)
		return b
	}
	b.err = d.begin("Info", ref, KindInfo)
	return b
}

func (b *InfoBuilder) set(i int, v string) *InfoBuilder {
	if b.scope.finished(b.d, "Info."+infoKeys[i], b.ref, &b.err) {
		return b
	}
	b.in.entries[i] = &v
	return b
}

func (b *InfoBuilder) Title(s string) *InfoBuilder    { return b.set(0, s) }
func (b *InfoBuilder) Author(s string) *InfoBuilder   { return b.set(1, s) }
func (b *InfoBuilder) Subject(s string) *InfoBuilder  { return b.set(2, s) }
func (b *InfoBuilder) Keywords(s string) *InfoBuilder { return b.set(3, s) }
func (b *InfoBuilder) Creator(s string) *InfoBuilder  { return b.set(4, s) }
func (b *InfoBuilder) Producer(s string) *InfoBuilder { return b.set(5, s) }

func (b *InfoBuilder) Finish() error {
	if b.err != nil {
		return b.err
	}
	if err := b.scope.check("Info.Finish", b.ref); err != nil {
		return err
	}
	if b.d.info != 0 {
		return paramError("Info.Finish", b.ref, "document already has info dictionary %d", b.d.info)
	}
	in := b.in
	if err := b.d.commit("Info.Finish", b.ref, &in); err != nil {
		return err
	}
	b.scope.close()
	b.d.info = b.ref
	return nil
}
