package pdfwriter

import "sort"

// A Rect is a rectangle given by its lower-left and upper-right corners.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// NewRect returns the rectangle with corners (x1, y1) and (x2, y2).
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{x1, y1, x2, y2}
}

// A4 is an A4 page in points.
var A4 = Rect{0, 0, 595, 842}

// Letter is a US Letter page in points.
var Letter = Rect{0, 0, 612, 792}

func (r Rect) Width() float64  { return r.X2 - r.X1 }
func (r Rect) Height() float64 { return r.Y2 - r.Y1 }

// valid reports whether r is finite and has a positive area.
func (r Rect) valid() bool {
	return finite(r.X1, r.Y1, r.X2, r.Y2) && r.X2 > r.X1 && r.Y2 > r.Y1
}

// resourceEntry maps a resource name to an object.
type resourceEntry struct {
	name string
	ref  Ref
}

type resources struct {
	fonts    []resourceEntry
	xobjects []resourceEntry
}

func writeResourceMap(e *encoder, key string, entries []resourceEntry) {
	if len(entries) == 0 {
		return
	}
	e.WriteString(" /")
	e.WriteString(key)
	e.WriteString(" <<")
	for _, r := range entries {
		e.WriteByte(' ')
		e.writeName(r.name)
		e.WriteByte(' ')
		e.writeRef(r.ref)
	}
	e.WriteString(" >>")
}

func (r *resources) writeTo(e *encoder) {
	e.WriteString("<<")
	writeResourceMap(e, "Font", r.fonts)
	writeResourceMap(e, "XObject", r.xobjects)
	e.WriteString(" >>")
}

// page is a leaf of the page tree.
type page struct {
	mediaBox  Rect
	parent    Ref
	contents  Ref
	resources resources
	annots    []pageAnnot
}

// pageAnnot is either an inline annotation or a reference to an indirect one.
type pageAnnot struct {
	inline *annotation
	ref    Ref
}

func (p *page) kind() Kind { return KindPage }

func (p *page) refs() []refUse {
	uses := []refUse{{p.parent, kinds(KindPageTree)}}
	if p.contents != 0 {
		uses = append(uses, refUse{p.contents, kinds(KindContentStream)})
	}
	for _, f := range p.resources.fonts {
		uses = append(uses, refUse{f.ref, kinds(KindFont)})
	}
	for _, x := range p.resources.xobjects {
		uses = append(uses, refUse{x.ref, kinds(KindImage)})
	}
	for _, a := range p.annots {
		if a.inline != nil {
			uses = append(uses, a.inline.refs()...)
		} else {
			uses = append(uses, refUse{a.ref, kinds(KindAnnotation)})
		}
	}
	return uses
}

func (p *page) writeTo(e *encoder) {
	e.WriteString("<< /Type /Page /Parent ")
	e.writeRef(p.parent)
	e.WriteString(" /MediaBox ")
	e.writeRect(p.mediaBox)
	e.WriteString(" /Resources ")
	p.resources.writeTo(e)
	if p.contents != 0 {
		e.WriteString(" /Contents ")
		e.writeRef(p.contents)
	}
	if len(p.annots) > 0 {
		e.WriteString(" /Annots [")
		for i, a := range p.annots {
			if i > 0 {
				e.WriteByte(' ')
			}
			if a.inline != nil {
				a.inline.writeTo(e)
			} else {
				e.writeRef(a.ref)
			}
		}
		e.WriteByte(']')
	}
	e.WriteString(" >>")
}

// PageBuilder describes a page. Its Resources and Annotations sub-builders
// must be finished before the page is.
type PageBuilder struct {
	d     *Document
	ref   Ref
	scope scope
	err   error

	p page

	// The most recently opened sub-builders. Only one of each may be open.
	res    *ResourcesBuilder
	annots *AnnotationsBuilder
}

// Page begins a page.
func (d *Document) Page(ref Ref) *PageBuilder {
	b := &PageBuilder{d: d, ref: ref}
	b.err = d.begin("Page", ref, KindPage)
	return b
}

func (b *PageBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// MediaBox sets the page boundaries. The rectangle must have a positive area.
func (b *PageBuilder) MediaBox(r Rect) *PageBuilder {
	if b.scope.finished(b.d, "Page.MediaBox", b.ref, &b.err) {
		return b
	}
	if !r.valid() {
		b.setErr(paramError("Page.MediaBox", b.ref, "degenerate rectangle %v", r))
		return b
	}
	b.p.mediaBox = r
	return b
}

// Parent sets the page tree node the page belongs to.
func (b *PageBuilder) Parent(ref Ref) *PageBuilder {
	if b.scope.finished(b.d, "Page.Parent", b.ref, &b.err) {
		return b
	}
	b.p.parent = ref
	return b
}

// Contents sets the content stream that draws the page.
func (b *PageBuilder) Contents(ref Ref) *PageBuilder {
	if b.scope.finished(b.d, "Page.Contents", b.ref, &b.err) {
		return b
	}
	b.p.contents = ref
	return b
}

// Resources opens the page's resource dictionary, starting from the
// entries of the last finished one. Only one may be open at a time.
func (b *PageBuilder) Resources() *ResourcesBuilder {
	r := &ResourcesBuilder{page: b}
	if b.scope.finished(b.d, "Page.Resources", b.ref, &r.err) {
		return r
	}
	if b.res != nil && !b.res.scope.done {
		r.err = paramError("Page.Resources", b.ref, "resources are already open")
		b.setErr(r.err)
		return r
	}
	b.res = r
	r.scope = b.scope.child()
	r.res.fonts = append(r.res.fonts, b.p.resources.fonts...)
	r.res.xobjects = append(r.res.xobjects, b.p.resources.xobjects...)
	return r
}

// Annotations opens the page's annotation list, starting from the
// annotations of the last finished one. Only one may be open at a time.
func (b *PageBuilder) Annotations() *AnnotationsBuilder {
	a := &AnnotationsBuilder{page: b}
	if b.scope.finished(b.d, "Page.Annotations", b.ref, &a.err) {
		return a
	}
	if b.annots != nil && !b.annots.scope.done {
		a.err = paramError("Page.Annotations", b.ref, "annotations are already open")
		b.setErr(a.err)
		return a
	}
	b.annots = a
	a.scope = b.scope.child()
	a.annots = append(a.annots, b.p.annots...)
	return a
}

// Finish checks the page and adds it to the document.
func (b *PageBuilder) Finish() error {
	if b.err != nil {
		return b.err
	}
	if err := b.scope.check("Page.Finish", b.ref); err != nil {
		return err
	}
	if b.p.mediaBox == (Rect{}) {
		return fieldError("Page.Finish", b.ref, "MediaBox")
	}
	if b.p.parent == 0 {
		return fieldError("Page.Finish", b.ref, "Parent")
	}
	p := b.p
	if err := b.d.commit("Page.Finish", b.ref, &p); err != nil {
		return err
	}
	b.scope.close()
	return nil
}

// ResourcesBuilder maps resource names used by a content stream to objects.
type ResourcesBuilder struct {
	page  *PageBuilder
	scope *scope
	err   error

	res resources
}

func (r *ResourcesBuilder) add(op string, list *[]resourceEntry, name string, ref Ref) {
	if r.err != nil || r.scope.finished(r.page.d, op, r.page.ref, &r.err) {
		return
	}
	if name == "" {
		r.err = paramError(op, r.page.ref, "empty resource name")
		return
	}
	for _, e := range *list {
		if e.name == name {
			r.err = paramError(op, r.page.ref, "resource %q defined twice", name)
			return
		}
	}
	*list = append(*list, resourceEntry{name, ref})
}

// Font maps name (as used by the Tf operator) to a font object.
func (r *ResourcesBuilder) Font(name string, ref Ref) *ResourcesBuilder {
	r.add("Resources.Font", &r.res.fonts, name, ref)
	return r
}

// XObject maps name (as used by the Do operator) to an image object.
func (r *ResourcesBuilder) XObject(name string, ref Ref) *ResourcesBuilder {
	r.add("Resources.XObject", &r.res.xobjects, name, ref)
	return r
}

// Finish stores the resources in the page.
func (r *ResourcesBuilder) Finish() error {
	if r.err != nil {
		return r.err
	}
	if err := r.scope.check("Resources.Finish", r.page.ref); err != nil {
		return err
	}
	sortEntries(r.res.fonts)
	sortEntries(r.res.xobjects)
	r.page.p.resources = r.res
	r.scope.close()
	return nil
}

func sortEntries(entries []resourceEntry) {
	sort.Slice(entries, func(i, j int) bool { return entries[i].name < entries[j].name })
}

// AnnotationsBuilder collects the annotations of a page.
type AnnotationsBuilder struct {
	page  *PageBuilder
	scope *scope
	err   error

	annots []pageAnnot
}

// Push starts a new inline annotation. It must be finished before the list.
func (a *AnnotationsBuilder) Push() *AnnotationBuilder {
	ab := &AnnotationBuilder{d: a.page.d, ref: a.page.ref, op: "Annotation"}
	if a.err != nil {
		ab.err = a.err
		return ab
	}
	if a.scope.finished(a.page.d, "Annotations.Push", a.page.ref, &ab.err) {
		return ab
	}
	ab.scope = a.scope.child()
	ab.done = func(an *annotation) error {
		a.annots = append(a.annots, pageAnnot{inline: an})
		return nil
	}
	return ab
}

// Ref appends a reference to an indirect annotation object.
func (a *AnnotationsBuilder) Ref(ref Ref) *AnnotationsBuilder {
	if a.err != nil || a.scope.finished(a.page.d, "Annotations.Ref", a.page.ref, &a.err) {
		return a
	}
	a.annots = append(a.annots, pageAnnot{ref: ref})
	return a
}

// Finish stores the annotation list in the page.
func (a *AnnotationsBuilder) Finish() error {
	if a.err != nil {
		return a.err
	}
	if err := a.scope.check("Annotations.Finish", a.page.ref); err != nil {
		return err
	}
	a.page.p.annots = a.annots
	a.scope.close()
	return nil
}
