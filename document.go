package pdfwriter

import (
	"io"
	"sort"

	"github.com/andybalholm/pdfwriter/logger"
)

// Kind identifies the type of an indirect object.
type Kind int

const (
	KindCatalog Kind = iota + 1
	KindPageTree
	KindPage
	KindAnnotation
	KindFont
	KindImage
	KindContentStream
	KindInfo
)

var kindNames = [...]string{
	KindCatalog:       "Catalog",
	KindPageTree:      "PageTree",
	KindPage:          "Page",
	KindAnnotation:    "Annotation",
	KindFont:          "Font",
	KindImage:         "Image",
	KindContentStream: "ContentStream",
	KindInfo:          "Info",
}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

type docState int

const (
	stateEmpty docState = iota
	stateBuilding
	stateFinished
)

// A Document is a graph of indirect objects that is serialized exactly once.
// Objects refer to each other only by Ref; the Document owns all of them.
//
// A Document is not safe for concurrent use. Use one Document per goroutine.
type Document struct {
	cfg   *Config
	alloc allocator
	state docState

	objects map[Ref]object
	pending map[Ref]Kind

	root Ref
	info Ref

	log logger.LogFunc
	// misuse is the first change made to a builder after its Finish.
	misuse error
}

// New returns an empty document configured by opts.
func New(opts ...Option) (*Document, error) {
	cfg := NewDefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, newPDFError("New", 0, err)
	}
	return &Document{
		cfg:     cfg,
		objects: make(map[Ref]object),
		pending: make(map[Ref]Kind),
		log:     cfg.Logger,
	}, nil
}

// NewContent returns an empty content stream that logs through the
// document's logger.
func (d *Document) NewContent() *Content {
	c := NewContent()
	c.log = d.log
	return c
}

// Alloc reserves a new object number.
func (d *Document) Alloc() Ref {
	return d.alloc.next()
}

// begin binds ref to a new, not yet finished object of kind k.
func (d *Document) begin(op string, ref Ref, k Kind) error {
	if d.state == stateFinished {
		return newPDFError(op, ref, ErrDocumentFinished)
	}
	if !d.alloc.allocated(ref) {
		return newPDFError(op, ref, ErrUnallocatedRef)
	}
	if _, ok := d.objects[ref]; ok {
		return newPDFError(op, ref, ErrDuplicateRef)
	}
	if _, ok := d.pending[ref]; ok {
		return newPDFError(op, ref, ErrDuplicateRef)
	}
	d.pending[ref] = k
	d.state = stateBuilding
	return nil
}

// commit moves a finished object into the document.
func (d *Document) commit(op string, ref Ref, o object) error {
	if d.state == stateFinished {
		return newPDFError(op, ref, ErrDocumentFinished)
	}
	delete(d.pending, ref)
	d.objects[ref] = o
	return nil
}

// Finish validates the object graph and serializes it. The document cannot
// be used afterwards.
func (d *Document) Finish() ([]byte, error) {
	if d.state == stateFinished {
		return nil, newPDFError("Finish", 0, ErrDocumentFinished)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}

	out := new(encoder).encode(d)
	d.log.Debug("document finished", "objects", len(d.objects), "bytes", len(out))

	d.state = stateFinished
	d.objects = nil
	d.pending = nil
	return out, nil
}

// WriteTo finishes the document and writes it to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	b, err := d.Finish()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(b)
	return int64(n), err
}

// LeafCount returns the number of pages reachable from the page tree ref.
func (d *Document) LeafCount(ref Ref) (int, error) {
	if d.state == stateFinished {
		return 0, newPDFError("LeafCount", ref, ErrDocumentFinished)
	}
	t, ok := d.objects[ref].(*pageTree)
	if !ok {
		return 0, newPDFError("LeafCount", ref, ErrWrongKind)
	}
	return d.countLeaves("LeafCount", ref, t, make(map[Ref]bool))
}

func (d *Document) countLeaves(op string, ref Ref, t *pageTree, visiting map[Ref]bool) (int, error) {
	if visiting[ref] {
		return 0, newPDFError(op, ref, ErrPageTreeCycle)
	}
	visiting[ref] = true
	defer delete(visiting, ref)

	n := 0
	for _, kid := range t.kids {
		switch o := d.objects[kid].(type) {
		case *page:
			n++
		case *pageTree:
			c, err := d.countLeaves(op, kid, o, visiting)
			if err != nil {
				return 0, err
			}
			n += c
		case nil:
			return 0, newPDFError(op, kid, ErrDanglingRef)
		default:
			return 0, newPDFError(op, kid, ErrWrongKind)
		}
	}
	return n, nil
}

func (d *Document) sortedRefs() []Ref {
	refs := make([]Ref, 0, len(d.objects))
	for r := range d.objects {
		refs = append(refs, r)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// validate checks the whole graph before anything is written.
func (d *Document) validate() error {
	if d.misuse != nil {
		return d.misuse
	}
	if len(d.pending) > 0 {
		var first Ref
		for r := range d.pending {
			if first == 0 || r < first {
				first = r
			}
		}
		return newPDFError("Finish", first, ErrUnfinishedObject)
	}
	if d.root == 0 {
		return newPDFError("Finish", 0, ErrNoCatalog)
	}
	if d.cfg.StrictRefs {
		for r := Ref(1); r <= d.alloc.last(); r++ {
			if _, ok := d.objects[r]; !ok {
				return newPDFError("Finish", r, ErrRefGap)
			}
		}
	}

	for _, r := range d.sortedRefs() {
		for _, use := range d.objects[r].refs() {
			target, ok := d.objects[use.ref]
			if !ok {
				return newPDFError("Finish", r, fmtRefError(ErrDanglingRef, use.ref))
			}
			if !use.want.has(target.kind()) {
				return newPDFError("Finish", r, fmtRefError(ErrWrongKind, use.ref))
			}
		}
	}

	for _, r := range d.sortedRefs() {
		switch o := d.objects[r].(type) {
		case *pageTree:
			n, err := d.countLeaves("Finish", r, o, make(map[Ref]bool))
			if err != nil {
				return err
			}
			o.count = n
			for _, kid := range o.kids {
				if parent := d.parentOf(kid); parent != r {
					return paramError("Finish", kid, "parent is %d, but it is a kid of %d", parent, r)
				}
			}
		case *page:
			if !d.objects[o.parent].(*pageTree).hasKid(r) {
				return paramError("Finish", r, "page is not listed in the kids of its parent %d", o.parent)
			}
		}
	}
	return nil
}

// parentOf returns the parent ref of a page or page tree node.
func (d *Document) parentOf(r Ref) Ref {
	switch o := d.objects[r].(type) {
	case *page:
		return o.parent
	case *pageTree:
		return o.parent
	}
	return 0
}

// catalog is the document root.
type catalog struct {
	pages Ref
}

func (c *catalog) kind() Kind { return KindCatalog }

func (c *catalog) refs() []refUse {
	return []refUse{{c.pages, kinds(KindPageTree)}}
}

func (c *catalog) writeTo(e *encoder) {
	e.WriteString("<< /Type /Catalog /Pages ")
	e.writeRef(c.pages)
	e.WriteString(" >>")
}

// CatalogBuilder describes the document catalog.
type CatalogBuilder struct {
	d     *Document
	ref   Ref
	scope scope
	err   error

	c catalog
}

// Catalog begins the document catalog. A document has exactly one.
func (d *Document) Catalog(ref Ref) *CatalogBuilder {
	b := &CatalogBuilder{d: d, ref: ref}
	if d.root != 0 {
		b.err = paramError("Catalog", ref, "document already has catalog %d", d.root)
		return b
	}
	b.err = d.begin("Catalog", ref, KindCatalog)
	return b
}

// Pages sets the root of the page tree.
func (b *CatalogBuilder) Pages(ref Ref) *CatalogBuilder {
	if b.scope.finished(b.d, "Catalog.Pages", b.ref, &b.err) {
		return b
	}
	b.c.pages = ref
	return b
}

func (b *CatalogBuilder) Finish() error {
	if b.err != nil {
		return b.err
	}
	if err := b.scope.check("Catalog.Finish", b.ref); err != nil {
		return err
	}
	if b.c.pages == 0 {
		return fieldError("Catalog.Finish", b.ref, "Pages")
	}
	if b.d.root != 0 {
		return paramError("Catalog.Finish", b.ref, "document already has catalog %d", b.d.root)
	}
	c := b.c
	if err := b.d.commit("Catalog.Finish", b.ref, &c); err != nil {
		return err
	}
	b.scope.close()
	b.d.root = b.ref
	return nil
}

// pageTree is an intermediate node of the page tree.
type pageTree struct {
	parent Ref
	kids   []Ref
	count  int
}

func (t *pageTree) kind() Kind { return KindPageTree }

func (t *pageTree) refs() []refUse {
	uses := make([]refUse, 0, len(t.kids)+1)
	if t.parent != 0 {
		uses = append(uses, refUse{t.parent, kinds(KindPageTree)})
	}
	for _, kid := range t.kids {
		uses = append(uses, refUse{kid, kinds(KindPage, KindPageTree)})
	}
	return uses
}

func (t *pageTree) hasKid(r Ref) bool {
	for _, k := range t.kids {
		if k == r {
			return true
		}
	}
	return false
}

func (t *pageTree) writeTo(e *encoder) {
	e.WriteString("<< /Type /Pages")
	if t.parent != 0 {
		e.WriteString(" /Parent ")
		e.writeRef(t.parent)
	}
	e.WriteString(" /Kids [")
	for i, kid := range t.kids {
		if i > 0 {
			e.WriteByte(' ')
		}
		e.writeRef(kid)
	}
	e.WriteString("] /Count ")
	e.writeNumber(float64(t.count))
	e.WriteString(" >>")
}

// PageTreeBuilder describes a page tree node. Its /Count is computed when
// the document is finished.
type PageTreeBuilder struct {
	d     *Document
	ref   Ref
	scope scope
	err   error

	t pageTree
}

// PageTree begins a page tree node.
func (d *Document) PageTree(ref Ref) *PageTreeBuilder {
	b := &PageTreeBuilder{d: d, ref: ref}
	b.err = d.begin("PageTree", ref, KindPageTree)
	return b
}

// Parent sets the parent node. The root node has none.
func (b *PageTreeBuilder) Parent(ref Ref) *PageTreeBuilder {
	if b.scope.finished(b.d, "PageTree.Parent", b.ref, &b.err) {
		return b
	}
	b.t.parent = ref
	return b
}

// Kids appends pages or page tree nodes.
func (b *PageTreeBuilder) Kids(refs ...Ref) *PageTreeBuilder {
	for _, r := range refs {
		b.Kid(r)
	}
	return b
}

// Kid appends a single page or page tree node.
func (b *PageTreeBuilder) Kid(ref Ref) *PageTreeBuilder {
	if b.scope.finished(b.d, "PageTree.Kid", b.ref, &b.err) {
		return b
	}
	if ref == b.ref {
		b.setErr(paramError("PageTree.Kid", b.ref, "node cannot be its own kid"))
		return b
	}
	if b.t.hasKid(ref) {
		b.setErr(paramError("PageTree.Kid", b.ref, "kid %d listed twice", ref))
		return b
	}
	b.t.kids = append(b.t.kids, ref)
	return b
}

func (b *PageTreeBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *PageTreeBuilder) Finish() error {
	if b.err != nil {
		return b.err
	}
	if err := b.scope.check("PageTree.Finish", b.ref); err != nil {
		return err
	}
	t := b.t
	t.kids = append([]Ref(nil), b.t.kids...)
	if err := b.d.commit("PageTree.Finish", b.ref, &t); err != nil {
		return err
	}
	b.scope.close()
	return nil
}
