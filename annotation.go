package pdfwriter

// AnnotationType is the /Subtype of an annotation.
type AnnotationType string

const (
	AnnotText      AnnotationType = "Text"
	AnnotLink      AnnotationType = "Link"
	AnnotFreeText  AnnotationType = "FreeText"
	AnnotSquare    AnnotationType = "Square"
	AnnotCircle    AnnotationType = "Circle"
	AnnotHighlight AnnotationType = "Highlight"
	AnnotUnderline AnnotationType = "Underline"
)

// ActionType is the /S entry of an action dictionary.
type ActionType string

const (
	ActionURI  ActionType = "URI"
	ActionGoTo ActionType = "GoTo"
)

// An Action is what happens when a link annotation is activated.
type Action struct {
	Type ActionType
	URI  string // for ActionURI
	Dest Ref    // page to show for ActionGoTo
}

func (a *Action) validate(op string, ref Ref) error {
	switch a.Type {
	case ActionURI:
		if a.URI == "" {
			return fieldError(op, ref, "Action.URI")
		}
	case ActionGoTo:
		if a.Dest == 0 {
			return fieldError(op, ref, "Action.Dest")
		}
	case "":
		return fieldError(op, ref, "Action.Type")
	default:
		return paramError(op, ref, "unknown action type %q", a.Type)
	}
	return nil
}

func (a *Action) writeTo(e *encoder) {
	e.WriteString("<< /Type /Action /S ")
	e.writeName(string(a.Type))
	switch a.Type {
	case ActionURI:
		e.WriteString(" /URI ")
		writeLiteral(&e.Buffer, []byte(a.URI))
	case ActionGoTo:
		e.WriteString(" /D [")
		e.writeRef(a.Dest)
		e.WriteString(" /Fit]")
	}
	e.WriteString(" >>")
}

// BorderType is the /S entry of a border style dictionary.
type BorderType string

const (
	BorderSolid     BorderType = "S"
	BorderDashed    BorderType = "D"
	BorderBeveled   BorderType = "B"
	BorderInset     BorderType = "I"
	BorderUnderline BorderType = "U"
)

// A BorderStyle describes the line drawn around an annotation.
type BorderStyle struct {
	Width float64
	Style BorderType
	Dash  []float64 // only for BorderDashed
}

func (bs *BorderStyle) validate(op string, ref Ref) error {
	if !finite(bs.Width) || !finite(bs.Dash...) {
		return paramError(op, ref, "border width and dash lengths must be finite")
	}
	if bs.Width < 0 {
		return paramError(op, ref, "negative border width %v", bs.Width)
	}
	switch bs.Style {
	case "", BorderSolid, BorderBeveled, BorderInset, BorderUnderline:
		if len(bs.Dash) > 0 {
			return paramError(op, ref, "dash array needs dashed border style")
		}
	case BorderDashed:
		for _, v := range bs.Dash {
			if v < 0 {
				return paramError(op, ref, "negative dash length %v", v)
			}
		}
	default:
		return paramError(op, ref, "unknown border style %q", bs.Style)
	}
	return nil
}

func (bs *BorderStyle) writeTo(e *encoder) {
	e.WriteString("<< /Type /Border /W ")
	e.writeNumber(bs.Width)
	if bs.Style != "" {
		e.WriteString(" /S ")
		e.writeName(string(bs.Style))
	}
	if len(bs.Dash) > 0 {
		e.WriteString(" /D ")
		e.writeNumbers(bs.Dash...)
	}
	e.WriteString(" >>")
}

type annotation struct {
	subtype  AnnotationType
	rect     Rect
	contents *string
	color    *[3]float64
	action   *Action
	border   *BorderStyle
}

func (a *annotation) kind() Kind { return KindAnnotation }

func (a *annotation) refs() []refUse {
	if a.action != nil && a.action.Type == ActionGoTo {
		return []refUse{{a.action.Dest, kinds(KindPage)}}
	}
	return nil
}

func (a *annotation) writeTo(e *encoder) {
	e.WriteString("<< /Type /Annot /Subtype ")
	e.writeName(string(a.subtype))
	e.WriteString(" /Rect ")
	e.writeRect(a.rect)
	if a.contents != nil {
		e.WriteString(" /Contents ")
		writeTextString(&e.Buffer, *a.contents)
	}
	if a.color != nil {
		e.WriteString(" /C ")
		e.writeNumbers(a.color[:]...)
	}
	if a.action != nil {
		e.WriteString(" /A ")
		a.action.writeTo(e)
	}
	if a.border != nil {
		e.WriteString(" /BS ")
		a.border.writeTo(e)
	}
	e.WriteString(" >>")
}

// AnnotationBuilder describes one annotation, either inline in a page's
// annotation list or as an indirect object.
type AnnotationBuilder struct {
	d     *Document
	ref   Ref
	op    string
	scope *scope
	err   error
	done  func(*annotation) error

	a annotation
}

// Annotation begins an indirect annotation object, which pages include
// with AnnotationsBuilder.Ref.
func (d *Document) Annotation(ref Ref) *AnnotationBuilder {
	b := &AnnotationBuilder{d: d, ref: ref, op: "Annotation", scope: new(scope)}
	b.err = d.begin("Annotation", ref, KindAnnotation)
	b.done = func(an *annotation) error {
		return d.commit("Annotation.Finish", ref, an)
	}
	return b
}

func (b *AnnotationBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// late reports whether b is already finished, recording the call if so.
func (b *AnnotationBuilder) late(setter string) bool {
	return b.scope.finished(b.d, b.op+"."+setter, b.ref, &b.err)
}

// Subtype sets the annotation type.
func (b *AnnotationBuilder) Subtype(t AnnotationType) *AnnotationBuilder {
	if b.late("Subtype") {
		return b
	}
	if t == "" {
		b.setErr(paramError(b.op+".Subtype", b.ref, "empty subtype"))
		return b
	}
	b.a.subtype = t
	return b
}

// Rect sets the annotation's area on the page.
func (b *AnnotationBuilder) Rect(r Rect) *AnnotationBuilder {
	if b.late("Rect") {
		return b
	}
	if !r.valid() {
		b.setErr(paramError(b.op+".Rect", b.ref, "degenerate rectangle %v", r))
		return b
	}
	b.a.rect = r
	return b
}

// Contents sets the text displayed for the annotation, or its alternate
// description for links.
func (b *AnnotationBuilder) Contents(text string) *AnnotationBuilder {
	if b.late("Contents") {
		return b
	}
	b.a.contents = &text
	return b
}

// ColorRGB sets the annotation colour.
func (b *AnnotationBuilder) ColorRGB(r, g, bl float64) *AnnotationBuilder {
	if b.late("ColorRGB") {
		return b
	}
	if !finite(r, g, bl) {
		b.setErr(paramError(b.op+".ColorRGB", b.ref, "colour components must be finite"))
		return b
	}
	b.a.color = &[3]float64{r, g, bl}
	return b
}

// Action sets the action performed when the annotation is activated.
func (b *AnnotationBuilder) Action(a Action) *AnnotationBuilder {
	if b.late("Action") {
		return b
	}
	if err := a.validate(b.op+".Action", b.ref); err != nil {
		b.setErr(err)
		return b
	}
	b.a.action = &a
	return b
}

// BorderStyle sets the border drawn around the annotation.
func (b *AnnotationBuilder) BorderStyle(bs BorderStyle) *AnnotationBuilder {
	if b.late("BorderStyle") {
		return b
	}
	if err := bs.validate(b.op+".BorderStyle", b.ref); err != nil {
		b.setErr(err)
		return b
	}
	bs.Dash = append([]float64(nil), bs.Dash...)
	b.a.border = &bs
	return b
}

func (b *AnnotationBuilder) Finish() error {
	if b.err != nil {
		return b.err
	}
	op := b.op + ".Finish"
	if err := b.scope.check(op, b.ref); err != nil {
		return err
	}
	if b.a.subtype == "" {
		return fieldError(op, b.ref, "Subtype")
	}
	if b.a.rect == (Rect{}) {
		return fieldError(op, b.ref, "Rect")
	}
	a := b.a
	if err := b.done(&a); err != nil {
		return err
	}
	b.scope.close()
	return nil
}
