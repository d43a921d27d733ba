package pdfwriter

// The standard 14 fonts every reader ships with. Their metrics are built in,
// so no font program is embedded.
var standardFonts = map[string]bool{
	"Times-Roman":           true,
	"Times-Bold":            true,
	"Times-Italic":          true,
	"Times-BoldItalic":      true,
	"Helvetica":             true,
	"Helvetica-Bold":        true,
	"Helvetica-Oblique":     true,
	"Helvetica-BoldOblique": true,
	"Courier":               true,
	"Courier-Bold":          true,
	"Courier-Oblique":       true,
	"Courier-BoldOblique":   true,
	"Symbol":                true,
	"ZapfDingbats":          true,
}

// Encoding is the /Encoding of a simple font.
type Encoding string

const (
	// WinAnsiEncoding matches what Content.Show produces.
	WinAnsiEncoding  Encoding = "WinAnsiEncoding"
	StandardEncoding Encoding = ""
)

type font struct {
	baseFont string
	encoding Encoding
}

func (f *font) kind() Kind { return KindFont }

func (f *font) refs() []refUse { return nil }

func (f *font) writeTo(e *encoder) {
	e.WriteString("<< /Type /Font /Subtype /Type1 /BaseFont ")
	e.writeName(f.baseFont)
	if f.encoding != StandardEncoding {
		e.WriteString(" /Encoding ")
		e.writeName(string(f.encoding))
	}
	e.WriteString(" >>")
}

// FontBuilder describes a Type1 font.
type FontBuilder struct {
	d     *Document
	ref   Ref
	scope scope
	err   error

	f font
}

// Type1Font begins a font object for one of the standard 14 fonts. The
// encoding defaults to WinAnsiEncoding, except for Symbol and ZapfDingbats,
// which use their built-in encodings.
func (d *Document) Type1Font(ref Ref) *FontBuilder {
	b := &FontBuilder{d: d, ref: ref, f: font{encoding: WinAnsiEncoding}}
	b.err = d.begin("Type1Font", ref, KindFont)
	return b
}

// BaseFont sets the PostScript name of the font, e.g. "Helvetica".
func (b *FontBuilder) BaseFont(name string) *FontBuilder {
	if b.scope.finished(b.d, "Type1Font.BaseFont", b.ref, &b.err) {
		return b
	}
	if !standardFonts[name] {
		if b.err == nil {
			b.err = paramError("Type1Font.BaseFont", b.ref, "%q is not a standard font", name)
		}
		return b
	}
	b.f.baseFont = name
	if name == "Symbol" || name == "ZapfDingbats" {
		b.f.encoding = StandardEncoding
	}
	return b
}

// Encoding overrides the font encoding.
func (b *FontBuilder) Encoding(enc Encoding) *FontBuilder {
	if b.scope.finished(b.d, "Type1Font.Encoding", b.ref, &b.err) {
		return b
	}
	b.f.encoding = enc
	return b
}

func (b *FontBuilder) Finish() error {
	if b.err != nil {
		return b.err
	}
	if err := b.scope.check("Type1Font.Finish", b.ref); err != nil {
		return err
	}
	if b.f.baseFont == "" {
		return fieldError("Type1Font.Finish", b.ref, "BaseFont")
	}
	f := b.f
	if err := b.d.commit("Type1Font.Finish", b.ref, &f); err != nil {
		return err
	}
	b.scope.close()
	return nil
}
