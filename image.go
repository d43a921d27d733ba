package pdfwriter

import "math"

// ColorSpace is a device colour space for image samples.
type ColorSpace string

const (
	DeviceRGB  ColorSpace = "DeviceRGB"
	DeviceGray ColorSpace = "DeviceGray"
)

// components returns the number of samples per pixel.
func (cs ColorSpace) components() int {
	switch cs {
	case DeviceRGB:
		return 3
	case DeviceGray:
		return 1
	}
	return 0
}

type imageXObject struct {
	width, height    int
	bitsPerComponent int
	colorSpace       ColorSpace
	filter           Filter
	smask            Ref
	data             []byte
}

// pixelBytes returns w*h*n for positive arguments, or false if the product
// does not fit in an int.
func pixelBytes(w, h, n int) (int, bool) {
	if w > math.MaxInt/h/n {
		return 0, false
	}
	return w * h * n, true
}

func (im *imageXObject) kind() Kind { return KindImage }

func (im *imageXObject) refs() []refUse {
	if im.smask != 0 {
		return []refUse{{im.smask, kinds(KindImage)}}
	}
	return nil
}

func (im *imageXObject) writeTo(e *encoder) {
	writeStream(e, func() {
		e.WriteString(" /Type /XObject /Subtype /Image /Width ")
		e.writeNumber(float64(im.width))
		e.WriteString(" /Height ")
		e.writeNumber(float64(im.height))
		e.WriteString(" /ColorSpace ")
		e.writeName(string(im.colorSpace))
		e.WriteString(" /BitsPerComponent ")
		e.writeNumber(float64(im.bitsPerComponent))
		if im.smask != 0 {
			e.WriteString(" /SMask ")
			e.writeRef(im.smask)
		}
	}, im.data, im.filter)
}

// ImageBuilder describes an image XObject whose samples are already
// encoded with the filter given to Filter.
type ImageBuilder struct {
	d     *Document
	ref   Ref
	scope scope
	err   error

	im imageXObject
}

// Image begins an image XObject holding a copy of data.
func (d *Document) Image(ref Ref, data []byte) *ImageBuilder {
	b := &ImageBuilder{d: d, ref: ref, im: imageXObject{data: append([]byte(nil), data...)}}
	b.err = d.begin("Image", ref, KindImage)
	return b
}

func (b *ImageBuilder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Width sets the width in samples. It must be positive.
func (b *ImageBuilder) Width(w int) *ImageBuilder {
	if b.scope.finished(b.d, "Image.Width", b.ref, &b.err) {
		return b
	}
	if w <= 0 {
		b.setErr(paramError("Image.Width", b.ref, "width %d", w))
		return b
	}
	b.im.width = w
	return b
}

// Height sets the height in samples. It must be positive.
func (b *ImageBuilder) Height(h int) *ImageBuilder {
	if b.scope.finished(b.d, "Image.Height", b.ref, &b.err) {
		return b
	}
	if h <= 0 {
		b.setErr(paramError("Image.Height", b.ref, "height %d", h))
		return b
	}
	b.im.height = h
	return b
}

// BitsPerComponent sets the sample depth: 1, 2, 4, 8 or 16.
func (b *ImageBuilder) BitsPerComponent(bpc int) *ImageBuilder {
	if b.scope.finished(b.d, "Image.BitsPerComponent", b.ref, &b.err) {
		return b
	}
	switch bpc {
	case 1, 2, 4, 8, 16:
		b.im.bitsPerComponent = bpc
	default:
		b.setErr(paramError("Image.BitsPerComponent", b.ref, "%d bits per component", bpc))
	}
	return b
}

func (b *ImageBuilder) ColorSpace(cs ColorSpace) *ImageBuilder {
	if b.scope.finished(b.d, "Image.ColorSpace", b.ref, &b.err) {
		return b
	}
	if cs.components() == 0 {
		b.setErr(paramError("Image.ColorSpace", b.ref, "unknown colour space %q", cs))
		return b
	}
	b.im.colorSpace = cs
	return b
}

// Filter names the encoding of the data passed to Image.
func (b *ImageBuilder) Filter(f Filter) *ImageBuilder {
	if b.scope.finished(b.d, "Image.Filter", b.ref, &b.err) {
		return b
	}
	b.im.filter = f
	return b
}

// SMask links a soft-mask image giving the opacity of each pixel.
func (b *ImageBuilder) SMask(ref Ref) *ImageBuilder {
	if b.scope.finished(b.d, "Image.SMask", b.ref, &b.err) {
		return b
	}
	if ref == b.ref {
		b.setErr(paramError("Image.SMask", b.ref, "image cannot be its own mask"))
		return b
	}
	b.im.smask = ref
	return b
}

func (b *ImageBuilder) Finish() error {
	if b.err != nil {
		return b.err
	}
	if err := b.scope.check("Image.Finish", b.ref); err != nil {
		return err
	}
	switch {
	case b.im.width == 0:
		return fieldError("Image.Finish", b.ref, "Width")
	case b.im.height == 0:
		return fieldError("Image.Finish", b.ref, "Height")
	case b.im.bitsPerComponent == 0:
		return fieldError("Image.Finish", b.ref, "BitsPerComponent")
	case b.im.colorSpace == "":
		return fieldError("Image.Finish", b.ref, "ColorSpace")
	case len(b.im.data) == 0:
		return fieldError("Image.Finish", b.ref, "data")
	}
	if b.im.filter == FilterNone {
		want, ok := pixelBytes(b.im.width, b.im.height, b.im.colorSpace.components()*b.im.bitsPerComponent)
		if !ok {
			return paramError("Image.Finish", b.ref, "image is %dx%d, too large", b.im.width, b.im.height)
		}
		if len(b.im.data) < (want+7)/8 {
			return paramError("Image.Finish", b.ref, "%d bytes of samples, need %d bits", len(b.im.data), want)
		}
	}
	im := b.im
	if err := b.d.commit("Image.Finish", b.ref, &im); err != nil {
		return err
	}
	b.scope.close()
	return nil
}
