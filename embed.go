package pdfwriter

import "fmt"

// Layout is the channel layout of a decoded pixel buffer. Every channel is
// 8 bits.
type Layout int

const (
	LayoutGray Layout = iota + 1
	LayoutGrayAlpha
	LayoutRGB
	LayoutRGBA
)

// Channels returns the number of bytes per pixel.
func (l Layout) Channels() int {
	switch l {
	case LayoutGray:
		return 1
	case LayoutGrayAlpha:
		return 2
	case LayoutRGB:
		return 3
	case LayoutRGBA:
		return 4
	}
	return 0
}

// HasAlpha reports whether the layout carries an alpha channel.
func (l Layout) HasAlpha() bool {
	return l == LayoutGrayAlpha || l == LayoutRGBA
}

func (l Layout) colorSpace() ColorSpace {
	if l == LayoutGray || l == LayoutGrayAlpha {
		return DeviceGray
	}
	return DeviceRGB
}

// SourceFormat is the format an image was decoded from.
type SourceFormat string

const (
	FormatJPEG SourceFormat = "jpeg"
	FormatPNG  SourceFormat = "png"
	FormatGIF  SourceFormat = "gif"
	FormatBMP  SourceFormat = "bmp"
	FormatTIFF SourceFormat = "tiff"
	FormatWebP SourceFormat = "webp"
	// FormatRaw is a raster generated in memory.
	FormatRaw SourceFormat = "raw"
)

// Pixels is a decoded image.
type Pixels struct {
	Width, Height int
	Layout        Layout

	// Pix holds Height rows of Width pixels, Layout.Channels() bytes each.
	// It may be nil when the image is passed through in Encoded form.
	Pix []byte

	// Format is the source format; it only selects the filter.
	Format SourceFormat

	// Encoded is the original file, used by pass-through filters.
	Encoded []byte
}

// EmbeddedImage is the result of EmbedImage.
type EmbeddedImage struct {
	Ref    Ref
	Mask   Ref // zero when the image has no alpha channel
	Width  int
	Height int
	Filter Filter
}

// EmbedImage adds px to the document as an image XObject. The filter is
// chosen from the document's image policy by px.Format. An alpha channel is
// split off into a DeviceGray soft mask with the same size and filter.
func (d *Document) EmbedImage(px *Pixels) (*EmbeddedImage, error) {
	const op = "EmbedImage"
	if d.state == stateFinished {
		return nil, newPDFError(op, 0, ErrDocumentFinished)
	}
	if px.Width <= 0 || px.Height <= 0 {
		return nil, paramError(op, 0, "image is %dx%d", px.Width, px.Height)
	}
	if px.Layout.Channels() == 0 {
		return nil, paramError(op, 0, "unknown pixel layout %d", px.Layout)
	}
	n, ok := pixelBytes(px.Width, px.Height, px.Layout.Channels())
	if !ok {
		return nil, paramError(op, 0, "image is %dx%d, too large", px.Width, px.Height)
	}
	filter, ok := d.cfg.ImagePolicy[px.Format]
	if !ok {
		return nil, newPDFError(op, 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, px.Format))
	}

	var color, alpha []byte
	switch filter {
	case FilterDCT:
		if px.Layout.HasAlpha() {
			return nil, paramError(op, 0, "%s data cannot carry an alpha channel", filter)
		}
		if len(px.Encoded) == 0 {
			return nil, paramError(op, 0, "no encoded data to pass through")
		}
		color = px.Encoded
	case FilterFlate:
		if len(px.Pix) < n {
			return nil, paramError(op, 0, "%d bytes of pixels, need %d", len(px.Pix), n)
		}
		plane, mask := splitAlpha(px)
		var err error
		if color, err = deflate(plane, d.cfg.CompressionLevel); err != nil {
			return nil, newPDFError(op, 0, err)
		}
		if mask != nil {
			if alpha, err = deflate(mask, d.cfg.CompressionLevel); err != nil {
				return nil, newPDFError(op, 0, err)
			}
		}
	default:
		return nil, paramError(op, 0, "no image strategy for filter %q", filter)
	}

	img := &EmbeddedImage{
		Ref:    d.Alloc(),
		Width:  px.Width,
		Height: px.Height,
		Filter: filter,
	}
	if alpha != nil {
		img.Mask = d.Alloc()
	}
	d.log.Debug("embedding image", "format", px.Format, "filter", filter,
		"width", px.Width, "height", px.Height, "mask", img.Mask != 0)

	b := d.Image(img.Ref, color).
		Width(px.Width).
		Height(px.Height).
		ColorSpace(px.Layout.colorSpace()).
		BitsPerComponent(8).
		Filter(filter)
	if img.Mask != 0 {
		b.SMask(img.Mask)
	}
	if err := b.Finish(); err != nil {
		return nil, err
	}

	if img.Mask != 0 {
		err := d.Image(img.Mask, alpha).
			Width(px.Width).
			Height(px.Height).
			ColorSpace(DeviceGray).
			BitsPerComponent(8).
			Filter(filter).
			Finish()
		if err != nil {
			return nil, err
		}
	}
	return img, nil
}

// splitAlpha separates the colour samples from the alpha samples. mask is
// nil when the layout has no alpha channel.
func splitAlpha(px *Pixels) (color, mask []byte) {
	n := px.Width * px.Height
	ch := px.Layout.Channels()
	if !px.Layout.HasAlpha() {
		return px.Pix[:n*ch], nil
	}

	cc := ch - 1
	color = make([]byte, 0, n*cc)
	mask = make([]byte, 0, n)
	for i := 0; i < n; i++ {
		p := px.Pix[i*ch : i*ch+ch]
		color = append(color, p[:cc]...)
		mask = append(mask, p[cc])
	}
	return color, mask
}

// Placement is where an image is drawn on a page, in user space units.
type Placement struct {
	X, Y, Width, Height float64
}

// Matrix maps the unit square an image occupies onto the placement.
func (p Placement) Matrix() Matrix {
	return Matrix{p.Width, 0, 0, p.Height, p.X, p.Y}
}

// Fit returns the size of an image of pixelWidth × pixelHeight pixels drawn
// width units wide, keeping its aspect ratio.
func Fit(pixelWidth, pixelHeight int, width float64) (w, h float64) {
	return width, width * float64(pixelHeight) / float64(pixelWidth)
}

// Center places a w × h image in the middle of page.
func Center(page Rect, w, h float64) Placement {
	return Placement{
		X:      page.X1 + (page.Width()-w)/2,
		Y:      page.Y1 + (page.Height()-h)/2,
		Width:  w,
		Height: h,
	}
}
