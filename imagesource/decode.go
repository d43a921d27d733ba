package imagesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/andybalholm/pdfwriter"
	"github.com/andybalholm/pdfwriter/logger"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load fetches the image id and decodes it.
func Load(ctx context.Context, f Fetcher, id string) (*pdfwriter.Pixels, error) {
	data, err := f.Fetch(ctx, id)
	if err != nil {
		logger.Error("image fetch failed", "id", id, "err", err)
		return nil, &StageError{Stage: StageFetch, ID: id, Err: err}
	}
	px, err := Decode(data)
	if err != nil {
		logger.Error("image decode failed", "id", id, "err", err)
		return nil, &StageError{Stage: StageDecode, ID: id, Err: err}
	}
	return px, nil
}

// Decode detects the format of data and decodes it. JPEG files are not
// decoded; only their dimensions are read, since pdfwriter embeds them
// unchanged. CMYK JPEGs are not supported.
func Decode(data []byte) (*pdfwriter.Pixels, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("imagesource: %s image is %dx%d", format, cfg.Width, cfg.Height)
	}

	if format == "jpeg" {
		var layout pdfwriter.Layout
		switch cfg.ColorModel {
		case color.GrayModel:
			layout = pdfwriter.LayoutGray
		case color.YCbCrModel:
			layout = pdfwriter.LayoutRGB
		default:
			return nil, fmt.Errorf("%w: jpeg colour model %T", ErrUnsupportedFormat, cfg.ColorModel)
		}
		return &pdfwriter.Pixels{
			Width:   cfg.Width,
			Height:  cfg.Height,
			Layout:  layout,
			Format:  pdfwriter.FormatJPEG,
			Encoded: data,
		}, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return FromImage(img, pdfwriter.SourceFormat(format)), nil
}

// FromImage converts img to 8-bit pixels. Gray images stay gray; the
// result has an alpha channel only if some pixel is not fully opaque.
func FromImage(img image.Image, format pdfwriter.SourceFormat) *pdfwriter.Pixels {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	px := &pdfwriter.Pixels{Width: w, Height: h, Format: format}
	opaque := isOpaque(img)

	if opaque && isGray(img.ColorModel()) {
		px.Layout = pdfwriter.LayoutGray
		px.Pix = make([]byte, 0, w*h)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
				px.Pix = append(px.Pix, g.Y)
			}
		}
		return px
	}

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	if !opaque {
		px.Layout = pdfwriter.LayoutRGBA
		px.Pix = nrgba.Pix
		return px
	}

	px.Layout = pdfwriter.LayoutRGB
	px.Pix = make([]byte, 0, w*h*3)
	for i := 0; i < len(nrgba.Pix); i += 4 {
		px.Pix = append(px.Pix, nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2])
	}
	return px
}

func isGray(m color.Model) bool {
	return m == color.GrayModel || m == color.Gray16Model
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
