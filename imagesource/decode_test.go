package imagesource

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/andybalholm/pdfwriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	translucent := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	translucent.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 128})
	translucent.SetNRGBA(1, 0, color.NRGBA{0, 0, 255, 255})

	opaque := image.NewRGBA(image.Rect(0, 0, 2, 1))
	opaque.SetRGBA(0, 0, color.RGBA{10, 20, 30, 255})
	opaque.SetRGBA(1, 0, color.RGBA{40, 50, 60, 255})

	gray := image.NewGray(image.Rect(0, 0, 3, 1))
	gray.Pix = []byte{0, 128, 255}

	var bmpData bytes.Buffer
	require.NoError(t, bmp.Encode(&bmpData, opaque))

	tests := []struct {
		name   string
		data   []byte
		layout pdfwriter.Layout
		format pdfwriter.SourceFormat
		width  int
		pix    []byte
	}{
		{"png with alpha", encodePNG(t, translucent), pdfwriter.LayoutRGBA, pdfwriter.FormatPNG, 2,
			[]byte{255, 0, 0, 128, 0, 0, 255, 255}},
		{"opaque png", encodePNG(t, opaque), pdfwriter.LayoutRGB, pdfwriter.FormatPNG, 2,
			[]byte{10, 20, 30, 40, 50, 60}},
		{"gray png", encodePNG(t, gray), pdfwriter.LayoutGray, pdfwriter.FormatPNG, 3,
			[]byte{0, 128, 255}},
		{"bmp", bmpData.Bytes(), pdfwriter.LayoutRGB, pdfwriter.FormatBMP, 2,
			[]byte{10, 20, 30, 40, 50, 60}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, err := Decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.width, px.Width)
			assert.Equal(t, 1, px.Height)
			assert.Equal(t, tt.layout, px.Layout)
			assert.Equal(t, tt.format, px.Format)
			assert.Equal(t, tt.pix, px.Pix)
			assert.Nil(t, px.Encoded)
		})
	}
}

func TestDecodeJPEGKeepsEncodedData(t *testing.T) {
	tests := []struct {
		name   string
		img    image.Image
		layout pdfwriter.Layout
	}{
		{"colour", image.NewRGBA(image.Rect(0, 0, 16, 8)), pdfwriter.LayoutRGB},
		{"gray", image.NewGray(image.Rect(0, 0, 16, 8)), pdfwriter.LayoutGray},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, jpeg.Encode(&buf, tt.img, nil))

			px, err := Decode(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, 16, px.Width)
			assert.Equal(t, 8, px.Height)
			assert.Equal(t, tt.layout, px.Layout)
			assert.Equal(t, pdfwriter.FormatJPEG, px.Format)
			assert.Equal(t, buf.Bytes(), px.Encoded)
			assert.Nil(t, px.Pix)
		})
	}
}

func TestDecodeGIFWithTransparency(t *testing.T) {
	palette := color.Palette{color.Transparent, color.RGBA{255, 255, 255, 255}}
	img := image.NewPaletted(image.Rect(0, 0, 2, 2), palette)
	img.SetColorIndex(1, 1, 1)
	var buf bytes.Buffer
	require.NoError(t, gif.Encode(&buf, img, nil))

	px, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, pdfwriter.FormatGIF, px.Format)
	assert.Equal(t, pdfwriter.LayoutRGBA, px.Layout)
	require.Len(t, px.Pix, 16)
	assert.Equal(t, byte(0), px.Pix[3], "transparent pixel")
	assert.Equal(t, []byte{255, 255, 255, 255}, px.Pix[12:16])
}

func TestDecodeRejectsUnknownData(t *testing.T) {
	_, err := Decode([]byte("definitely not an image"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	fetcher := FetcherFunc(func(ctx context.Context, id string) ([]byte, error) {
		switch id {
		case "good.png":
			return encodePNG(t, image.NewGray(image.Rect(0, 0, 4, 4))), nil
		case "bad.png":
			return []byte("garbage"), nil
		}
		return nil, ErrNotFound
	})
	ctx := context.Background()

	px, err := Load(ctx, fetcher, "good.png")
	require.NoError(t, err)
	assert.Equal(t, pdfwriter.LayoutGray, px.Layout)
	assert.Len(t, px.Pix, 16)

	_, err = Load(ctx, fetcher, "missing.png")
	var se *StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageFetch, se.Stage)
	assert.Equal(t, "missing.png", se.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Load(ctx, fetcher, "bad.png")
	require.ErrorAs(t, err, &se)
	assert.Equal(t, StageDecode, se.Stage)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestDecodedImageEmbeds(t *testing.T) {
	translucent := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range translucent.Pix {
		translucent.Pix[i] = 255
	}
	translucent.SetNRGBA(2, 1, color.NRGBA{0, 0, 0, 0})

	px, err := Decode(encodePNG(t, translucent))
	require.NoError(t, err)

	d, err := pdfwriter.New()
	require.NoError(t, err)
	img, err := d.EmbedImage(px)
	require.NoError(t, err)
	assert.NotZero(t, img.Mask)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	assert.Equal(t, pdfwriter.FilterFlate, img.Filter)
}
