package imagesource

import (
	"fmt"

	"github.com/andybalholm/pdfwriter"
	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/qr"
)

// QRCode renders content as a size × size pixel gray QR code.
func QRCode(content string, size int) (*pdfwriter.Pixels, error) {
	if size <= 0 {
		return nil, fmt.Errorf("imagesource: QR code size %d", size)
	}
	code, err := qr.Encode(content, qr.M, qr.Auto)
	if err != nil {
		return nil, err
	}
	code, err = barcode.Scale(code, size, size)
	if err != nil {
		return nil, err
	}
	return FromImage(code, pdfwriter.FormatRaw), nil
}
