// Package imagesource provides the collaborators that turn an image
// identifier into decoded pixels for pdfwriter: fetching bytes, decoding
// them and generating barcode rasters.
package imagesource

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("imagesource: image not found")
	ErrUnsupportedFormat = errors.New("imagesource: unsupported image format")
)

// Stage names the collaborator step that failed.
type Stage string

const (
	StageFetch  Stage = "fetch"
	StageDecode Stage = "decode"
)

// StageError reports which stage failed for which image.
type StageError struct {
	Stage Stage
	ID    string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("imagesource: %s %q: %v", e.Stage, e.ID, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
