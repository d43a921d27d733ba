package pdfwriter

import (
	"errors"
	"fmt"
)

// Build contract violations. These are programming errors: they are returned
// as soon as they are detected and the document should be discarded.
var (
	ErrUnfinishedChild  = errors.New("pdfwriter: child object is still open")
	ErrUnfinishedObject = errors.New("pdfwriter: object was begun but never finished")
	ErrAlreadyFinished  = errors.New("pdfwriter: object is already finished")
	ErrDocumentFinished = errors.New("pdfwriter: document is finished")
	ErrContentFinished  = errors.New("pdfwriter: content stream is finished")
	ErrMissingField     = errors.New("pdfwriter: required field is not set")
	ErrInvalidParam     = errors.New("pdfwriter: invalid parameter")
	ErrUnallocatedRef   = errors.New("pdfwriter: reference was not allocated")
	ErrDuplicateRef     = errors.New("pdfwriter: reference is already bound")
	ErrDanglingRef      = errors.New("pdfwriter: reference to missing object")
	ErrWrongKind        = errors.New("pdfwriter: reference points to the wrong kind of object")
	ErrRefGap           = errors.New("pdfwriter: allocated reference was never bound")
	ErrNoCatalog        = errors.New("pdfwriter: document has no catalog")
	ErrPageTreeCycle    = errors.New("pdfwriter: page tree contains a cycle")
)

// ErrUnsupportedFormat is returned when an image's source format has no
// filter in the image policy.
var ErrUnsupportedFormat = errors.New("pdfwriter: unsupported image format")

// PDFError records the operation and object that failed.
type PDFError struct {
	Op  string // e.g. "Page.Finish", "EmbedImage"
	Ref Ref    // zero when no object is involved
	Err error
}

func (e *PDFError) Error() string {
	if e.Ref != 0 {
		return fmt.Sprintf("pdfwriter.%s (object %d): %v", e.Op, e.Ref, e.Err)
	}
	return fmt.Sprintf("pdfwriter.%s: %v", e.Op, e.Err)
}

func (e *PDFError) Unwrap() error {
	return e.Err
}

func newPDFError(op string, ref Ref, err error) *PDFError {
	return &PDFError{Op: op, Ref: ref, Err: err}
}

// fieldError reports a missing required field.
func fieldError(op string, ref Ref, field string) *PDFError {
	return newPDFError(op, ref, fmt.Errorf("%w: %s", ErrMissingField, field))
}

// paramError reports a value rejected by a setter.
func paramError(op string, ref Ref, format string, args ...interface{}) *PDFError {
	return newPDFError(op, ref, fmt.Errorf("%w: %s", ErrInvalidParam, fmt.Sprintf(format, args...)))
}
