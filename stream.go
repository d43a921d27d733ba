package pdfwriter

import (
	"bytes"
	"compress/zlib"
	"fmt"
)

// Filter names the encoding applied to stream data.
type Filter string

const (
	FilterNone  Filter = ""
	FilterFlate Filter = "FlateDecode"
	FilterDCT   Filter = "DCTDecode"
)

// deflate compresses p with zlib at the given level.
func deflate(p []byte, level int) ([]byte, error) {
	cb := new(bytes.Buffer)
	zw, err := zlib.NewWriterLevel(cb, level)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(p); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return cb.Bytes(), nil
}

// writeStream writes a stream object. entries writes any dictionary entries
// besides /Length and /Filter, each preceded by a space.
func writeStream(e *encoder, entries func(), data []byte, filter Filter) {
	e.WriteString("<<")
	if entries != nil {
		entries()
	}
	if filter != FilterNone {
		e.WriteString(" /Filter ")
		e.writeName(string(filter))
	}
	fmt.Fprintf(e, " /Length %d >>\n", len(data))
	e.WriteString("stream\n")
	e.Write(data)
	e.WriteString("\nendstream")
}

// contentStream holds the finished bytes of a Content.
type contentStream struct {
	data   []byte
	filter Filter
}

func (s *contentStream) kind() Kind { return KindContentStream }

func (s *contentStream) refs() []refUse { return nil }

func (s *contentStream) writeTo(e *encoder) {
	writeStream(e, nil, s.data, s.filter)
}

// ContentStream finishes c, if it is not finished yet, and stores its bytes
// as the object ref. When the document compresses streams, the data is
// deflated if that makes it smaller.
func (d *Document) ContentStream(ref Ref, c *Content) error {
	if err := d.begin("ContentStream", ref, KindContentStream); err != nil {
		return err
	}
	if c.log == nil {
		c.log = d.log
	}
	data, err := c.Finish()
	if err != nil {
		delete(d.pending, ref)
		return newPDFError("ContentStream", ref, err)
	}

	s := &contentStream{data: data}
	if d.cfg.CompressStreams {
		compressed, err := deflate(data, d.cfg.CompressionLevel)
		if err == nil && len(compressed) < len(data)-len(" /Filter /FlateDecode") {
			s.data = compressed
			s.filter = FilterFlate
		}
	}
	return d.commit("ContentStream", ref, s)
}
