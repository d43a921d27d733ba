package pdfwriter

import (
	"compress/zlib"

	"github.com/andybalholm/pdfwriter/logger"
	"github.com/go-playground/validator/v10"
)

// Config controls how a Document is serialized.
type Config struct {
	// Version is written into the file header.
	Version string `validate:"oneof=1.4 1.5 1.6 1.7 2.0"`

	// CompressionLevel is the zlib level used for FlateDecode data.
	CompressionLevel int `validate:"min=-2,max=9"`

	// CompressStreams enables FlateDecode for content streams when that
	// makes them smaller.
	CompressStreams bool

	// StrictRefs makes Finish fail when an allocated Ref was never bound,
	// instead of writing it as a free xref entry.
	StrictRefs bool

	// ImagePolicy maps a source format to the filter used to embed it.
	ImagePolicy map[SourceFormat]Filter `validate:"required,dive,oneof=DCTDecode FlateDecode"`

	// Logger receives the document's log messages. When nil, the package
	// logger is used.
	Logger logger.LogFunc
}

// DefaultImagePolicy passes JPEG data through and deflates everything else.
func DefaultImagePolicy() map[SourceFormat]Filter {
	return map[SourceFormat]Filter{
		FormatJPEG: FilterDCT,
		FormatPNG:  FilterFlate,
		FormatGIF:  FilterFlate,
		FormatBMP:  FilterFlate,
		FormatTIFF: FilterFlate,
		FormatWebP: FilterFlate,
		FormatRaw:  FilterFlate,
	}
}

func NewDefaultConfig() *Config {
	return &Config{
		Version:          "1.7",
		CompressionLevel: zlib.DefaultCompression,
		CompressStreams:  true,
		ImagePolicy:      DefaultImagePolicy(),
	}
}

func (cfg *Config) Validate() error {
	return validator.New().Struct(cfg)
}

// Option is a functional option for New.
type Option func(*Config)

// WithVersion sets the header version, e.g. "1.7".
func WithVersion(v string) Option {
	return func(c *Config) {
		c.Version = v
	}
}

// WithCompressionLevel sets the zlib level, from zlib.HuffmanOnly (-2) to
// zlib.BestCompression (9).
func WithCompressionLevel(level int) Option {
	return func(c *Config) {
		c.CompressionLevel = level
	}
}

// WithCompressStreams turns content stream compression on or off.
func WithCompressStreams(on bool) Option {
	return func(c *Config) {
		c.CompressStreams = on
	}
}

// WithStrictRefs forbids holes in the object numbering.
func WithStrictRefs(on bool) Option {
	return func(c *Config) {
		c.StrictRefs = on
	}
}

// WithImagePolicy replaces the format-to-filter table used by EmbedImage.
func WithImagePolicy(policy map[SourceFormat]Filter) Option {
	return func(c *Config) {
		c.ImagePolicy = policy
	}
}

// WithLogger makes the document, and the content streams it creates or
// stores, log through f instead of the package logger.
func WithLogger(f logger.LogFunc) Option {
	return func(c *Config) {
		c.Logger = f
	}
}
