package pdfwriter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		shouldErr bool
	}{
		{"default config is valid", func(*Config) {}, false},
		{"version 2.0", func(c *Config) { c.Version = "2.0" }, false},
		{"unknown version", func(c *Config) { c.Version = "3.1" }, true},
		{"empty version", func(c *Config) { c.Version = "" }, true},
		{"huffman only", func(c *Config) { c.CompressionLevel = -2 }, false},
		{"best compression", func(c *Config) { c.CompressionLevel = 9 }, false},
		{"level too low", func(c *Config) { c.CompressionLevel = -3 }, true},
		{"level too high", func(c *Config) { c.CompressionLevel = 10 }, true},
		{"nil image policy", func(c *Config) { c.ImagePolicy = nil }, true},
		{"unknown filter", func(c *Config) { c.ImagePolicy[FormatPNG] = "LZWDecode" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.shouldErr {
				assert.Error(t, err, "expected validation error")
			} else {
				assert.NoError(t, err, "expected validation to pass")
			}
		})
	}
}

func TestNewAppliesOptions(t *testing.T) {
	d, err := New(
		WithVersion("1.4"),
		WithCompressionLevel(9),
		WithCompressStreams(false),
		WithStrictRefs(true),
		WithImagePolicy(map[SourceFormat]Filter{FormatPNG: FilterFlate}),
	)
	if assert.NoError(t, err) {
		assert.Equal(t, "1.4", d.cfg.Version)
		assert.Equal(t, 9, d.cfg.CompressionLevel)
		assert.False(t, d.cfg.CompressStreams)
		assert.True(t, d.cfg.StrictRefs)
		assert.Len(t, d.cfg.ImagePolicy, 1)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	d, err := New(WithCompressionLevel(42))
	assert.Error(t, err)
	assert.Nil(t, d)
}
