package blob

import (
	"fmt"

	"github.com/arloliu/eri/internal/options"
)

// encoderConfig holds the settings shared by Encode and Encoder.
type encoderConfig struct {
	checkUTF8       bool
	initialCapacity int
}

func defaultEncoderConfig() *encoderConfig {
	return &encoderConfig{
		initialCapacity: defaultInitialCapacity,
	}
}

// EncoderOption is a functional option for configuring Encode and Encoder.
type EncoderOption = options.Option[*encoderConfig]

// WithUTF8Check rejects resource strings that are not valid UTF-8 with
// errs.ErrInvalidUTF8. Without it, string bytes are written unchecked.
func WithUTF8Check() EncoderOption {
	return options.NoError(func(c *encoderConfig) {
		c.checkUTF8 = true
	})
}

// WithInitialCapacity sets the number of entries an Encoder reserves room for
// before it needs to grow its staging area. It has no effect on Encode.
func WithInitialCapacity(entries int) EncoderOption {
	return options.New(func(c *encoderConfig) error {
		if entries < 0 {
			return fmt.Errorf("invalid initial capacity: %d", entries)
		}
		c.initialCapacity = entries

		return nil
	})
}

// decoderConfig holds the settings of a Decoder.
type decoderConfig struct {
	strictLength bool
	validateUTF8 bool
}

func defaultDecoderConfig() *decoderConfig {
	return &decoderConfig{
		validateUTF8: true,
	}
}

// DecoderOption is a functional option for configuring NewDecoder.
type DecoderOption = options.Option[*decoderConfig]

// WithStrictLength makes NewDecoder walk the strings block and require the
// buffer length to match the encoded size exactly. A longer buffer fails with
// errs.ErrTrailingData, a shorter one with errs.ErrTruncatedBuffer.
//
// Without it, bytes after the strings block are ignored and truncation is
// only reported by the extraction that reaches it.
func WithStrictLength() DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		c.strictLength = true
	})
}

// WithUTF8Validation enables or disables UTF-8 validation of resource strings.
// Default is enabled; when disabled, string bytes are returned as-is.
func WithUTF8Validation(enabled bool) DecoderOption {
	return options.NoError(func(c *decoderConfig) {
		c.validateUTF8 = enabled
	})
}
