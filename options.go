package cliffgo

import (
	"github.com/hupe1980/cliffgo/codec"
)

type options struct {
	codec       codec.Codec
	compression codec.Compression
	logger      *Logger
}

// Option configures an Algebra.
type Option func(*options)

// WithCodec configures the codec used by Encode and Decode.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression wraps the codec's output in a compression envelope.
//
// Example:
//
//	alg := cliffgo.New(sig,
//	    cliffgo.WithCodec(codec.Binary{}),
//	    cliffgo.WithCompression(codec.CompressionZSTD),
//	)
func WithCompression(c codec.Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging (uses NoopLogger).
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func defaultOptions() options {
	return options{
		codec:       codec.Default,
		compression: codec.CompressionNone,
		logger:      NoopLogger(),
	}
}
