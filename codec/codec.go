// Package codec centralizes multivector encoding.
//
// Encoded bytes are self-describing only through the codec name. Callers that
// persist multivectors must record which codec (and compression) produced
// them; changing codecs makes older bytes undecodable.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Names of the form "<codec>+<compression>" (e.g. "binary+zstd") return the
// codec wrapped in a Compressed envelope.
func ByName(name string) (Codec, bool) {
	if base, comp, ok := strings.Cut(name, "+"); ok {
		c, ok := ByName(base)
		if !ok {
			return nil, false
		}
		compression, ok := ParseCompression(comp)
		if !ok || compression == CompressionNone {
			return nil, false
		}
		return Compressed{Codec: c, Compression: compression}, true
	}

	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "binary":
		return Binary{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Compressed wraps a codec with a compression envelope.
type Compressed struct {
	Codec       Codec
	Compression Compression
}

// Marshal encodes v with the wrapped codec and compresses the result.
func (c Compressed) Marshal(v any) ([]byte, error) {
	raw, err := c.Codec.Marshal(v)
	if err != nil {
		return nil, err
	}
	return Compress(raw, c.Compression)
}

// Unmarshal decompresses data and decodes it with the wrapped codec.
func (c Compressed) Unmarshal(data []byte, v any) error {
	raw, err := Decompress(data, c.Compression)
	if err != nil {
		return err
	}
	return c.Codec.Unmarshal(raw, v)
}

// Name returns "<codec>+<compression>", or the wrapped name when uncompressed.
func (c Compressed) Name() string {
	if c.Compression == CompressionNone {
		return c.Codec.Name()
	}
	return c.Codec.Name() + "+" + c.Compression.String()
}
