package codec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm applied to encoded bytes.
type Compression uint8

const (
	// CompressionNone indicates no compression.
	CompressionNone Compression = 0
	// CompressionLZ4 indicates LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD indicates ZSTD compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Unknown(%d)", c)
	}
}

// ParseCompression returns the compression named s.
func ParseCompression(s string) (Compression, bool) {
	switch s {
	case "none":
		return CompressionNone, true
	case "lz4":
		return CompressionLZ4, true
	case "zstd":
		return CompressionZSTD, true
	default:
		return CompressionNone, false
	}
}

// ZSTD encoder/decoder pools
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(MaxDecompressedSize))
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// MaxDecompressedSize bounds the size a compression envelope may claim.
const MaxDecompressedSize = 64 << 20

// lz4MaxRatio bounds how far an LZ4 block can expand.
const lz4MaxRatio = 255

// Format: [UncompressedSize uint32][CompressedSize uint32][Data...]
// CompressedSize == 0 means the payload is stored raw.
const headerSize = 8

// Compress wraps data in a compression envelope.
//
// CompressionNone returns data unchanged. Otherwise the result always carries
// the header; payloads that do not shrink by at least 10% are stored raw.
func Compress(data []byte, c Compression) ([]byte, error) {
	if c == CompressionNone {
		return data, nil
	}

	var compressed []byte
	var err error

	switch c {
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed = compressZSTD(data)
	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
	if err != nil {
		return nil, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		result := make([]byte, headerSize+len(data))
		binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
		binary.LittleEndian.PutUint32(result[4:], 0)
		copy(result[headerSize:], data)
		return result, nil
	}

	result := make([]byte, headerSize+len(compressed))
	binary.LittleEndian.PutUint32(result[0:], uint32(len(data)))
	binary.LittleEndian.PutUint32(result[4:], uint32(len(compressed)))
	copy(result[headerSize:], compressed)
	return result, nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))

	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

func compressZSTD(data []byte) []byte {
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	return enc.EncodeAll(data, nil)
}

// Decompress reverses Compress.
func Decompress(data []byte, c Compression) ([]byte, error) {
	if c == CompressionNone {
		return data, nil
	}
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: envelope too small for header", ErrCorrupt)
	}

	uncompressedSize := binary.LittleEndian.Uint32(data[0:])
	compressedSize := binary.LittleEndian.Uint32(data[4:])
	payload := data[headerSize:]

	if compressedSize == 0 {
		if uint32(len(payload)) != uncompressedSize {
			return nil, fmt.Errorf("%w: raw payload size mismatch", ErrCorrupt)
		}
		return payload, nil
	}
	if uint32(len(payload)) != compressedSize {
		return nil, fmt.Errorf("%w: compressed payload size mismatch", ErrCorrupt)
	}
	// The header is untrusted; reject claims before sizing any buffer.
	if uncompressedSize > MaxDecompressedSize {
		return nil, fmt.Errorf("%w: claimed size %d exceeds limit", ErrCorrupt, uncompressedSize)
	}

	switch c {
	case CompressionLZ4:
		if uint64(uncompressedSize) > uint64(len(payload))*lz4MaxRatio+64 {
			return nil, fmt.Errorf("%w: claimed size %d exceeds lz4 bound", ErrCorrupt, uncompressedSize)
		}
		result := make([]byte, uncompressedSize)
		n, err := lz4.UncompressBlock(payload, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return result, nil

	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(payload, nil)
		if err != nil {
			return nil, err
		}
		if uint32(len(decoded)) != uncompressedSize {
			return nil, fmt.Errorf("%w: decompressed size mismatch", ErrCorrupt)
		}
		return decoded, nil

	default:
		return nil, fmt.Errorf("unsupported compression: %v", c)
	}
}
