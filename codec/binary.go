package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

const (
	binaryMagic   = "CLFM"
	binaryVersion = 1
)

var (
	// ErrUnsupportedType is returned when a codec cannot handle the given value.
	ErrUnsupportedType = errors.New("codec: unsupported type")

	// ErrCorrupt is returned when encoded data is malformed.
	ErrCorrupt = errors.New("codec: corrupt data")
)

// Binary is a compact binary codec for Multivector values.
//
// Format:
//
//	[magic "CLFM"][version u8]
//	[uvarint len][signature name]
//	[uvarint count]{[uvarint mask][coefficient f32 LE]}*count
type Binary struct{}

// Marshal encodes a Multivector or *Multivector.
func (Binary) Marshal(v any) ([]byte, error) {
	var m *Multivector
	switch x := v.(type) {
	case Multivector:
		m = &x
	case *Multivector:
		if x == nil {
			return nil, fmt.Errorf("%w: nil *Multivector", ErrUnsupportedType)
		}
		m = x
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	buf := make([]byte, 0, len(binaryMagic)+1+binary.MaxVarintLen64+len(m.Signature)+len(m.Blades)*8)
	buf = append(buf, binaryMagic...)
	buf = append(buf, binaryVersion)

	buf = binary.AppendUvarint(buf, uint64(len(m.Signature)))
	buf = append(buf, m.Signature...)

	buf = binary.AppendUvarint(buf, uint64(len(m.Blades)))
	for _, b := range m.Blades {
		buf = binary.AppendUvarint(buf, b.Mask)
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(b.Coefficient))
	}
	return buf, nil
}

// Unmarshal decodes data into a *Multivector.
func (Binary) Unmarshal(data []byte, v any) error {
	m, ok := v.(*Multivector)
	if !ok || m == nil {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}

	if len(data) < len(binaryMagic)+1 || string(data[:len(binaryMagic)]) != binaryMagic {
		return fmt.Errorf("%w: bad magic", ErrCorrupt)
	}
	data = data[len(binaryMagic):]
	if data[0] != binaryVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrCorrupt, data[0])
	}
	data = data[1:]

	nameLen, n := binary.Uvarint(data)
	if n <= 0 {
		return fmt.Errorf("%w: invalid signature length", ErrCorrupt)
	}
	data = data[n:]
	if uint64(len(data)) < nameLen {
		return fmt.Errorf("%w: short buffer for signature", ErrCorrupt)
	}
	name := string(data[:nameLen])
	data = data[nameLen:]

	count, n := binary.Uvarint(data)
	if n <= 0 {
		return fmt.Errorf("%w: invalid blade count", ErrCorrupt)
	}
	data = data[n:]
	// Each blade needs at least one mask byte and four coefficient bytes.
	if count > uint64(len(data))/5 {
		return fmt.Errorf("%w: blade count %d exceeds data", ErrCorrupt, count)
	}

	blades := make([]Blade, 0, count)
	for range count {
		mask, n := binary.Uvarint(data)
		if n <= 0 {
			return fmt.Errorf("%w: invalid mask", ErrCorrupt)
		}
		data = data[n:]
		if len(data) < 4 {
			return fmt.Errorf("%w: short buffer for coefficient", ErrCorrupt)
		}
		coeff := math.Float32frombits(binary.LittleEndian.Uint32(data))
		data = data[4:]
		blades = append(blades, Blade{Coefficient: coeff, Mask: mask})
	}
	if len(data) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrCorrupt, len(data))
	}

	m.Signature = name
	m.Blades = blades
	return nil
}

// Name returns the unique name of the codec ("binary").
func (Binary) Name() string { return "binary" }
