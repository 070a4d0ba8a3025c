package codec

// Blade is the wire form of a single blade.
type Blade struct {
	Coefficient float32 `json:"c"`
	Mask        uint64  `json:"m"`
}

// Multivector is the wire form of a multivector.
//
// Signature holds the name of the signature the blades were computed under.
// Blade order is preserved.
type Multivector struct {
	Signature string  `json:"signature"`
	Blades    []Blade `json:"blades"`
}
