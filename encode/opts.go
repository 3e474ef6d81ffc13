package encode

import "github.com/signadot/prop-format/go-prop/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeSpaced pads operators with spaces. Whitespace is ignored by
// the tokenizer, so spaced output still round-trips.
func EncodeSpaced(v bool) EncodeOption {
	return func(es *EncState) { es.spaced = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
