package parse

import (
	"github.com/signadot/prop-format/go-prop/ir"
	"github.com/signadot/prop-format/go-prop/token"
)

type parseOpts struct {
	filename  string
	positions map[*ir.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// WithFilename prefixes errors with a file name.
func WithFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// WithPositions records the source position of each constructed node
// in m.
func WithPositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
