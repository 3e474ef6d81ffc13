// Package encode renders expression IR nodes to text.
//
// # Usage
//
//	err := encode.Encode(node, os.Stdout)
//	s := encode.MustString(node)
//
//	// JSON mirror of the IR
//	err = encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
//	// terminal colors
//	err = encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// Encoding and parsing are inverse up to structural equality: parsing
// encoded output reproduces the input tree.
//
// # Related Packages
//
//   - github.com/signadot/prop-format/go-prop/ir - IR representation
//   - github.com/signadot/prop-format/go-prop/parse - Parse text to IR
package encode
