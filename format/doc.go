// Package format names the serialization formats for propositional
// expressions.
//
// # Usage
//
//	f, err := format.ParseFormat("prop")
//	if err != nil {
//	    return err
//	}
//
// PropFormat is the textual grammar; JSONFormat is the JSON mirror of
// the expression IR.
//
// # Related Packages
//
//   - github.com/signadot/prop-format/go-prop/parse - Parse text to IR
//   - github.com/signadot/prop-format/go-prop/encode - Encode IR to text
package format
