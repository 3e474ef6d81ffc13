// Package parse parses propositional expression text into IR nodes.
//
// # Usage
//
//	node, err := parse.ParseString("a&(b|~c)")
//	if err != nil {
//	    return err
//	}
//
// The grammar restricts each parenthesized group to one operator: the
// elements of a group are joined either all by & or all by |, and
// mixing the two without nested parentheses is an error. Negation ~
// binds to exactly the following atom or group. The top level is an
// implicit group.
//
// All failures wrap ErrParse and carry a position; no partial tree is
// returned.
//
// # Related Packages
//
//   - github.com/signadot/prop-format/go-prop/ir - IR representation
//   - github.com/signadot/prop-format/go-prop/encode - Encode IR to text
//   - github.com/signadot/prop-format/go-prop/token - Tokenization
package parse
