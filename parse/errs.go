package parse

import (
	"errors"
)

// ErrParse is wrapped by every error returned from Parse, including
// lexical errors surfaced from the tokenizer. No partial tree
// accompanies an error.
var ErrParse = errors.New("parse error")
