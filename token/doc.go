// Package token tokenizes the textual grammar for propositional
// expressions.
//
// Tokens are the punctuation bytes ( ) & | ~ 0 1 and variable names,
// where a name is a maximal run of letters. Whitespace terminates an
// in-progress name and is otherwise ignored; any other character is a
// lexical error (ErrSymbol).
//
// Tokenizer yields tokens lazily via Next; Tokenize collects the whole
// stream. Errors carry a Pos resolving to line/column with a context
// snippet.
package token
