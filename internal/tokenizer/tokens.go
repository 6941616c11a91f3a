// Package tokenizer provides line and field tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for delimited text.
//
// Quotes carry no meaning: a double quote is ordinary field content.
const (
	// Structural tokens
	TokenSeparator = "Separator" // caller-chosen field separator
	TokenNewline   = "Newline"   // \n or \r\n (line terminator)

	// Field content token
	TokenField = "Field" // run of characters that are neither separator nor LF

	// Special token
	TokenEOF = "EOF" // End of file
)
