// Package parser implements line-oriented parsing of delimited text.
//
// Grammar:
//
//	File   = { Line } ;
//	Line   = [ Field { Separator Field } ] LineTerminator ;
//	Field  = { Character } ;
//
// Lines holding only whitespace produce no record. Fields are trimmed of
// surrounding whitespace. Quotes carry no meaning.
package parser

import (
	"strings"
	"unicode/utf8"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-typedcsv/internal/tokenizer"
)

// Options configures the parser behavior.
type Options struct {
	// Separator is the field delimiter.
	Separator rune
}

// Record is one non-blank input line split into trimmed fields.
type Record struct {
	// Line is the 1-indexed input line the record was read from.
	Line int
	// Fields holds the trimmed fields in input order.
	Fields []string
}

// Parser splits input into records using a single token lookahead.
//
// Token values are decoded runes, so field text is sliced from input by
// byte offset instead. Invalid UTF-8 therefore survives unchanged.
type Parser struct {
	tokenizer   *shapetokenizer.Tokenizer
	current     *shapetokenizer.Token
	hasToken    bool
	opts        Options
	currentLine int

	input string
	start int // byte offset of current
	end   int // byte offset just past current
}

// NewParserWithOptions creates a parser with custom options.
func NewParserWithOptions(input string, opts Options) *Parser {
	tok := tokenizer.NewTokenizerWithStreamAndOptions(shapetokenizer.NewStream(input), tokenizer.Options{
		Separator: opts.Separator,
	})

	p := &Parser{
		tokenizer:   &tok,
		opts:        opts,
		currentLine: 1,
		input:       input,
	}
	p.advance() // Load first token
	return p
}

// Parse reads every line and returns the non-blank ones as records.
// Parsing never fails; every input produces a (possibly empty) slice.
func (p *Parser) Parse() []Record {
	records := make([]Record, 0, 16)

	for p.hasToken {
		line := p.currentLine
		fields, blank := p.parseLine()
		if blank {
			continue
		}
		records = append(records, Record{Line: line, Fields: fields})
	}

	return records
}

// parseLine consumes one line up to and including its terminator.
// It reports blank when the raw line holds nothing but whitespace.
//
// Grammar:
//
//	Line = [ Field { Separator Field } ] LineTerminator ;
func (p *Parser) parseLine() (fields []string, blank bool) {
	lineStart := p.start
	fields = make([]string, 0, 8)

	fields = append(fields, p.parseField())
	for p.peekKind(tokenizer.TokenSeparator) {
		p.advance() // consume separator
		fields = append(fields, p.parseField())
	}
	raw := p.input[lineStart:p.start]

	// EOF is also a valid line terminator
	switch {
	case p.peekKind(tokenizer.TokenNewline):
		p.advance()
		p.currentLine++
	case p.hasToken:
		// Unknown token kind; drop it so the loop always progresses.
		p.advance()
	}

	return fields, strings.TrimSpace(raw) == ""
}

// parseField consumes consecutive Field tokens and returns their trimmed
// input bytes.
func (p *Parser) parseField() string {
	fieldStart := p.start
	for p.peekKind(tokenizer.TokenField) {
		p.advance()
	}
	return strings.TrimSpace(p.input[fieldStart:p.start])
}

// Helper methods

// peekKind reports whether the current token has the given kind.
func (p *Parser) peekKind(kind string) bool {
	return p.hasToken && p.current != nil && p.current.Kind() == kind
}

// advance moves to next token.
func (p *Parser) advance() {
	p.start = p.end
	token, ok := p.tokenizer.NextToken()
	if ok {
		p.current = token
		p.hasToken = true
		p.end = p.spanEnd(token)
	} else {
		p.hasToken = false
		p.current = nil
		p.end = len(p.input)
		p.start = p.end
	}
}

// spanEnd returns the byte offset just past token, counting from p.start.
// The stream decodes each invalid byte to one U+FFFD, exactly as
// utf8.DecodeRuneInString reports it, so rune counts map back to bytes.
func (p *Parser) spanEnd(token *shapetokenizer.Token) int {
	end := p.start
	for n := utf8.RuneCountInString(token.ValueString()); n > 0 && end < len(p.input); n-- {
		_, size := utf8.DecodeRuneInString(p.input[end:])
		end += size
	}
	return end
}
