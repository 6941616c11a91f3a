package tokenizer

import (
	"unicode/utf8"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Separator is the field delimiter.
	Separator rune
}

// noSeparator disables field splitting.
const noSeparator rune = -1

// usableSeparator reports whether sep can be matched unambiguously.
// U+FFFD is excluded because invalid input bytes decode to it as well.
func usableSeparator(sep rune) bool {
	return sep >= 0 && utf8.ValidRune(sep) && sep != utf8.RuneError
}

// NewTokenizerWithOptions creates a tokenizer with a custom separator.
//
// Matchers run in order:
// 1. Newlines (CRLF before LF to match the longer sequence first)
// 2. Separator
// 3. A lone CR, emitted as field content
// 4. Field content (everything up to the next separator, CR or LF)
//
// Every rune of the input is covered by one of the matchers. A field may
// therefore arrive as several consecutive Field tokens; the parser joins them.
//
// A separator that is negative, not a valid rune, or U+FFFD never splits:
// each line becomes a single field.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	sep := opts.Separator
	if !usableSeparator(sep) {
		sep = noSeparator
	}

	matchers := []tokenizer.Matcher{
		tokenizer.StringMatcherFunc(TokenNewline, "\r\n"),
		tokenizer.StringMatcherFunc(TokenNewline, "\n"),
	}
	if sep != noSeparator {
		matchers = append(matchers, tokenizer.StringMatcherFunc(TokenSeparator, string(sep)))
	}
	matchers = append(matchers,
		tokenizer.StringMatcherFunc(TokenField, "\r"),
		FieldContentMatcherWithSeparator(sep),
	)

	return tokenizer.NewTokenizerWithoutWhitespace(matchers...)
}

// NewTokenizerWithStreamAndOptions creates a tokenizer from a stream with custom options.
func NewTokenizerWithStreamAndOptions(stream tokenizer.Stream, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(stream)
	return tok
}

// FieldContentMatcherWithSeparator creates a matcher for field content.
// Matches runs of characters that are not the separator, CR, or LF.
//
// Grammar:
//
//	Field = Character+ ;
//	Character = <any character except separator, CR, LF> ;
//
// Uses ByteStream for fast ASCII scanning when available.
func FieldContentMatcherWithSeparator(sep rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if sep >= 0 && sep < 128 {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return fieldContentMatcherByte(byteStream, byte(sep))
			}
		}
		return fieldContentMatcherRune(stream, sep)
	}
}

func fieldContentMatcherByte(stream tokenizer.ByteStream, sep byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok {
			break
		}
		if b == sep || b == '\n' || b == '\r' {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenField, []rune(string(value)))
}

func fieldContentMatcherRune(stream tokenizer.Stream, sep rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if r == sep || r == '\n' || r == '\r' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenField, value)
}
