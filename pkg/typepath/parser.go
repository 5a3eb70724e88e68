// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package typepath

import (
	"fmt"

	"github.com/consensys/go-intwidth/pkg/util/source"
	"github.com/consensys/go-intwidth/pkg/util/source/lex"
)

const (
	// END_OF signals "end of file"
	END_OF uint = iota
	// WHITESPACE signals whitespace (excluding newlines)
	WHITESPACE
	// IDENTIFIER signals a path segment
	IDENTIFIER
	// SEPARATOR signals "::"
	SEPARATOR
)

// Rules for lexing paths.  Observe that newlines are deliberately not
// recognised.
var lexRules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.String(Separator), SEPARATOR),
	lex.Rule(lex.Whitespace(), WHITESPACE),
	lex.Rule(lex.Identifier(), IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parse a string representing a type path, such as "core::primitive::u8" or
// "::std::string::String".  The resulting error, if any, identifies the span
// within the given string at which parsing failed.
func Parse(text string) (Path, error) {
	located, err := ParseLocated([]rune(text))
	if err != nil {
		return Path{}, err
	}
	//
	return located.Path, nil
}

// ParseLocated parses a sequence of runes representing a type path, whilst
// retaining the span of each segment.
func ParseLocated(text []rune) (Located, *source.SyntaxError) {
	lexer := lex.NewLexer(text, lexRules...)
	tokens := lexer.CollectWithout(WHITESPACE)
	// Check whether anything was left unmatched
	if lexer.Remaining() > 0 {
		start := int(lexer.Index())
		return Located{}, source.NewSyntaxError(source.NewSpan(start, start+1),
			fmt.Sprintf("unexpected character '%c'", text[start]))
	}
	//
	p := parser{text, tokens, 0}
	//
	return p.parsePath()
}

type parser struct {
	text   []rune
	tokens []lex.Token
	index  int
}

func (p *parser) parsePath() (Located, *source.SyntaxError) {
	var (
		located Located
		segment lex.Token
		err     *source.SyntaxError
	)
	// Check for leading separator
	if p.lookahead().Kind == SEPARATOR {
		located.absolute = true
		p.index++
	}
	// Must have at least one segment
	for {
		if segment, err = p.expect(IDENTIFIER, "expected identifier"); err != nil {
			return Located{}, err
		}
		//
		located.segments = append(located.segments, p.textOf(segment))
		located.Spans = append(located.Spans, segment.Span)
		// Continue for as long as there are separators
		next := p.lookahead()
		//
		switch next.Kind {
		case SEPARATOR:
			p.index++
		case END_OF:
			return located, nil
		default:
			return Located{}, p.syntaxError(next, "expected \"::\"")
		}
	}
}

// Peek at the next token without consuming it.  Observe that the lexer always
// terminates the token stream with END_OF.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *parser) expect(kind uint, msg string) (lex.Token, *source.SyntaxError) {
	next := p.lookahead()
	//
	if next.Kind != kind {
		return next, p.syntaxError(next, msg)
	}
	//
	p.index++
	//
	return next, nil
}

func (p *parser) textOf(token lex.Token) string {
	return string(p.text[token.Span.Start():token.Span.End()])
}

func (p *parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return source.NewSyntaxError(token.Span, msg)
}
