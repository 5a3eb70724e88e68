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
package decl

import (
	"fmt"
	"strconv"

	"github.com/consensys/go-intwidth/pkg/util/source"
	"github.com/consensys/go-intwidth/pkg/util/source/lex"
	"github.com/consensys/go-intwidth/pkg/width"
)

const (
	// END_OF signals "end of file"
	END_OF uint = iota
	// WHITESPACE signals whitespace (excluding newlines)
	WHITESPACE
	// NEWLINE signals a line break
	NEWLINE
	// COMMENT signals a line comment
	COMMENT
	// IDENTIFIER signals a name, keyword or type
	IDENTIFIER
	// COLON signals ":"
	COLON
)

const structKeyword = "struct"

// Rules for lexing declaration files.
var lexRules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit(':'), COLON),
	lex.Rule(lex.Unit('\n'), NEWLINE),
	lex.Rule(lex.Whitespace(), WHITESPACE),
	lex.Rule(lex.Comment(';'), COMMENT),
	lex.Rule(lex.Identifier(), IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parse a declaration file into a struct, or produce one or more syntax errors.
// Alongside the struct, a source map is returned which maps each field to the
// span of its name.
func Parse(srcfile *source.File) (*Struct, *source.Map[*Field], []source.SyntaxError) {
	var (
		contents = srcfile.Contents()
		lexer    = lex.NewLexer(contents, lexRules...)
		tokens   = lexer.CollectWithout(WHITESPACE, COMMENT)
	)
	// Check whether anything was left unmatched
	if lexer.Remaining() > 0 {
		start := int(lexer.Index())
		msg := fmt.Sprintf("unexpected character '%c'", contents[start])
		//
		return nil, nil, []source.SyntaxError{*srcfile.SyntaxError(source.NewSpan(start, start+1), msg)}
	}
	//
	p := parser{srcfile, tokens, 0, source.NewSourceMap[*Field](srcfile)}
	//
	s, errs := p.parseStruct()
	//
	return s, p.srcmap, errs
}

type parser struct {
	srcfile *source.File
	tokens  []lex.Token
	index   int
	srcmap  *source.Map[*Field]
}

func (p *parser) parseStruct() (*Struct, []source.SyntaxError) {
	var (
		errors []source.SyntaxError
		names  = make(map[string]*Field)
		s      Struct
	)
	//
	p.skipNewlines()
	// Header
	if err := p.parseHeader(&s); err != nil {
		return nil, []source.SyntaxError{*err}
	}
	// Fields
	for p.skipNewlines(); p.lookahead().Kind != END_OF; p.skipNewlines() {
		field, err := p.parseField()
		//
		if err != nil {
			errors = append(errors, *err)
			// Recover by skipping the remainder of the line.
			p.skipLine()
		} else if _, ok := names[field.Name]; ok {
			errors = append(errors, *p.srcmap.SyntaxError(field, fmt.Sprintf("duplicate field \"%s\"", field.Name)))
		} else {
			names[field.Name] = field
			s.Fields = append(s.Fields, field)
		}
	}
	//
	if len(errors) > 0 {
		return nil, errors
	}
	//
	return &s, nil
}

// Parse "struct NAME" followed by end of line.
func (p *parser) parseHeader(s *Struct) *source.SyntaxError {
	keyword, err := p.expect(IDENTIFIER, "expected \"struct\"")
	if err != nil {
		return err
	} else if p.text(keyword) != structKeyword {
		return p.srcfile.SyntaxError(keyword.Span, "expected \"struct\"")
	}
	//
	name, err := p.expect(IDENTIFIER, "expected struct name")
	if err != nil {
		return err
	}
	//
	s.Name = p.text(name)
	//
	return p.expectEndOfLine()
}

// Parse "NAME : TYPE" followed by end of line.
func (p *parser) parseField() (*Field, *source.SyntaxError) {
	name, err := p.expect(IDENTIFIER, "expected field name")
	if err != nil {
		return nil, err
	}
	//
	if _, err = p.expect(COLON, "expected \":\""); err != nil {
		return nil, err
	}
	//
	typ, err := p.expect(IDENTIFIER, "expected field type")
	if err != nil {
		return nil, err
	}
	//
	bits, signed, err := p.parseIntegerType(typ)
	if err != nil {
		return nil, err
	} else if err = p.expectEndOfLine(); err != nil {
		return nil, err
	}
	//
	field := &Field{p.text(name), bits, signed}
	p.srcmap.Put(field, name.Span)
	//
	return field, nil
}

// Parse an integer type such as "u12" or "i33", where the digits give the
// number of bits required.
func (p *parser) parseIntegerType(token lex.Token) (width.Bits, bool, *source.SyntaxError) {
	var (
		text   = p.text(token)
		signed bool
	)
	//
	switch {
	case len(text) < 2:
		return width.Bits{}, false, p.srcfile.SyntaxError(token.Span, "expected integer type (e.g. u8 or i16)")
	case text[0] == 'i':
		signed = true
	case text[0] == 'u':
		signed = false
	default:
		return width.Bits{}, false, p.srcfile.SyntaxError(token.Span, "expected integer type (e.g. u8 or i16)")
	}
	//
	n, err := strconv.ParseUint(text[1:], 10, 64)
	//
	if err != nil {
		return width.Bits{}, false, p.srcfile.SyntaxError(token.Span, "expected integer type (e.g. u8 or i16)")
	} else if n > 255 {
		return width.Bits{}, false, p.srcfile.SyntaxError(token.Span, "bit width out of range")
	}
	//
	origin := source.NewOrigin(p.srcfile, token.Span)
	//
	return width.NewBitsAt(uint8(n), origin), signed, nil
}

func (p *parser) expectEndOfLine() *source.SyntaxError {
	next := p.lookahead()
	//
	switch next.Kind {
	case NEWLINE:
		p.index++
		return nil
	case END_OF:
		return nil
	default:
		return p.srcfile.SyntaxError(next.Span, "expected end of line")
	}
}

func (p *parser) expect(kind uint, msg string) (lex.Token, *source.SyntaxError) {
	next := p.lookahead()
	//
	if next.Kind != kind {
		return next, p.srcfile.SyntaxError(next.Span, msg)
	}
	//
	p.index++
	//
	return next, nil
}

// Peek at the next token without consuming it.  Observe that the token stream
// is always terminated with END_OF.
func (p *parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *parser) skipNewlines() {
	for p.lookahead().Kind == NEWLINE {
		p.index++
	}
}

func (p *parser) skipLine() {
	for kind := p.lookahead().Kind; kind != NEWLINE && kind != END_OF; kind = p.lookahead().Kind {
		p.index++
	}
}

func (p *parser) text(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}
