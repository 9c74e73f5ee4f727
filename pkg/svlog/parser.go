// Copyright Brightclark Software Inc.
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
package svlog

import (
	"fmt"
	"strconv"

	"github.com/brightclark/moore/pkg/util/source"
	"github.com/brightclark/moore/pkg/util/source/lex"
)

// Parse accepts a given source file and parses it into a program holding zero
// or more modules, or some number of syntax errors.
func Parse(srcfile *source.File) (Program, []source.SyntaxError) {
	parser := NewParser(srcfile)
	// Parse modules
	return parser.Parse()
}

// Parser is a recursive descent parser for the supported declaration subset
// of SystemVerilog.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

// NewParser constructs a new parser for a given source file.
func NewParser(srcfile *source.File) *Parser {
	return &Parser{srcfile, nil, 0}
}

// Parse the given source file into a sequence of zero or more modules and/or
// some number of syntax errors.
func (p *Parser) Parse() (Program, []source.SyntaxError) {
	var (
		program Program
		module  *Module
		errors  []source.SyntaxError
	)
	// Convert source file into tokens
	if p.tokens, errors = Lex(*p.srcfile); len(errors) > 0 {
		return program, errors
	}
	// Continue going until all consumed
	for p.lookahead().Kind != END_OF {
		if module, errors = p.parseModule(); len(errors) > 0 {
			return program, errors
		}
		//
		program.Modules = append(program.Modules, module)
	}
	//
	return program, nil
}

func (p *Parser) parseModule() (*Module, []source.SyntaxError) {
	var (
		start = p.index
		name  string
		decls []Declaration
		decl  Declaration
		errs  []source.SyntaxError
	)
	// Parse module declaration
	if errs = p.parseKeyword("module"); len(errs) > 0 {
		return nil, errs
	}
	// Parse module name
	if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	// Parse (optional, empty) port list
	if p.match(LBRACE) {
		if _, errs = p.expect(RBRACE); len(errs) > 0 {
			return nil, errs
		}
	}
	//
	if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return nil, errs
	}
	// Parse declarations until "endmodule"
	for !p.followsKeyword("endmodule") {
		if p.lookahead().Kind == END_OF {
			return nil, p.syntaxErrors(p.lookahead(), "unexpected end of file")
		}
		//
		if decl, errs = p.parseDeclaration(); len(errs) > 0 {
			return nil, errs
		}
		//
		decls = append(decls, decl)
	}
	// Advance past "endmodule"
	p.match(IDENTIFIER)
	// Done
	return NewModule(name, decls, p.spanOf(start, p.index-1)), nil
}

// Parse a single signal declaration "type name;".
func (p *Parser) parseDeclaration() (Declaration, []source.SyntaxError) {
	var (
		start    = p.index
		datatype Type
		name     string
		errs     []source.SyntaxError
	)
	//
	if datatype, errs = p.parseType(); len(errs) > 0 {
		return Declaration{}, errs
	} else if name, errs = p.parseIdentifier(); len(errs) > 0 {
		return Declaration{}, errs
	} else if _, errs = p.expect(SEMICOLON); len(errs) > 0 {
		return Declaration{}, errs
	}
	//
	return NewDeclaration(name, datatype, p.spanOf(start, p.index-1)), nil
}

func (p *Parser) parseType() (Type, []source.SyntaxError) {
	var (
		lookahead = p.lookahead()
		first     string
		errs      []source.SyntaxError
	)
	//
	if first, errs = p.parseIdentifier(); len(errs) > 0 {
		return nil, errs
	}
	//
	switch first {
	case "bit":
		return p.parseScalarOrVector(BIT, lookahead)
	case "logic":
		return p.parseScalarOrVector(LOGIC, lookahead)
	case "int":
		return NewIntType(INT, lookahead.Span), nil
	case "integer":
		return NewIntType(INTEGER, lookahead.Span), nil
	case "struct":
		return p.parseStruct(lookahead)
	case "enum":
		return p.parseEnum(lookahead)
	default:
		return nil, p.syntaxErrors(lookahead, "unknown type")
	}
}

// Parse the remainder of a "bit" or "logic" type, which is either nothing at
// all (single-bit scalar) or a packed range "[msb:lsb]".
func (p *Parser) parseScalarOrVector(kind ScalarKind, first lex.Token) (Type, []source.SyntaxError) {
	var (
		msb, lsb int
		last     lex.Token
		errs     []source.SyntaxError
	)
	//
	if !p.match(LSQUARE) {
		return NewBitType(kind, first.Span), nil
	}
	//
	if msb, errs = p.parseNumber(); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(COLON); len(errs) > 0 {
		return nil, errs
	} else if lsb, errs = p.parseNumber(); len(errs) > 0 {
		return nil, errs
	} else if last, errs = p.expect(RSQUARE); len(errs) > 0 {
		return nil, errs
	}
	//
	return NewVectorType(kind, msb, lsb, first.Span.Union(last.Span)), nil
}

// Parse the remainder of a packed struct type, "packed { member* }".
func (p *Parser) parseStruct(first lex.Token) (Type, []source.SyntaxError) {
	var (
		members []Member
		last    lex.Token
		errs    []source.SyntaxError
	)
	//
	if errs = p.parseKeyword("packed"); len(errs) > 0 {
		return nil, errs
	} else if _, errs = p.expect(LCURLY); len(errs) > 0 {
		return nil, errs
	}
	// Parse members until end of block
	for p.lookahead().Kind != RCURLY {
		var member Member
		//
		if p.lookahead().Kind == END_OF {
			return nil, p.syntaxErrors(p.lookahead(), "unexpected end of file")
		}
		//
		if member, errs = p.parseMember(); len(errs) > 0 {
			return nil, errs
		}
		//
		members = append(members, member)
	}
	// Advance past "}"
	last, _ = p.expect(RCURLY)
	//
	return NewStructType(members, first.Span.Union(last.Span)), nil
}

// Parse a single struct member "type name;".  Members follow exactly the
// declaration grammar, including nested packed structs.
func (p *Parser) parseMember() (Member, []source.SyntaxError) {
	decl, errs := p.parseDeclaration()
	//
	if len(errs) > 0 {
		return Member{}, errs
	}
	//
	return NewMember(decl.Name, decl.Type, decl.Span()), nil
}

// Parse the remainder of an enum type, "{ variant (, variant)* }".
func (p *Parser) parseEnum(first lex.Token) (Type, []source.SyntaxError) {
	var (
		variants []string
		variant  string
		last     lex.Token
		errs     []source.SyntaxError
	)
	//
	if _, errs = p.expect(LCURLY); len(errs) > 0 {
		return nil, errs
	}
	// Parse variants until end of block
	for p.lookahead().Kind != RCURLY {
		// look for ","
		if len(variants) != 0 {
			if _, errs = p.expect(COMMA); len(errs) > 0 {
				return nil, errs
			}
		}
		//
		if variant, errs = p.parseIdentifier(); len(errs) > 0 {
			return nil, errs
		}
		//
		variants = append(variants, variant)
	}
	// Advance past "}"
	last, _ = p.expect(RCURLY)
	//
	return NewEnumType(variants, first.Span.Union(last.Span)), nil
}

func (p *Parser) parseKeyword(keyword string) []source.SyntaxError {
	tok, errs := p.expect(IDENTIFIER)
	//
	if len(errs) > 0 {
		return errs
	} else if p.string(tok) != keyword {
		return p.syntaxErrors(tok, fmt.Sprintf("expected \"%s\"", keyword))
	}
	//
	return nil
}

func (p *Parser) parseIdentifier() (string, []source.SyntaxError) {
	tok, errs := p.expect(IDENTIFIER)
	//
	if len(errs) > 0 {
		return "", errs
	}
	//
	return p.string(tok), nil
}

func (p *Parser) parseNumber() (int, []source.SyntaxError) {
	tok, errs := p.expect(NUMBER)
	//
	if len(errs) > 0 {
		return 0, errs
	}
	// Convert to an integer
	number, err := strconv.Atoi(p.string(tok))
	if err != nil {
		return 0, p.syntaxErrors(tok, "malformed number")
	}
	//
	return number, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

// Expect returns an error if the next token is not what was expected.
func (p *Parser) expect(kind uint) (lex.Token, []source.SyntaxError) {
	lookahead := p.lookahead()
	//
	if lookahead.Kind != kind {
		errs := p.syntaxErrors(lookahead, "unexpected token")
		return lookahead, errs
	}
	//
	p.index++
	//
	return lookahead, nil
}

// Match attempts to match the given token, advancing past it if present.
func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

// FollowsKeyword checks whether the given keyword follows at the current
// position, without advancing.
func (p *Parser) followsKeyword(keyword string) bool {
	lookahead := p.lookahead()
	//
	return lookahead.Kind == IDENTIFIER && p.string(lookahead) == keyword
}

func (p *Parser) spanOf(firstToken, lastToken int) source.Span {
	start := p.tokens[firstToken].Span.Start()
	end := p.tokens[lastToken].Span.End()
	//
	return source.NewSpan(start, end)
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
