package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// ErrInvalidAttrOp flags an attribute selector with an operator token
// other than '=' or '~='.
var ErrInvalidAttrOp = errors.New("invalid attribute selector op")

// ParseError is a stylesheet grammar error, located at a byte position of
// the input.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stylesheet: position %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses stylesheet text into an ordered rule list. Whitespace
// (including newlines) between rules and inside rule bodies is ignored.
// Any grammar violation is an error; there is no partial result.
func Parse(input string) (*Stylesheet, error) {
	p := &sheetParser{input: input}
	p.skipWhitespace()
	sheet := &Stylesheet{}
	for !p.eof() {
		rule, err := p.parseRule()
		if err != nil {
			return nil, err
		}
		sheet.Rules = append(sheet.Rules, *rule)
		p.skipWhitespace()
	}
	tracer().Debugf("stylesheet has %d rules", len(sheet.Rules))
	return sheet, nil
}

type sheetParser struct {
	input string
	pos   int
}

func (p *sheetParser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *sheetParser) peek() byte {
	return p.input[p.pos]
}

func (p *sheetParser) errorf(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Err: fmt.Errorf(format, args...)}
}

// parseRule implements SelectorList '{' ws DeclarationList ws '}'.
func (p *sheetParser) parseRule() (*Rule, error) {
	selectors, err := p.parseSelectors()
	if err != nil {
		return nil, err
	}
	if err := p.expect('{'); err != nil {
		return nil, err
	}
	p.skipWhitespace()
	declarations, err := p.parseDeclarations()
	if err != nil {
		return nil, err
	}
	if err := p.expect('}'); err != nil {
		return nil, err
	}
	return &Rule{Selectors: selectors, Declarations: declarations}, nil
}

// parseSelectors implements SimpleSelector (',' SimpleSelector)*, each
// side whitespace-trimmed. At least one selector is required.
func (p *sheetParser) parseSelectors() ([]Selector, error) {
	var selectors []Selector
	for {
		sel, err := p.parseSimpleSelector()
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, sel)
		p.skipWhitespace()
		if p.eof() || p.peek() != ',' {
			return selectors, nil
		}
		p.pos++ // ','
		p.skipWhitespace()
	}
}

// parseSimpleSelector implements
//
//	'*'  |  '.' name  |  name ws? ('[' ws name op name ']')?
func (p *sheetParser) parseSimpleSelector() (Selector, error) {
	if p.eof() {
		return nil, p.errorf(p.pos, "expected a selector")
	}
	switch p.peek() {
	case '*':
		p.pos++
		return UniversalSelector{}, nil
	case '.':
		p.pos++
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		return ClassSelector{ClassName: name}, nil
	}
	tag, err := p.parseName()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if p.eof() || p.peek() != '[' {
		return TypeSelector{TagName: tag}, nil
	}
	p.pos++ // '['
	p.skipWhitespace()
	attr, err := p.parseName()
	if err != nil {
		return nil, err
	}
	op, err := p.parseAttrOp()
	if err != nil {
		return nil, err
	}
	value, err := p.parseName()
	if err != nil {
		return nil, err
	}
	if err := p.expect(']'); err != nil {
		return nil, err
	}
	return AttributeSelector{TagName: tag, Op: op, Attribute: attr, Value: value}, nil
}

// parseAttrOp reads a maximal operator token and maps it. Tokens other
// than '=' and '~=' yield the distinguished ErrInvalidAttrOp.
func (p *sheetParser) parseAttrOp() (AttrOp, error) {
	start := p.pos
	for !p.eof() && isOpChar(p.peek()) {
		p.pos++
	}
	switch p.input[start:p.pos] {
	case "=":
		return OpEq, nil
	case "~=":
		return OpContains, nil
	case "":
		return 0, p.errorf(start, "expected an attribute selector op")
	}
	return 0, &ParseError{Pos: start, Err: ErrInvalidAttrOp}
}

// parseDeclarations implements Declaration (';' ws Declaration)* with an
// optional trailing separator, up to the closing '}'.
func (p *sheetParser) parseDeclarations() ([]Declaration, error) {
	var declarations []Declaration
	for {
		if p.eof() || p.peek() == '}' {
			return declarations, nil
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		declarations = append(declarations, *decl)
		p.skipWhitespace()
		if p.eof() || p.peek() != ';' {
			return declarations, nil
		}
		p.pos++ // ';'
		p.skipWhitespace()
	}
}

// parseDeclaration implements name ':' ws Value.
func (p *sheetParser) parseDeclaration() (*Declaration, error) {
	name, err := p.parseName()
	if err != nil {
		return nil, err
	}
	p.skipWhitespace()
	if err := p.expect(':'); err != nil {
		return nil, err
	}
	p.skipWhitespace()
	value, err := p.parseName()
	if err != nil {
		return nil, err
	}
	return &Declaration{Property: name, Value: Keyword(value)}, nil
}

// parseName reads one or more letters.
func (p *sheetParser) parseName() (string, error) {
	start := p.pos
	for !p.eof() && isLetter(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf(start, "expected a name")
	}
	return p.input[start:p.pos], nil
}

func (p *sheetParser) expect(c byte) error {
	if p.eof() || p.peek() != c {
		return p.errorf(p.pos, "expected %q", string(c))
	}
	p.pos++
	return nil
}

func (p *sheetParser) skipWhitespace() {
	for !p.eof() && isWhitespace(p.peek()) {
		p.pos++
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isOpChar(c byte) bool {
	switch c {
	case '=', '~', '|', '^', '$', '*':
		return true
	}
	return false
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
