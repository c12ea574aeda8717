package dom

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

// ErrTagMismatch flags an element whose close tag names a different tag
// than its open tag. The check is mandatory; a mismatch aborts the whole
// parse instead of backtracking.
var ErrTagMismatch = errors.New("tag name of open tag and close tag mismatched")

// ErrTrailingInput flags input that could not be consumed as nodes.
var ErrTrailingInput = errors.New("unconsumed input after last node")

// ParseError is a structural markup error, located at a byte position of
// the input.
type ParseError struct {
	Pos int
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("markup: position %d: %v", e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses markup text into a single document root. If the input
// contains more than one top-level node, the nodes are wrapped in a
// synthetic 'html' element.
func Parse(input string) (*Node, error) {
	nodes, err := ParseNodes(input)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 1 {
		return nodes[0], nil
	}
	return NewElement("html", nil, nodes), nil
}

// ParseNodes parses markup text into the root node sequence. Nodes are
// accumulated greedily; input that cannot be consumed is a structural
// error.
func ParseNodes(input string) ([]*Node, error) {
	p := &parser{input: input}
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		tracer().Debugf("markup parser stopped at %d of %d", p.pos, len(p.input))
		return nil, &ParseError{Pos: p.pos, Err: ErrTrailingInput}
	}
	return nodes, nil
}

// parser is a recursive-descent parser over a byte-positioned input.
// Element parsing is attempted before text parsing; an element failure
// backtracks, except for a tag mismatch, which is fatal.
type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) peek() byte {
	return p.input[p.pos]
}

func (p *parser) errorf(pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{Pos: pos, Err: fmt.Errorf(format, args...)}
}

// parseNodes implements Node* with ordered choice: Element | Text.
func (p *parser) parseNodes() ([]*Node, error) {
	var nodes []*Node
	for !p.eof() {
		mark := p.pos
		node, err := p.parseElement()
		if err != nil {
			if errors.Is(err, ErrTagMismatch) {
				return nil, err
			}
			p.pos = mark // ordered choice: backtrack, try a text run
			node = p.parseText()
			if node == nil {
				break
			}
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

// parseText consumes a maximal non-empty run of characters up to the next
// '<'. Returns nil if the run would be empty.
func (p *parser) parseText() *Node {
	start := p.pos
	for !p.eof() && p.peek() != '<' {
		p.pos++
	}
	if p.pos == start {
		return nil
	}
	return NewText(p.input[start:p.pos])
}

// parseElement implements OpenTag Node* CloseTag.
func (p *parser) parseElement() (*Node, error) {
	tag, attrs, err := p.parseOpenTag()
	if err != nil {
		return nil, err
	}
	children, err := p.parseNodes()
	if err != nil {
		return nil, err
	}
	closePos := p.pos
	closeTag, err := p.parseCloseTag()
	if err != nil {
		return nil, err
	}
	if closeTag != tag {
		tracer().Debugf("markup parser: <%s> closed by </%s>", tag, closeTag)
		return nil, &ParseError{Pos: closePos, Err: ErrTagMismatch}
	}
	return NewElement(tag, attrs, children), nil
}

func (p *parser) parseOpenTag() (string, AttrMap, error) {
	if err := p.expect('<'); err != nil {
		return "", nil, err
	}
	tag, err := p.parseName()
	if err != nil {
		return "", nil, err
	}
	p.skipWhitespace()
	attrs, err := p.parseAttributes()
	if err != nil {
		return "", nil, err
	}
	if err := p.expect('>'); err != nil {
		return "", nil, err
	}
	return tag, attrs, nil
}

func (p *parser) parseCloseTag() (string, error) {
	if err := p.expect('<'); err != nil {
		return "", err
	}
	if err := p.expect('/'); err != nil {
		return "", err
	}
	tag, err := p.parseName()
	if err != nil {
		return "", err
	}
	if err := p.expect('>'); err != nil {
		return "", err
	}
	return tag, nil
}

// parseAttributes reads attributes up to the closing '>'. Attributes are
// separated by mandatory whitespace; a duplicate name overwrites the
// earlier value.
func (p *parser) parseAttributes() (AttrMap, error) {
	attrs := AttrMap{}
	for {
		if p.eof() || !isLetter(p.peek()) {
			return attrs, nil
		}
		name, value, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs[name] = value
		if !p.eof() && !isWhitespace(p.peek()) && p.peek() != '>' {
			return nil, p.errorf(p.pos, "expected whitespace between attributes")
		}
		p.skipWhitespace()
	}
}

// parseAttribute implements name ws? '=' ws? '"' chars-without-'"' '"'.
func (p *parser) parseAttribute() (string, string, error) {
	name, err := p.parseName()
	if err != nil {
		return "", "", err
	}
	p.skipWhitespace()
	if err := p.expect('='); err != nil {
		return "", "", err
	}
	p.skipWhitespace()
	if err := p.expect('"'); err != nil {
		return "", "", err
	}
	start := p.pos
	for !p.eof() && p.peek() != '"' {
		p.pos++
	}
	if p.pos == start {
		return "", "", p.errorf(start, "empty attribute value")
	}
	value := p.input[start:p.pos]
	if err := p.expect('"'); err != nil {
		return "", "", err
	}
	return name, value, nil
}

// parseName reads one or more letters.
func (p *parser) parseName() (string, error) {
	start := p.pos
	for !p.eof() && isLetter(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errorf(start, "expected a name")
	}
	return p.input[start:p.pos], nil
}

func (p *parser) expect(c byte) error {
	if p.eof() || p.peek() != c {
		return p.errorf(p.pos, "expected %q", string(c))
	}
	p.pos++
	return nil
}

func (p *parser) skipWhitespace() {
	for !p.eof() && isWhitespace(p.peek()) {
		p.pos++
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}
