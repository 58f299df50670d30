package term

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse deserializes term text against the registry's allowlist. It first
// builds a generic syntax tree of the input, then converts it bottom-up,
// resolving every constructor call and bare name against the registry before
// anything is constructed. All failures surface as *DeserializationError.
func Parse(reg *Registry, text string) (any, error) {
	p := &parser{input: text}
	node, err := p.parseDocument()
	if err != nil {
		return nil, err
	}
	return build(reg, text, node)
}

// syntax tree nodes

type callNode struct {
	head string
	args []node
}

type nameNode struct{ name string }

type listNode struct{ elems []node }

type literalNode struct{ value any } // string, float64, bool or nil

type node interface{ fragment() string }

func (n callNode) fragment() string    { return n.head + "(...)" }
func (n nameNode) fragment() string    { return n.name }
func (n listNode) fragment() string    { return "[...]" }
func (n literalNode) fragment() string { return fmt.Sprintf("%v", n.value) }

// build converts a syntax node into a term value. The allowlist lookup
// precedes every construction so unregistered input never instantiates
// anything, not even partially.
func build(reg *Registry, text string, n node) (any, error) {
	switch v := n.(type) {
	case callNode:
		builder, ok := reg.builder(v.head)
		if !ok {
			return nil, deserializationError(text, v.head, ErrUnregistered)
		}
		args := make([]any, len(v.args))
		for i, argNode := range v.args {
			arg, err := build(reg, text, argNode)
			if err != nil {
				return nil, err
			}
			args[i] = arg
		}
		value, err := builder(args)
		if err != nil {
			return nil, deserializationError(text, v.fragment(), err)
		}
		return value, nil
	case nameNode:
		value, ok := reg.resolveName(v.name)
		if !ok {
			return nil, deserializationError(text, v.name, ErrUnregistered)
		}
		return value, nil
	case listNode:
		elems := make([]any, len(v.elems))
		for i, elemNode := range v.elems {
			elem, err := build(reg, text, elemNode)
			if err != nil {
				return nil, err
			}
			elems[i] = elem
		}
		return elems, nil
	case literalNode:
		return v.value, nil
	default:
		return nil, deserializationError(text, n.fragment(), ErrParse)
	}
}

// parser is a recursive-descent parser over the restricted expression
// grammar. Anything outside the grammar (operators, comprehensions,
// attribute access, keyword arguments) fails with ErrParse.
type parser struct {
	input string
	pos   int
}

func (p *parser) parseDocument() (node, error) {
	p.skipSpace()
	n, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, p.errorf("trailing input")
	}
	return n, nil
}

func (p *parser) parseExpr() (node, error) {
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, p.errorf("unexpected end of input")
	}
	c := p.input[p.pos]
	switch {
	case c == '[':
		return p.parseList()
	case c == '\'' || c == '"':
		return p.parseString(c)
	case c == '-' || c == '.' || unicode.IsDigit(rune(c)):
		return p.parseNumber()
	case isIdentStart(rune(c)):
		return p.parseNameOrCall()
	default:
		return nil, p.errorf("unexpected character %q", c)
	}
}

func (p *parser) parseNameOrCall() (node, error) {
	name := p.scanIdent()
	switch name {
	case "true", "True":
		return literalNode{value: true}, nil
	case "false", "False":
		return literalNode{value: false}, nil
	case "None", "null":
		return literalNode{value: nil}, nil
	}
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == '(' {
		p.pos++ // consume '('
		args, err := p.parseArgs(')')
		if err != nil {
			return nil, err
		}
		return callNode{head: name, args: args}, nil
	}
	return nameNode{name: name}, nil
}

func (p *parser) parseList() (node, error) {
	p.pos++ // consume '['
	elems, err := p.parseArgs(']')
	if err != nil {
		return nil, err
	}
	return listNode{elems: elems}, nil
}

// parseArgs parses a comma-separated expression sequence up to the closing
// delimiter, which it consumes.
func (p *parser) parseArgs(close byte) ([]node, error) {
	var args []node
	p.skipSpace()
	if p.pos < len(p.input) && p.input[p.pos] == close {
		p.pos++
		return args, nil
	}
	for {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.skipSpace()
		if p.pos >= len(p.input) {
			return nil, p.errorf("missing %q", close)
		}
		switch p.input[p.pos] {
		case ',':
			p.pos++
		case close:
			p.pos++
			return args, nil
		default:
			return nil, p.errorf("unexpected character %q", p.input[p.pos])
		}
	}
}

func (p *parser) parseString(quote byte) (node, error) {
	p.pos++ // consume opening quote
	var sb strings.Builder
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch c {
		case quote:
			p.pos++
			return literalNode{value: sb.String()}, nil
		case '\\':
			if p.pos+1 >= len(p.input) {
				return nil, p.errorf("unterminated escape")
			}
			p.pos++
			sb.WriteByte(p.input[p.pos])
			p.pos++
		default:
			sb.WriteByte(c)
			p.pos++
		}
	}
	return nil, p.errorf("unterminated string")
}

func (p *parser) parseNumber() (node, error) {
	start := p.pos
	if p.input[p.pos] == '-' {
		p.pos++
	}
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if unicode.IsDigit(c) || c == '.' || c == 'e' || c == 'E' ||
			((c == '+' || c == '-') && p.pos > start && (p.input[p.pos-1] == 'e' || p.input[p.pos-1] == 'E')) {
			p.pos++
			continue
		}
		break
	}
	text := p.input[start:p.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("invalid number %q", text)
	}
	return literalNode{value: value}, nil
}

func (p *parser) scanIdent() string {
	start := p.pos
	for p.pos < len(p.input) && isIdentPart(rune(p.input[p.pos])) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && (p.input[p.pos] == ' ' || p.input[p.pos] == '\t' || p.input[p.pos] == '\n' || p.input[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	fragment := p.input[p.pos:]
	if len(fragment) > 20 {
		fragment = fragment[:20]
	}
	return deserializationError(p.input, fragment, fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...)))
}

func isIdentStart(c rune) bool {
	return c == '_' || unicode.IsLetter(c)
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || unicode.IsDigit(c)
}
