package tinycompiler

import (
	"fmt"
	"strconv"
)

// Parser builds the source tree from a token slice by recursive
// descent, with the cursor as the only lookahead state.
type Parser struct {
	toks []Token
	pos  int
}

func NewParser(toks []Token) *Parser {
	return &Parser{
		toks: toks,
	}
}

// Run parses the whole token sequence into a Program. Zero top-level
// forms yield an empty program; the first malformed token aborts the
// parse with a *SyntaxError.
func (p *Parser) Run() (*Program, error) {
	prog := &Program{}

	for p.peek().Typ != TokenEOF {
		if !p.consume(TokenOpenParentheses) {
			return nil, p.errorf("expected '('")
		}

		call, err := p.callExpression()
		if err != nil {
			return nil, err
		}

		prog.Body = append(prog.Body, call)
	}

	return prog, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Typ: TokenEOF}
	}

	return p.toks[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Typ != TokenEOF {
		p.pos++
	}

	return tok
}

func (p *Parser) expect(typ TokenType) *Token {
	tok := p.next()
	if tok.Typ != typ {
		return nil
	}

	return &tok
}

func (p *Parser) consume(typ TokenType) bool {
	return p.next().Typ == typ
}

func (p *Parser) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Message: fmt.Sprintf(format, args...)}
}

// callExpression parses one form after its '(' has been consumed. The
// head must be a name; the parameters are numbers and nested calls in
// written order, up to the matching ')'.
func (p *Parser) callExpression() (*CallExpression, error) {
	name := p.expect(TokenName)
	if name == nil {
		return nil, p.errorf("expecting function name immediately after '('")
	}

	call := &CallExpression{Name: name.Value}

	for {
		switch tok := p.peek(); tok.Typ {
		case TokenCloseParentheses:
			p.next()
			return call, nil

		case TokenOpenParentheses:
			p.next()

			nested, err := p.callExpression()
			if err != nil {
				return nil, err
			}

			call.Params = append(call.Params, nested)

		case TokenNumber:
			p.next()

			v, err := strconv.Atoi(tok.Value)
			if err != nil {
				return nil, p.errorf("invalid number literal %q", tok.Value)
			}

			call.Params = append(call.Params, &NumberLiteral{Value: v})

		case TokenName:
			return nil, p.errorf("unexpected name %q in parameter list", tok.Value)

		default:
			return nil, p.errorf("missing ')'")
		}
	}
}
