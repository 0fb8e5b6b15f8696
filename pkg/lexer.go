package tinycompiler

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int
type stateFunc func(l *Lexer) stateFunc

const (
	EOF rune = 0

	TokenError TokenType = iota
	TokenEOF
	TokenOpenParentheses
	TokenCloseParentheses
	TokenName
	TokenNumber
)

type Token struct {
	Typ   TokenType
	Value string
}

type Lexer struct {
	reader *bufio.Reader
	done   chan Token
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		done:   make(chan Token),
	}
}

func (l *Lexer) Chan() chan Token {
	return l.done
}

func (l *Lexer) Run() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	close(l.done)
}

// RunBlocking drives the lexer to completion and collects its tokens.
// A TokenError surfaces as a *LexicalError.
func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Run()

	var tokens []Token
	for t := range l.Chan() {
		if t.Typ == TokenEOF {
			return tokens, nil
		}

		if t.Typ == TokenError {
			return nil, &LexicalError{Message: t.Value}
		}

		tokens = append(tokens, t)
	}

	return tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			l.emmitNext(TokenEOF)
			return nil
		case unicode.IsSpace(r):
			l.next()
			continue
		case r == '(':
			return l.emmitNext(TokenOpenParentheses)
		case r == ')':
			return l.emmitNext(TokenCloseParentheses)
		case unicode.IsLetter(r):
			return nameState
		case '0' <= r && r <= '9':
			return numberState
		default:
			return l.errorf("unexpected character '%c'", r)
		}
	}
}

// A name or number in progress is flushed on the first rune that
// doesn't extend it. End of input reads as EOF, which extends neither,
// so a trailing token is flushed too rather than silently dropped.
func nameState(l *Lexer) stateFunc {
	var name strings.Builder
	for r := l.peek(); unicode.IsLetter(r); r = l.peek() {
		name.WriteRune(l.next())
	}

	return l.emmitValue(TokenName, name.String())
}

func numberState(l *Lexer) stateFunc {
	var num strings.Builder
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num.WriteRune(l.next())
	}

	return l.emmitValue(TokenNumber, num.String())
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	l.done <- Token{
		Typ:   TokenError,
		Value: fmt.Sprintf(format, args...),
	}

	return nil
}

func (l *Lexer) emmitNext(t TokenType) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: string(l.next()),
	}

	return defaultState
}

func (l *Lexer) emmitValue(t TokenType, val string) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: val,
	}

	return defaultState
}

func (l *Lexer) peek() rune {
	r := l.next()
	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	return r
}
