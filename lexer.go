package goexpr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenPow
	TokenLParen
	TokenRParen
)

// TokenNone marks the absence of a specific expectation in a SyntaxError.
const TokenNone TokenType = -1

func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "NUMBER"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenMul:
		return "MUL"
	case TokenDiv:
		return "DIV"
	case TokenPow:
		return "POW"
	case TokenLParen:
		return "LPAREN"
	case TokenRParen:
		return "RPAREN"
	}
	return "UNKNOWN"
}

// Token is one lexical unit. Value holds an int64 or float64 for
// NUMBER, the literal character as a string for operators and parens,
// and nil for EOF.
type Token struct {
	Type  TokenType
	Value interface{}
}

func (t Token) String() string {
	if t.Value != nil {
		return fmt.Sprintf("Token(%v, %v)", t.Type, t.Value)
	}
	return fmt.Sprintf("Token(%v)", t.Type)
}

func (t Token) MarshalJSON() ([]byte, error) {
	if t.Value == nil {
		return json.Marshal(struct {
			Type string `json:"type"`
		}{t.Type.String()})
	}
	return json.Marshal(struct {
		Type  string      `json:"type"`
		Value interface{} `json:"value"`
	}{t.Type.String(), t.Value})
}

// LexicalError reports a character the lexer cannot classify.
type LexicalError struct {
	Char rune
	Pos  int
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("invalid character '%c' at position %d", e.Char, e.Pos)
}

// Lexer scans an expression left to right, one token per call.
type Lexer struct {
	text string
	pos  int
}

func NewLexer(text string) *Lexer {
	return &Lexer{text: text}
}

func (l *Lexer) Pos() int {
	return l.pos
}

func (l *Lexer) Next() (Token, error) {
	for l.pos < len(l.text) {
		r, size := utf8.DecodeRuneInString(l.text[l.pos:])
		if unicode.IsSpace(r) {
			l.pos += size
			continue
		}
		if r >= '0' && r <= '9' || r == '.' {
			return l.number()
		}
		var t TokenType
		switch r {
		case '+':
			t = TokenPlus
		case '-':
			t = TokenMinus
		case '*':
			t = TokenMul
		case '/':
			t = TokenDiv
		case '^':
			t = TokenPow
		case '(':
			t = TokenLParen
		case ')':
			t = TokenRParen
		default:
			return Token{}, &LexicalError{Char: r, Pos: l.pos}
		}
		l.pos += size
		return Token{Type: t, Value: string(r)}, nil
	}
	return Token{Type: TokenEOF}, nil
}

// number scans a maximal run of digits and at most one decimal point.
// A second point inside the run is rejected here rather than left to
// fail in conversion.
func (l *Lexer) number() (Token, error) {
	start := l.pos
	dot := -1
	for l.pos < len(l.text) {
		c := l.text[l.pos]
		if c == '.' {
			if dot >= 0 {
				return Token{}, &LexicalError{Char: '.', Pos: l.pos}
			}
			dot = l.pos
		} else if c < '0' || c > '9' {
			break
		}
		l.pos++
	}
	lit := l.text[start:l.pos]
	if lit == "." {
		return Token{}, &LexicalError{Char: '.', Pos: start}
	}
	if dot < 0 {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Token{Type: TokenNumber, Value: i}, nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Token{}, &LexicalError{Char: rune(lit[0]), Pos: start}
	}
	return Token{Type: TokenNumber, Value: f}, nil
}

// Tokenize drains the lexer, returning every token before EOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

func Tokenize(text string) ([]Token, error) {
	return NewLexer(text).Tokenize()
}
