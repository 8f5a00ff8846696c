package goexpr

import "fmt"

// SyntaxError reports a grammar mismatch: the token category the
// parser required versus the one it found. Expected is TokenNone when
// no single category was required.
type SyntaxError struct {
	Expected TokenType
	Found    TokenType
}

func (e *SyntaxError) Error() string {
	if e.Expected == TokenNone {
		return fmt.Sprintf("unexpected token %v", e.Found)
	}
	return fmt.Sprintf("expected %v but found %v", e.Expected, e.Found)
}

// Parser builds an expression tree from a lexer with one token of
// lookahead and no backtracking.
//
// Grammar, lowest to tightest binding:
//
//	Expression := Term (('+' | '-') Term)*
//	Term       := Factor (('*' | '/') Factor | Factor)*
//	Factor     := Power ('^' Factor)?
//	Power      := NUMBER | '(' Expression ')'
//
// The bare Factor arm of Term is implicit multiplication.
type Parser struct {
	lex *Lexer
	tok Token
}

func NewParser(lex *Lexer) *Parser {
	return &Parser{lex: lex}
}

func (p *Parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok
	return nil
}

// eat advances past the current token only when it matches want.
func (p *Parser) eat(want TokenType) error {
	if p.tok.Type != want {
		return &SyntaxError{Expected: want, Found: p.tok.Type}
	}
	return p.next()
}

func (p *Parser) power() (*Node, error) {
	tok := p.tok
	switch tok.Type {
	case TokenNumber:
		if err := p.eat(TokenNumber); err != nil {
			return nil, err
		}
		return &Node{Type: NodeLiteral, Value: tok.Value}, nil
	case TokenLParen:
		if err := p.eat(TokenLParen); err != nil {
			return nil, err
		}
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.eat(TokenRParen); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, &SyntaxError{Expected: TokenNone, Found: tok.Type}
}

// factor handles '^'. Exponentiation is right associative, so the tail
// recurses instead of looping.
func (p *Parser) factor() (*Node, error) {
	node, err := p.power()
	if err != nil {
		return nil, err
	}
	if p.tok.Type == TokenPow {
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &Node{Type: NodeBinOp, Op: '^', Left: node, Right: right}
	}
	return node, nil
}

// term handles '*' and '/'. A NUMBER or '(' sitting in operator
// position is implicit multiplication: a '*' node is synthesized
// without consuming an operator token.
func (p *Parser) term() (*Node, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		var op rune
		switch p.tok.Type {
		case TokenMul:
			op = '*'
		case TokenDiv:
			op = '/'
		case TokenNumber, TokenLParen:
			op = '*'
		default:
			return node, nil
		}
		if p.tok.Type == TokenMul || p.tok.Type == TokenDiv {
			if err := p.next(); err != nil {
				return nil, err
			}
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		node = &Node{Type: NodeBinOp, Op: op, Left: node, Right: right}
	}
}

func (p *Parser) expr() (*Node, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.tok.Type == TokenPlus || p.tok.Type == TokenMinus {
		op := '+'
		if p.tok.Type == TokenMinus {
			op = '-'
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		node = &Node{Type: NodeBinOp, Op: op, Left: node, Right: right}
	}
	return node, nil
}

// Parse consumes the whole input and returns its tree. Tokens left
// over after the top level expression are an error.
func (p *Parser) Parse() (*Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != TokenEOF {
		return nil, &SyntaxError{Expected: TokenEOF, Found: p.tok.Type}
	}
	return node, nil
}

func Parse(text string) (*Node, error) {
	return NewParser(NewLexer(text)).Parse()
}
