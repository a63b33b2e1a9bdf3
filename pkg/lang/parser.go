package lang

import (
	"bytes"
	"fmt"
)

// ParseError reports the first grammar violation. Offset is the index of the
// offending token in the input slice (equal to the slice length when the
// parser ran off the end), Got its kind.
type ParseError struct {
	Offset int
	Got    TokenType
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unexpected token %s at position %d", e.Got, e.Offset)
}

// Parser consumes the flat token slice produced by Tokenize and builds an AST.
//
// Grammar:
//
//	statement  = "let" IDENTIFIER "=" expression
//	expression = term
//	term       = factor (("+" | "-") factor)*
//	factor     = primary (("*" | "/") primary)*
//	primary    = IDENTIFIER | INTEGER | FLOAT | "(" expression ")"
//
// All binary operators are left-associative; each level loops instead of
// recursing so repeated operators nest on the left operand. The logical
// operators (and, or, not, xor) and the unary sign operators have token and
// AST support but no production yet: not/unary-sign belong above primary and
// and/or/xor as levels below term, in the same iterative pattern.
type Parser struct {
	tokens []Token
	pos    int
}

// NewParser returns a parser positioned at the first token.
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it. Reading past the end
// yields an EOF sentinel rather than failing, so the grammar rules never need
// bounds checks.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise fails with
// the token's position.
func (p *Parser) expect(tt TokenType) (Token, error) {
	at := p.pos
	tok := p.advance()
	if tok.Type != tt {
		return tok, &ParseError{Offset: at, Got: tok.Type}
	}
	return tok, nil
}

// Parse parses the single recognized statement form:
//
//	let IDENTIFIER = expression
//
// and returns Assign(Identifier, expression). No trailing statement
// terminator is required or consumed: whatever follows the expression (for
// example a semicolon) is left unconsumed at the cursor.
func (p *Parser) Parse() (Node, error) {
	if _, err := p.expect(LET); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	name := &Identifier{Name: bytes.Clone(nameTok.Ident)}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assign{BinaryOperation{Left: name, Right: value}}, nil
}

// parseExpression is the entry point for expression parsing.
func (p *Parser) parseExpression() (Node, error) {
	return p.parseTerm()
}

// parseTerm handles + and -.
func (p *Parser) parseTerm() (Node, error) {
	operand, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		tt := p.peek().Type
		if tt != PLUS && tt != MINUS {
			break
		}
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if tt == PLUS {
			operand = &BinaryAddition{BinaryOperation{Left: operand, Right: right}}
		} else {
			operand = &BinarySubtraction{BinaryOperation{Left: operand, Right: right}}
		}
	}
	return operand, nil
}

// parseFactor handles * and /.
func (p *Parser) parseFactor() (Node, error) {
	operand, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		tt := p.peek().Type
		if tt != STAR && tt != SLASH {
			break
		}
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		if tt == STAR {
			operand = &BinaryMultiplication{BinaryOperation{Left: operand, Right: right}}
		} else {
			operand = &BinaryDivision{BinaryOperation{Left: operand, Right: right}}
		}
	}
	return operand, nil
}

// parsePrimary handles identifiers, literals, and parenthesized expressions.
// Literal and identifier payloads are cloned out of the token so the AST owns
// its data outright.
func (p *Parser) parsePrimary() (Node, error) {
	at := p.pos
	tok := p.advance()
	switch tok.Type {
	case IDENTIFIER:
		return &Identifier{Name: bytes.Clone(tok.Ident)}, nil
	case INTEGER:
		return &IntegerLiteral{Value: tok.Int.Clone()}, nil
	case FLOAT:
		return &FloatLiteral{Value: tok.Float.Clone()}, nil
	case LPAREN:
		node, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return node, nil
	}
	return nil, &ParseError{Offset: at, Got: tok.Type}
}

// Parse builds an AST from the token slice. It fails fast: the first grammar
// violation aborts the whole parse with a ParseError and no partial tree.
func Parse(tokens []Token) (Node, error) {
	return NewParser(tokens).Parse()
}
