package lang

import (
	"bytes"
	"fmt"
)

// TokenType identifies the category of a lexed token.
type TokenType int

const (
	EOF TokenType = iota // sentinel: end of input (never emitted by Tokenize)

	// Payload-carrying literals
	IDENTIFIER // variable / function name
	INTEGER    // integer literal in any supported radix
	FLOAT      // decimal or scientific float literal

	// Keywords
	AND      // "and"
	ELSE     // "else"
	FALSE    // "false"
	FUNCTION // "function"
	IF       // "if"
	LAMBDA   // "lambda"
	LET      // "let"
	NOT      // "not"
	OR       // "or"
	RETURN   // "return"
	TRUE     // "true"
	XOR      // "xor"

	// Paired delimiters
	LPAREN   // (
	RPAREN   // )
	LBRACKET // [
	RBRACKET // ]
	LBRACE   // {
	RBRACE   // }

	// Punctuation
	DOT       // .
	COMMA     // ,
	COLON     // :
	SEMICOLON // ;

	// Operators  (order matters: ASSIGN before EQUALS)
	PLUS        // +
	MINUS       // -
	STAR        // *
	SLASH       // /
	ASSIGN      // =
	EQUALS      // ==
	RIGHT_ARROW // ->
)

// tokenNames is indexed by TokenType.
var tokenNames = [...]string{
	EOF:         "EOF",
	IDENTIFIER:  "IDENTIFIER",
	INTEGER:     "INTEGER",
	FLOAT:       "FLOAT",
	AND:         "AND",
	ELSE:        "ELSE",
	FALSE:       "FALSE",
	FUNCTION:    "FUNCTION",
	IF:          "IF",
	LAMBDA:      "LAMBDA",
	LET:         "LET",
	NOT:         "NOT",
	OR:          "OR",
	RETURN:      "RETURN",
	TRUE:        "TRUE",
	XOR:         "XOR",
	LPAREN:      "LPAREN",
	RPAREN:      "RPAREN",
	LBRACKET:    "LBRACKET",
	RBRACKET:    "RBRACKET",
	LBRACE:      "LBRACE",
	RBRACE:      "RBRACE",
	DOT:         "DOT",
	COMMA:       "COMMA",
	COLON:       "COLON",
	SEMICOLON:   "SEMICOLON",
	PLUS:        "PLUS",
	MINUS:       "MINUS",
	STAR:        "STAR",
	SLASH:       "SLASH",
	ASSIGN:      "ASSIGN",
	EQUALS:      "EQUALS",
	RIGHT_ARROW: "RIGHT_ARROW",
}

func (tt TokenType) String() string {
	if int(tt) >= 0 && int(tt) < len(tokenNames) {
		return tokenNames[tt]
	}
	return fmt.Sprintf("TokenType(%d)", int(tt))
}

// Radix selects the base of an integer literal's digit values.
type Radix int

const (
	Decimal Radix = iota
	Hexadecimal
	Octal
	Binary
)

var radixNames = [...]string{
	Decimal:     "decimal",
	Hexadecimal: "hexadecimal",
	Octal:       "octal",
	Binary:      "binary",
}

func (r Radix) String() string {
	if int(r) >= 0 && int(r) < len(radixNames) {
		return radixNames[r]
	}
	return fmt.Sprintf("Radix(%d)", int(r))
}

// IntegerRepresentation is the lexed form of an integer literal: an ordered
// sequence of digit values (not digit characters) in the literal's base.
// Every stored value is strictly less than the radix; a leading-zero decimal
// literal is normalized to the single digit [0]. Converting the digits into a
// machine number is deliberately left to a later stage.
type IntegerRepresentation struct {
	Base   Radix
	Digits []uint8
}

func (r *IntegerRepresentation) String() string {
	return fmt.Sprintf("%s%v", r.Base, r.Digits)
}

// Clone returns an independently owned copy.
func (r *IntegerRepresentation) Clone() *IntegerRepresentation {
	if r == nil {
		return nil
	}
	return &IntegerRepresentation{Base: r.Base, Digits: bytes.Clone(r.Digits)}
}

// Equal reports whether both representations hold the same base and digits.
// Unlike reflect.DeepEqual it treats nil and empty digit slices as the same.
func (r *IntegerRepresentation) Equal(o *IntegerRepresentation) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Base == o.Base && bytes.Equal(r.Digits, o.Digits)
}

// FloatRepresentation is the lexed form of a float literal, digit values in
// base 10. Integer and Fractional may independently be empty ("3." and ".14"
// are both valid spellings). Scientific marks the exponent form; a finalized
// scientific literal has a non-empty Exponent except when a non-digit byte
// ended the exponent mid-stream (see the lexer's exponent state).
type FloatRepresentation struct {
	Integer    []uint8
	Fractional []uint8
	Exponent   []uint8
	Scientific bool
}

func (r *FloatRepresentation) String() string {
	if r.Scientific {
		return fmt.Sprintf("scientific{int=%v frac=%v exp=%v}", r.Integer, r.Fractional, r.Exponent)
	}
	return fmt.Sprintf("decimal{int=%v frac=%v}", r.Integer, r.Fractional)
}

// Clone returns an independently owned copy.
func (r *FloatRepresentation) Clone() *FloatRepresentation {
	if r == nil {
		return nil
	}
	return &FloatRepresentation{
		Integer:    bytes.Clone(r.Integer),
		Fractional: bytes.Clone(r.Fractional),
		Exponent:   bytes.Clone(r.Exponent),
		Scientific: r.Scientific,
	}
}

// Equal reports whether both representations hold the same form and digits,
// treating nil and empty digit slices as the same.
func (r *FloatRepresentation) Equal(o *FloatRepresentation) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.Scientific == o.Scientific &&
		bytes.Equal(r.Integer, o.Integer) &&
		bytes.Equal(r.Fractional, o.Fractional) &&
		bytes.Equal(r.Exponent, o.Exponent)
}

// Token is a single lexical unit produced by the Lexer. Exactly one payload
// field is set, matching Type; fixed symbols and keywords carry none.
type Token struct {
	Type  TokenType
	Ident []byte                 // set when Type == IDENTIFIER
	Int   *IntegerRepresentation // set when Type == INTEGER
	Float *FloatRepresentation   // set when Type == FLOAT
}

func (t Token) String() string {
	switch t.Type {
	case IDENTIFIER:
		return fmt.Sprintf("IDENTIFIER(%s)", t.Ident)
	case INTEGER:
		return fmt.Sprintf("INTEGER(%s)", t.Int)
	case FLOAT:
		return fmt.Sprintf("FLOAT(%s)", t.Float)
	}
	return t.Type.String()
}
