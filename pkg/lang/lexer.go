package lang

import "fmt"

// LexErrorKind classifies a tokenization failure.
type LexErrorKind int

const (
	UnexpectedByte LexErrorKind = iota
	InvalidNumberDigit
	LeadingZeroWithoutBase
	InvalidHexadecimalDigit
	InvalidOctalDigit
	InvalidBinaryDigit
	MissingDigitsAfterBasePrefix
	MissingDigitsAfterExponentMark
)

var lexErrorNames = [...]string{
	UnexpectedByte:                 "unexpected byte",
	InvalidNumberDigit:             "invalid digit in number literal",
	LeadingZeroWithoutBase:         "leading zero without a base prefix",
	InvalidHexadecimalDigit:        "invalid hexadecimal digit",
	InvalidOctalDigit:              "invalid octal digit",
	InvalidBinaryDigit:             "invalid binary digit",
	MissingDigitsAfterBasePrefix:   "missing digits after base prefix",
	MissingDigitsAfterExponentMark: "missing digits after exponent mark",
}

func (k LexErrorKind) String() string {
	if int(k) >= 0 && int(k) < len(lexErrorNames) {
		return lexErrorNames[k]
	}
	return fmt.Sprintf("LexErrorKind(%d)", int(k))
}

// LexError reports the first invalid byte encountered during tokenization.
// Offset is the byte's index in the input, or the input length when the
// failure is only detectable at end of input.
type LexError struct {
	Kind   LexErrorKind
	Offset int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("offset %d: %s", e.Offset, e.Kind)
}

// keywords maps identifier spelling to its keyword TokenType.
var keywords = map[string]TokenType{
	"and":      AND,
	"else":     ELSE,
	"false":    FALSE,
	"function": FUNCTION,
	"if":       IF,
	"lambda":   LAMBDA,
	"let":      LET,
	"not":      NOT,
	"or":       OR,
	"return":   RETURN,
	"true":     TRUE,
	"xor":      XOR,
}

// state is the lexer's current position in its finite-state machine.
type state int

const (
	stateStart state = iota
	stateIdentifier
	stateZero        // saw a leading '0'; radix prefix or lone zero pending
	stateDot         // saw a leading '.'; dot operator or leading-dot float pending
	stateInteger     // accumulating decimal digits
	stateHexadecimal // inside 0x...
	stateOctal       // inside 0o...
	stateBinary      // inside 0b...
	stateFractional  // accumulating digits after the decimal point
	stateExponent    // accumulating digits after 'e'
	stateEquals      // saw '='; ASSIGN or EQUALS pending
	stateMinus       // saw '-'; MINUS or RIGHT_ARROW pending
)

// action is a state's verdict on the byte it was offered.
type action int

const (
	// consumed: the byte was accepted; read the next one.
	consumed action = iota
	// reconsume: a token was completed without the byte; offer the same byte
	// to the start state as the first byte of the next token. This is what
	// gives maximal-munch tokenization without a lookahead buffer.
	reconsume
)

// Lexer holds all mutable state for a single tokenization pass. The scratch
// buffers accumulate the pending token's digit values or identifier bytes and
// are handed off (not copied) into the emitted token.
type Lexer struct {
	state      state
	integer    []uint8
	fractional []uint8
	exponent   []uint8
	identifier []byte
	tokens     []Token
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (l *Lexer) emit(tok Token) {
	l.tokens = append(l.tokens, tok)
}

// takeInteger hands the integer scratch buffer to the caller and resets it.
func (l *Lexer) takeInteger() []uint8 {
	digits := l.integer
	l.integer = nil
	return digits
}

func (l *Lexer) takeFractional() []uint8 {
	digits := l.fractional
	l.fractional = nil
	return digits
}

func (l *Lexer) takeExponent() []uint8 {
	digits := l.exponent
	l.exponent = nil
	return digits
}

// emitInteger emits the accumulated integer scratch buffer as an INTEGER
// token in the given base.
func (l *Lexer) emitInteger(base Radix) {
	l.emit(Token{Type: INTEGER, Int: &IntegerRepresentation{Base: base, Digits: l.takeInteger()}})
}

// emitDecimalFloat emits the accumulated integer/fractional buffers as a
// decimal-form FLOAT token. Either part may be empty.
func (l *Lexer) emitDecimalFloat() {
	l.emit(Token{Type: FLOAT, Float: &FloatRepresentation{
		Integer:    l.takeInteger(),
		Fractional: l.takeFractional(),
	}})
}

// emitScientificFloat emits the accumulated buffers as a scientific-form
// FLOAT token. The exponent's emptiness is NOT checked here; see stepExponent.
func (l *Lexer) emitScientificFloat() {
	l.emit(Token{Type: FLOAT, Float: &FloatRepresentation{
		Integer:    l.takeInteger(),
		Fractional: l.takeFractional(),
		Exponent:   l.takeExponent(),
		Scientific: true,
	}})
}

// classifyIdentifier emits the accumulated identifier bytes as either a
// keyword token or an IDENTIFIER owning its spelling.
func (l *Lexer) classifyIdentifier() {
	if tt, ok := keywords[string(l.identifier)]; ok {
		l.identifier = nil
		l.emit(Token{Type: tt})
		return
	}
	ident := l.identifier
	l.identifier = nil
	l.emit(Token{Type: IDENTIFIER, Ident: ident})
}

// stepStart dispatches the first byte of a token. Whitespace is skipped with
// no token; single-character symbols are emitted directly; everything
// ambiguous moves to a dedicated state.
func (l *Lexer) stepStart(b byte) (action, *LexError) {
	switch {
	case b == ' ' || b == '\t' || b == '\r' || b == '\n':
		return consumed, nil
	case isLetter(b) || b == '_':
		l.identifier = append(l.identifier, b)
		l.state = stateIdentifier
		return consumed, nil
	case b == '0':
		l.state = stateZero
		return consumed, nil
	case isDigit(b):
		l.integer = append(l.integer, b-'0')
		l.state = stateInteger
		return consumed, nil
	}

	var tt TokenType
	switch b {
	case '+':
		tt = PLUS
	case '-':
		l.state = stateMinus
		return consumed, nil
	case '*':
		tt = STAR
	case '/':
		tt = SLASH
	case '.':
		l.state = stateDot
		return consumed, nil
	case ',':
		tt = COMMA
	case ':':
		tt = COLON
	case ';':
		tt = SEMICOLON
	case '=':
		l.state = stateEquals
		return consumed, nil
	case '(':
		tt = LPAREN
	case ')':
		tt = RPAREN
	case '[':
		tt = LBRACKET
	case ']':
		tt = RBRACKET
	case '{':
		tt = LBRACE
	case '}':
		tt = RBRACE
	default:
		return consumed, &LexError{Kind: UnexpectedByte}
	}
	l.emit(Token{Type: tt})
	return consumed, nil
}

// stepIdentifier accumulates identifier bytes until a byte outside the
// identifier class ends the token.
func (l *Lexer) stepIdentifier(b byte) (action, *LexError) {
	if isLetter(b) || isDigit(b) || b == '_' {
		l.identifier = append(l.identifier, b)
		return consumed, nil
	}
	l.classifyIdentifier()
	l.state = stateStart
	return reconsume, nil
}

// stepZero disambiguates what a leading '0' starts: a radix prefix, a float
// like "0.5", or a lone zero. "01" is rejected rather than read as octal.
func (l *Lexer) stepZero(b byte) (action, *LexError) {
	switch {
	case b == 'x':
		l.state = stateHexadecimal
		return consumed, nil
	case b == 'o':
		l.state = stateOctal
		return consumed, nil
	case b == 'b':
		l.state = stateBinary
		return consumed, nil
	case b == '.':
		l.integer = append(l.integer, 0)
		l.state = stateFractional
		return consumed, nil
	case isDigit(b):
		return consumed, &LexError{Kind: LeadingZeroWithoutBase}
	case isLetter(b):
		return consumed, &LexError{Kind: InvalidNumberDigit}
	}
	l.integer = append(l.integer, 0)
	l.emitInteger(Decimal)
	l.state = stateStart
	return reconsume, nil
}

// stepDot disambiguates a bare '.' operator from a leading-dot float such as
// ".14" (whose integer part stays empty).
func (l *Lexer) stepDot(b byte) (action, *LexError) {
	if isDigit(b) {
		l.fractional = append(l.fractional, b-'0')
		l.state = stateFractional
		return consumed, nil
	}
	l.emit(Token{Type: DOT})
	l.state = stateStart
	return reconsume, nil
}

// stepInteger accumulates decimal digits; '.' continues into a float and 'e'
// jumps straight to an exponent (e.g. "3e10", fractional part empty).
func (l *Lexer) stepInteger(b byte) (action, *LexError) {
	switch {
	case isDigit(b):
		l.integer = append(l.integer, b-'0')
		return consumed, nil
	case b == '.':
		l.state = stateFractional
		return consumed, nil
	case b == 'e':
		l.state = stateExponent
		return consumed, nil
	}
	l.emitInteger(Decimal)
	l.state = stateStart
	return reconsume, nil
}

// stepHexadecimal accumulates hex digit values, mapping letters to 10-15.
func (l *Lexer) stepHexadecimal(b byte) (action, *LexError) {
	switch {
	case isDigit(b):
		l.integer = append(l.integer, b-'0')
		return consumed, nil
	case b >= 'A' && b <= 'F':
		l.integer = append(l.integer, 10+(b-'A'))
		return consumed, nil
	case b >= 'a' && b <= 'f':
		l.integer = append(l.integer, 10+(b-'a'))
		return consumed, nil
	case isLetter(b):
		return consumed, &LexError{Kind: InvalidHexadecimalDigit}
	}
	if len(l.integer) == 0 {
		return consumed, &LexError{Kind: MissingDigitsAfterBasePrefix}
	}
	l.emitInteger(Hexadecimal)
	l.state = stateStart
	return reconsume, nil
}

func (l *Lexer) stepOctal(b byte) (action, *LexError) {
	switch {
	case b >= '0' && b <= '7':
		l.integer = append(l.integer, b-'0')
		return consumed, nil
	case b == '8' || b == '9' || isLetter(b):
		return consumed, &LexError{Kind: InvalidOctalDigit}
	}
	if len(l.integer) == 0 {
		return consumed, &LexError{Kind: MissingDigitsAfterBasePrefix}
	}
	l.emitInteger(Octal)
	l.state = stateStart
	return reconsume, nil
}

func (l *Lexer) stepBinary(b byte) (action, *LexError) {
	switch {
	case b == '0' || b == '1':
		l.integer = append(l.integer, b-'0')
		return consumed, nil
	case isDigit(b) || isLetter(b):
		return consumed, &LexError{Kind: InvalidBinaryDigit}
	}
	if len(l.integer) == 0 {
		return consumed, &LexError{Kind: MissingDigitsAfterBasePrefix}
	}
	l.emitInteger(Binary)
	l.state = stateStart
	return reconsume, nil
}

// stepFractional accumulates digits after the decimal point.
func (l *Lexer) stepFractional(b byte) (action, *LexError) {
	switch {
	case isDigit(b):
		l.fractional = append(l.fractional, b-'0')
		return consumed, nil
	case b == 'e':
		l.state = stateExponent
		return consumed, nil
	}
	l.emitDecimalFloat()
	l.state = stateStart
	return reconsume, nil
}

// stepExponent accumulates exponent digits. Any non-digit byte ends the token
// WITHOUT checking that the exponent is non-empty ("3e," lexes as a
// scientific float with an empty exponent followed by a comma); only the
// end-of-input path in finish rejects an empty exponent. Keep the two paths
// separate.
func (l *Lexer) stepExponent(b byte) (action, *LexError) {
	if isDigit(b) {
		l.exponent = append(l.exponent, b-'0')
		return consumed, nil
	}
	l.emitScientificFloat()
	l.state = stateStart
	return reconsume, nil
}

// stepEquals disambiguates '=' (ASSIGN) from '==' (EQUALS).
func (l *Lexer) stepEquals(b byte) (action, *LexError) {
	if b == '=' {
		l.emit(Token{Type: EQUALS})
		l.state = stateStart
		return consumed, nil
	}
	l.emit(Token{Type: ASSIGN})
	l.state = stateStart
	return reconsume, nil
}

// stepMinus disambiguates '-' (MINUS) from '->' (RIGHT_ARROW).
func (l *Lexer) stepMinus(b byte) (action, *LexError) {
	if b == '>' {
		l.emit(Token{Type: RIGHT_ARROW})
		l.state = stateStart
		return consumed, nil
	}
	l.emit(Token{Type: MINUS})
	l.state = stateStart
	return reconsume, nil
}

// step runs one transition of the state machine against a single byte.
func (l *Lexer) step(b byte) (action, *LexError) {
	switch l.state {
	case stateStart:
		return l.stepStart(b)
	case stateIdentifier:
		return l.stepIdentifier(b)
	case stateZero:
		return l.stepZero(b)
	case stateDot:
		return l.stepDot(b)
	case stateInteger:
		return l.stepInteger(b)
	case stateHexadecimal:
		return l.stepHexadecimal(b)
	case stateOctal:
		return l.stepOctal(b)
	case stateBinary:
		return l.stepBinary(b)
	case stateFractional:
		return l.stepFractional(b)
	case stateExponent:
		return l.stepExponent(b)
	case stateEquals:
		return l.stepEquals(b)
	case stateMinus:
		return l.stepMinus(b)
	}
	panic(fmt.Sprintf("lexer in unknown state %d", l.state))
}

// feed offers one byte to the machine, looping until some state actually
// consumes it. A reconsume emits at most one token before landing in the
// start state, so the loop runs at most twice per byte.
func (l *Lexer) feed(b byte) *LexError {
	for {
		act, err := l.step(b)
		if err != nil {
			return err
		}
		if act == consumed {
			return nil
		}
	}
}

// finish finalizes whatever token is pending once the input is exhausted,
// using no further byte. n is the input length, used as the error offset for
// failures only detectable here.
func (l *Lexer) finish(n int) *LexError {
	switch l.state {
	case stateStart:
		// nothing pending
	case stateIdentifier:
		l.classifyIdentifier()
	case stateZero:
		l.integer = append(l.integer, 0)
		l.emitInteger(Decimal)
	case stateDot:
		l.emit(Token{Type: DOT})
	case stateInteger:
		l.emitInteger(Decimal)
	case stateHexadecimal:
		if len(l.integer) == 0 {
			return &LexError{Kind: MissingDigitsAfterBasePrefix, Offset: n}
		}
		l.emitInteger(Hexadecimal)
	case stateOctal:
		if len(l.integer) == 0 {
			return &LexError{Kind: MissingDigitsAfterBasePrefix, Offset: n}
		}
		l.emitInteger(Octal)
	case stateBinary:
		if len(l.integer) == 0 {
			return &LexError{Kind: MissingDigitsAfterBasePrefix, Offset: n}
		}
		l.emitInteger(Binary)
	case stateFractional:
		// an empty fractional part is fine: "3." is a valid float
		l.emitDecimalFloat()
	case stateExponent:
		if len(l.exponent) == 0 {
			return &LexError{Kind: MissingDigitsAfterExponentMark, Offset: n}
		}
		l.emitScientificFloat()
	case stateEquals:
		l.emit(Token{Type: ASSIGN})
	case stateMinus:
		l.emit(Token{Type: MINUS})
	}
	return nil
}

// Tokenize scans src left to right in a single pass and returns its tokens in
// source order. It fails fast: the first invalid byte (or invalid end-of-input
// condition) aborts the whole pass with a LexError carrying the byte offset,
// and no partial token sequence is returned. The output carries no explicit
// end-of-input marker; exhaustion of the slice is the consumer's signal.
func Tokenize(src []byte) ([]Token, error) {
	l := &Lexer{}
	for i := 0; i < len(src); i++ {
		if err := l.feed(src[i]); err != nil {
			err.Offset = i
			return nil, err
		}
	}
	if err := l.finish(len(src)); err != nil {
		return nil, err
	}
	return l.tokens, nil
}
