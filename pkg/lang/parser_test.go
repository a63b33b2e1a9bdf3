package lang

import (
	"errors"
	"testing"
)

// lex is a test helper that tokenizes src and fails the test on a lex error.
func lex(t *testing.T, src string) []Token {
	t.Helper()
	tokens, err := Tokenize([]byte(src))
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", src, err)
	}
	return tokens
}

func TestParseLetStatement(t *testing.T) {
	p := NewParser(lex(t, "let x = 123;"))
	node, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	assign, ok := node.(*Assign)
	if !ok {
		t.Fatalf("Parse = %T, want *Assign", node)
	}
	name, ok := assign.Left.(*Identifier)
	if !ok || string(name.Name) != "x" {
		t.Errorf("Assign.Left = %v, want Identifier(x)", assign.Left)
	}
	lit, ok := assign.Right.(*IntegerLiteral)
	if !ok {
		t.Fatalf("Assign.Right = %T, want *IntegerLiteral", assign.Right)
	}
	want := &IntegerRepresentation{Base: Decimal, Digits: []uint8{1, 2, 3}}
	if !lit.Value.Equal(want) {
		t.Errorf("Assign.Right value = %s, want %s", lit.Value, want)
	}

	// The statement parser does not consume a trailing terminator: the
	// semicolon must still be at the cursor.
	if got := p.peek().Type; got != SEMICOLON {
		t.Errorf("token at cursor after Parse = %s, want SEMICOLON", got)
	}
}

func TestParseExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{
			name: "Multiplication Binds Tighter Than Addition",
			src:  "let x = 1 + 2 * 3",
			want: "Assign(x = (decimal[1] + (decimal[2] * decimal[3])))",
		},
		{
			name: "Parentheses Override Precedence",
			src:  "let x = (1 + 2) * 3",
			want: "Assign(x = ((decimal[1] + decimal[2]) * decimal[3]))",
		},
		{
			name: "Subtraction Is Left Associative",
			src:  "let x = 9 - 2 - 3",
			want: "Assign(x = ((decimal[9] - decimal[2]) - decimal[3]))",
		},
		{
			name: "Division Is Left Associative",
			src:  "let x = a / b / c",
			want: "Assign(x = ((a / b) / c))",
		},
		{
			name: "Mixed Identifiers And Literals",
			src:  "let area = width * height + 1",
			want: "Assign(area = ((width * height) + decimal[1]))",
		},
		{
			name: "Float Literal",
			src:  "let f = .5",
			want: "Assign(f = decimal{int=[] frac=[5]})",
		},
		{
			name: "Scientific Float Literal",
			src:  "let f = 3.14e10",
			want: "Assign(f = scientific{int=[3] frac=[1 4] exp=[1 0]})",
		},
		{
			name: "Hexadecimal Literal",
			src:  "let mask = 0xfF",
			want: "Assign(mask = hexadecimal[15 15])",
		},
		{
			name: "Nested Parentheses",
			src:  "let x = ((a))",
			want: "Assign(x = a)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(lex(t, tt.src))
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.src, err)
			}
			if got := node.String(); got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		wantOffset int
		wantGot    TokenType
	}{
		{name: "Leading Token Not Let", src: "x = 1", wantOffset: 0, wantGot: IDENTIFIER},
		{name: "Return Is Not A Statement", src: "return 1", wantOffset: 0, wantGot: RETURN},
		{name: "Missing Identifier", src: "let 1 = 2", wantOffset: 1, wantGot: INTEGER},
		{name: "Missing Assign", src: "let x 1", wantOffset: 2, wantGot: INTEGER},
		{name: "Missing Initializer", src: "let x =", wantOffset: 3, wantGot: EOF},
		{name: "Bad Primary", src: "let x = ;", wantOffset: 3, wantGot: SEMICOLON},
		{name: "Dangling Operator", src: "let x = 1 +", wantOffset: 5, wantGot: EOF},
		{name: "Unclosed Parenthesis", src: "let x = (1 + 2", wantOffset: 7, wantGot: EOF},
		{name: "Empty Input", src: "", wantOffset: 0, wantGot: EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := Parse(lex(t, tt.src))
			if err == nil {
				t.Fatalf("Parse(%q) = %s, want error", tt.src, node)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("Parse(%q) error = %T, want *ParseError", tt.src, err)
			}
			if parseErr.Offset != tt.wantOffset || parseErr.Got != tt.wantGot {
				t.Errorf("Parse(%q) error = {%d, %s}, want {%d, %s}",
					tt.src, parseErr.Offset, parseErr.Got, tt.wantOffset, tt.wantGot)
			}
		})
	}
}

// Literal and identifier payloads are cloned into the AST: mutating the token
// slice afterwards must not reach the tree.
func TestParseClonesPayloads(t *testing.T) {
	tokens := lex(t, "let x = 47")
	node, err := Parse(tokens)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}

	tokens[1].Ident[0] = 'z'
	tokens[3].Int.Digits[0] = 9

	assign := node.(*Assign)
	if got := string(assign.Left.(*Identifier).Name); got != "x" {
		t.Errorf("identifier after token mutation = %q, want %q", got, "x")
	}
	want := &IntegerRepresentation{Base: Decimal, Digits: []uint8{4, 7}}
	if got := assign.Right.(*IntegerLiteral).Value; !got.Equal(want) {
		t.Errorf("literal after token mutation = %s, want %s", got, want)
	}
}
