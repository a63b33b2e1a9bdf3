package lang

import "testing"

func TestNodeString(t *testing.T) {
	one := func() Node {
		return &IntegerLiteral{Value: &IntegerRepresentation{Base: Decimal, Digits: []uint8{1}}}
	}
	a := func() Node { return &Identifier{Name: []byte("a")} }
	b := func() Node { return &Identifier{Name: []byte("b")} }

	tests := []struct {
		name string
		node Node
		want string
	}{
		{"Identifier", a(), "a"},
		{"IntegerLiteral", one(), "decimal[1]"},
		{"FloatLiteral", &FloatLiteral{Value: &FloatRepresentation{Integer: []uint8{3}}}, "decimal{int=[3] frac=[]}"},
		{"BinaryAddition", &BinaryAddition{BinaryOperation{Left: a(), Right: one()}}, "(a + decimal[1])"},
		{"BinarySubtraction", &BinarySubtraction{BinaryOperation{Left: a(), Right: b()}}, "(a - b)"},
		{"BinaryMultiplication", &BinaryMultiplication{BinaryOperation{Left: a(), Right: b()}}, "(a * b)"},
		{"BinaryDivision", &BinaryDivision{BinaryOperation{Left: a(), Right: b()}}, "(a / b)"},
		{"Assign", &Assign{BinaryOperation{Left: a(), Right: one()}}, "Assign(a = decimal[1])"},

		// Reserved extension points: nodes exist even though no grammar
		// production reaches them yet.
		{"UnaryAddition", &UnaryAddition{UnaryOperation{Operand: a()}}, "(+ a)"},
		{"UnarySubtraction", &UnarySubtraction{UnaryOperation{Operand: a()}}, "(- a)"},
		{"LogicalNot", &LogicalNot{UnaryOperation{Operand: a()}}, "(not a)"},
		{"LogicalAnd", &LogicalAnd{BinaryOperation{Left: a(), Right: b()}}, "(a and b)"},
		{"LogicalOr", &LogicalOr{BinaryOperation{Left: a(), Right: b()}}, "(a or b)"},
		{"LogicalXor", &LogicalXor{BinaryOperation{Left: a(), Right: b()}}, "(a xor b)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRepresentationClone(t *testing.T) {
	intRep := &IntegerRepresentation{Base: Binary, Digits: []uint8{1, 0, 1}}
	intClone := intRep.Clone()
	intClone.Digits[0] = 0
	if intRep.Digits[0] != 1 {
		t.Errorf("IntegerRepresentation.Clone shares digit storage")
	}

	floatRep := &FloatRepresentation{Integer: []uint8{3}, Fractional: []uint8{1, 4}, Exponent: []uint8{1, 0}, Scientific: true}
	floatClone := floatRep.Clone()
	floatClone.Exponent[0] = 9
	if floatRep.Exponent[0] != 1 {
		t.Errorf("FloatRepresentation.Clone shares digit storage")
	}
	if !floatRep.Equal(floatRep.Clone()) {
		t.Errorf("FloatRepresentation.Equal(Clone()) = false, want true")
	}

	var nilInt *IntegerRepresentation
	if nilInt.Clone() != nil {
		t.Errorf("nil IntegerRepresentation.Clone() != nil")
	}
}

func TestRepresentationEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *IntegerRepresentation
		want bool
	}{
		{
			name: "Same Digits",
			a:    &IntegerRepresentation{Base: Decimal, Digits: []uint8{4, 7}},
			b:    &IntegerRepresentation{Base: Decimal, Digits: []uint8{4, 7}},
			want: true,
		},
		{
			name: "Different Base",
			a:    &IntegerRepresentation{Base: Decimal, Digits: []uint8{4, 7}},
			b:    &IntegerRepresentation{Base: Octal, Digits: []uint8{4, 7}},
			want: false,
		},
		{
			name: "Nil Versus Empty Digits",
			a:    &IntegerRepresentation{Base: Decimal},
			b:    &IntegerRepresentation{Base: Decimal, Digits: []uint8{}},
			want: true,
		},
		{
			name: "Nil Receiver",
			a:    nil,
			b:    &IntegerRepresentation{Base: Decimal},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
