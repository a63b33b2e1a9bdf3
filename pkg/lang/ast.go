package lang

import "fmt"

// Node is implemented by every AST node. The tree is strictly owned top-down:
// a node's operands belong to it alone, so there is no sharing and no cycles.
type Node interface {
	node()
	String() string
}

// Identifier is a reference to a named value.
//
//	let x = y;
//	    ^   ^  Identifier{Name: "x"}, Identifier{Name: "y"}
type Identifier struct {
	Name []byte
}

func (*Identifier) node()            {}
func (i *Identifier) String() string { return string(i.Name) }

// IntegerLiteral wraps the digit-value representation lexed from an integer
// literal. The payload is cloned out of the token, never shared with it.
type IntegerLiteral struct {
	Value *IntegerRepresentation
}

func (*IntegerLiteral) node()            {}
func (l *IntegerLiteral) String() string { return l.Value.String() }

// FloatLiteral wraps the digit-value representation lexed from a float literal.
type FloatLiteral struct {
	Value *FloatRepresentation
}

func (*FloatLiteral) node()            {}
func (l *FloatLiteral) String() string { return l.Value.String() }

// UnaryOperation owns the single operand subtree of a unary node.
type UnaryOperation struct {
	Operand Node
}

// BinaryOperation owns both operand subtrees of a binary node.
type BinaryOperation struct {
	Left  Node
	Right Node
}

// UnaryAddition represents prefix '+'. It has token and node support but no
// grammar production yet; parseTerm's factor level is where it would slot in.
type UnaryAddition struct {
	UnaryOperation
}

func (*UnaryAddition) node()            {}
func (u *UnaryAddition) String() string { return fmt.Sprintf("(+ %s)", u.Operand) }

// UnarySubtraction represents prefix '-'. Reserved like UnaryAddition.
type UnarySubtraction struct {
	UnaryOperation
}

func (*UnarySubtraction) node()            {}
func (u *UnarySubtraction) String() string { return fmt.Sprintf("(- %s)", u.Operand) }

// LogicalNot represents "not". Reserved; no production reaches it yet.
type LogicalNot struct {
	UnaryOperation
}

func (*LogicalNot) node()            {}
func (u *LogicalNot) String() string { return fmt.Sprintf("(not %s)", u.Operand) }

// BinaryAddition represents Left + Right.
type BinaryAddition struct {
	BinaryOperation
}

func (*BinaryAddition) node()            {}
func (b *BinaryAddition) String() string { return fmt.Sprintf("(%s + %s)", b.Left, b.Right) }

// BinarySubtraction represents Left - Right.
type BinarySubtraction struct {
	BinaryOperation
}

func (*BinarySubtraction) node()            {}
func (b *BinarySubtraction) String() string { return fmt.Sprintf("(%s - %s)", b.Left, b.Right) }

// BinaryMultiplication represents Left * Right.
type BinaryMultiplication struct {
	BinaryOperation
}

func (*BinaryMultiplication) node() {}
func (b *BinaryMultiplication) String() string {
	return fmt.Sprintf("(%s * %s)", b.Left, b.Right)
}

// BinaryDivision represents Left / Right.
type BinaryDivision struct {
	BinaryOperation
}

func (*BinaryDivision) node()            {}
func (b *BinaryDivision) String() string { return fmt.Sprintf("(%s / %s)", b.Left, b.Right) }

// LogicalAnd represents Left and Right. Reserved; slots in as a precedence
// level below term, following the same left-associative iterative pattern.
type LogicalAnd struct {
	BinaryOperation
}

func (*LogicalAnd) node()            {}
func (b *LogicalAnd) String() string { return fmt.Sprintf("(%s and %s)", b.Left, b.Right) }

// LogicalOr represents Left or Right. Reserved like LogicalAnd.
type LogicalOr struct {
	BinaryOperation
}

func (*LogicalOr) node()            {}
func (b *LogicalOr) String() string { return fmt.Sprintf("(%s or %s)", b.Left, b.Right) }

// LogicalXor represents Left xor Right. Reserved like LogicalAnd.
type LogicalXor struct {
	BinaryOperation
}

func (*LogicalXor) node()            {}
func (b *LogicalXor) String() string { return fmt.Sprintf("(%s xor %s)", b.Left, b.Right) }

// Assign represents a let binding: Left is the bound Identifier, Right the
// initializer expression.
type Assign struct {
	BinaryOperation
}

func (*Assign) node()            {}
func (b *Assign) String() string { return fmt.Sprintf("Assign(%s = %s)", b.Left, b.Right) }
