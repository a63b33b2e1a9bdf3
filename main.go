package main

import (
	"flag"
	"fmt"
	"os"

	"goexpr/pkg/lang"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

const testSource = `let area = width * height + 1;`

func main() {
	inPath := flag.String("in", "", "input script path (default: a built-in sample)")
	showTokens := flag.Bool("tokens", false, "print the token stream before the AST")
	jsonOutput := flag.Bool("json", false, "emit the token stream and AST as JSON")
	flag.Parse()

	src := []byte(testSource)
	if *inPath != "" {
		data, err := os.ReadFile(*inPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
			os.Exit(1)
		}
		src = data
	}

	tokens, err := lang.Tokenize(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lex error:", err)
		os.Exit(1)
	}

	node, err := lang.Parse(tokens)
	if err != nil {
		fmt.Fprintln(os.Stderr, "parse error:", err)
		os.Exit(1)
	}

	if *jsonOutput {
		report := dumpReport{AST: dumpNode(node)}
		if *showTokens {
			report.Tokens = dumpTokens(tokens)
		}
		err := json.MarshalWrite(os.Stdout, report, jsontext.Multiline(true), jsontext.WithIndent("  "))
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not marshal json:", err)
			os.Exit(1)
		}
		fmt.Println()
		return
	}

	if *showTokens {
		fmt.Printf("Tokens (%d)\n", len(tokens))
		for _, tok := range tokens {
			fmt.Println(" ", tok)
		}
		fmt.Println()
	}

	fmt.Println("AST")
	fmt.Println(" ", node)
}

// dumpReport is the top-level JSON document.
type dumpReport struct {
	Tokens []tokenDump `json:"tokens,omitzero"`
	AST    any         `json:"ast"`
}

// tokenDump is the JSON shape of a token: digit values as plain numbers
// rather than base64 bytes, payload fields omitted unless set.
type tokenDump struct {
	Type    string       `json:"type"`
	Ident   string       `json:"ident,omitzero"`
	Integer *integerDump `json:"integer,omitzero"`
	Float   *floatDump   `json:"float,omitzero"`
}

type integerDump struct {
	Base   string `json:"base"`
	Digits []int  `json:"digits"`
}

type floatDump struct {
	Scientific bool  `json:"scientific"`
	Integer    []int `json:"integer"`
	Fractional []int `json:"fractional"`
	Exponent   []int `json:"exponent,omitzero"`
}

func digitValues(digits []uint8) []int {
	out := make([]int, len(digits))
	for i, d := range digits {
		out[i] = int(d)
	}
	return out
}

func dumpInteger(rep *lang.IntegerRepresentation) *integerDump {
	return &integerDump{Base: rep.Base.String(), Digits: digitValues(rep.Digits)}
}

func dumpFloat(rep *lang.FloatRepresentation) *floatDump {
	return &floatDump{
		Scientific: rep.Scientific,
		Integer:    digitValues(rep.Integer),
		Fractional: digitValues(rep.Fractional),
		Exponent:   digitValues(rep.Exponent),
	}
}

func dumpTokens(tokens []lang.Token) []tokenDump {
	out := make([]tokenDump, len(tokens))
	for i, tok := range tokens {
		d := tokenDump{Type: tok.Type.String()}
		switch tok.Type {
		case lang.IDENTIFIER:
			d.Ident = string(tok.Ident)
		case lang.INTEGER:
			d.Integer = dumpInteger(tok.Int)
		case lang.FLOAT:
			d.Float = dumpFloat(tok.Float)
		}
		out[i] = d
	}
	return out
}

func unaryDump(op string, n lang.UnaryOperation) any {
	return map[string]any{"op": op, "operand": dumpNode(n.Operand)}
}

func binaryDump(op string, n lang.BinaryOperation) any {
	return map[string]any{"op": op, "left": dumpNode(n.Left), "right": dumpNode(n.Right)}
}

// dumpNode renders an AST subtree as nested maps for JSON output.
func dumpNode(node lang.Node) any {
	switch n := node.(type) {
	case *lang.Identifier:
		return map[string]any{"identifier": string(n.Name)}
	case *lang.IntegerLiteral:
		return map[string]any{"integer": dumpInteger(n.Value)}
	case *lang.FloatLiteral:
		return map[string]any{"float": dumpFloat(n.Value)}
	case *lang.UnaryAddition:
		return unaryDump("+", n.UnaryOperation)
	case *lang.UnarySubtraction:
		return unaryDump("-", n.UnaryOperation)
	case *lang.LogicalNot:
		return unaryDump("not", n.UnaryOperation)
	case *lang.BinaryAddition:
		return binaryDump("+", n.BinaryOperation)
	case *lang.BinarySubtraction:
		return binaryDump("-", n.BinaryOperation)
	case *lang.BinaryMultiplication:
		return binaryDump("*", n.BinaryOperation)
	case *lang.BinaryDivision:
		return binaryDump("/", n.BinaryOperation)
	case *lang.LogicalAnd:
		return binaryDump("and", n.BinaryOperation)
	case *lang.LogicalOr:
		return binaryDump("or", n.BinaryOperation)
	case *lang.LogicalXor:
		return binaryDump("xor", n.BinaryOperation)
	case *lang.Assign:
		return binaryDump("=", n.BinaryOperation)
	}
	return nil
}
