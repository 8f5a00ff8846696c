package goexpr

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			input: "42",
			want:  "42",
		},
		{
			input: "1 + 2 - 3",
			want:  "((1 + 2) - 3)",
		},
		{
			input: "3 + 5 * 2",
			want:  "(3 + (5 * 2))",
		},
		{
			input: "10 / 2 / 5",
			want:  "((10 / 2) / 5)",
		},
		{
			input: "2 ^ 3 ^ 2",
			want:  "(2 ^ (3 ^ 2))",
		},
		{
			input: "2 ^ 3 * 4",
			want:  "((2 ^ 3) * 4)",
		},
		{
			input: "(1 + 2) * 3",
			want:  "((1 + 2) * 3)",
		},
		{
			input: "3(4+5)",
			want:  "(3 * (4 + 5))",
		},
		{
			input: "2 2",
			want:  "(2 * 2)",
		},
		{
			input: "2(3)(4)",
			want:  "((2 * 3) * 4)",
		},
		{
			input: "2 ^ 2 (3)",
			want:  "((2 ^ 2) * 3)",
		},
		{
			input: "3.5 * 2",
			want:  "(3.5 * 2)",
		},
	}
	for _, test := range tests {
		t.Logf("%q", test.input)
		node, err := Parse(test.input)
		if err != nil {
			t.Error(err)
			continue
		}
		got := node.String()
		if got != test.want {
			t.Errorf("want %q for %q but got %q", test.want, test.input, got)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
		found    TokenType
	}{
		{"(1 + 2", TokenRParen, TokenEOF},
		{"1)", TokenEOF, TokenRParen},
		{"1 + 2)", TokenEOF, TokenRParen},
		{"1 +", TokenNone, TokenEOF},
		{"+ 1", TokenNone, TokenPlus},
		{"1 * * 2", TokenNone, TokenMul},
		{"", TokenNone, TokenEOF},
		{"()", TokenNone, TokenRParen},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("want error for %q but got none", test.input)
			continue
		}
		var synErr *SyntaxError
		if !errors.As(err, &synErr) {
			t.Errorf("want SyntaxError for %q but got %v", test.input, err)
			continue
		}
		if synErr.Expected != test.expected || synErr.Found != test.found {
			t.Errorf("want expected=%v found=%v for %q but got %v", test.expected, test.found, test.input, synErr)
		}
	}
}

func TestParseLexicalError(t *testing.T) {
	_, err := Parse("1 + $")
	var lexErr *LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("want LexicalError but got %v", err)
	}
	if lexErr.Char != '$' || lexErr.Pos != 4 {
		t.Errorf("want '$' at 4 but got %q at %d", lexErr.Char, lexErr.Pos)
	}
}

func TestParseIdempotent(t *testing.T) {
	const input = "(10 + 2) * 3 - 4 / 2"
	first, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Parse(input)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("two runs over one input differ (-first +second):\n%s", diff)
	}
}

func TestNodeJSON(t *testing.T) {
	node, err := Parse("3(4+5)")
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(node)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"BinaryOp","op":"*",` +
		`"left":{"type":"Literal","value":3},` +
		`"right":{"type":"BinaryOp","op":"+",` +
		`"left":{"type":"Literal","value":4},` +
		`"right":{"type":"Literal","value":5}}}`
	if string(b) != want {
		t.Errorf("want %s but got %s", want, b)
	}
}
