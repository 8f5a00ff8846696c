// Package goexpr evaluates arithmetic expressions through a three
// stage pipeline: a lexer producing tokens, a recursive descent parser
// producing an expression tree, and a tree walking evaluator producing
// a number.
package goexpr

import (
	"encoding/json"
	"fmt"
)

type NodeType int

const (
	NodeLiteral NodeType = iota
	NodeBinOp
)

func (t NodeType) String() string {
	switch t {
	case NodeLiteral:
		return "Literal"
	case NodeBinOp:
		return "BinaryOp"
	}
	return "Unknown"
}

// Node is one vertex of the expression tree. Literal nodes carry an
// int64 or float64 in Value; binary nodes carry the operator rune and
// two children. Nodes are never mutated after the parser builds them.
type Node struct {
	Type  NodeType
	Value interface{}
	Op    rune
	Left  *Node
	Right *Node
}

// String renders the tree as fully parenthesized infix.
func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	switch n.Type {
	case NodeLiteral:
		return fmt.Sprint(n.Value)
	case NodeBinOp:
		return fmt.Sprintf("(%v %c %v)", n.Left, n.Op, n.Right)
	}
	return fmt.Sprintf("Unknown(%d)", int(n.Type))
}

func (n *Node) MarshalJSON() ([]byte, error) {
	switch n.Type {
	case NodeLiteral:
		return json.Marshal(struct {
			Type  string      `json:"type"`
			Value interface{} `json:"value"`
		}{"Literal", n.Value})
	case NodeBinOp:
		return json.Marshal(struct {
			Type  string `json:"type"`
			Op    string `json:"op"`
			Left  *Node  `json:"left"`
			Right *Node  `json:"right"`
		}{"BinaryOp", string(n.Op), n.Left, n.Right})
	}
	return nil, ErrUnknownNode
}
