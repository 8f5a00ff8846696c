package goexpr

import (
	"errors"
	"math"
)

var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrUnknownNode    = errors.New("unknown node type")
)

// Eval walks the tree post order and returns an int64 or float64.
// Integer operands stay integer through '+', '-' and '*'; mixing with
// a float promotes the result. '/' and '^' always produce a float64,
// and the right operand of '/' is checked for zero before dividing.
func Eval(node *Node) (interface{}, error) {
	if node == nil {
		return nil, ErrUnknownNode
	}
	switch node.Type {
	case NodeLiteral:
		return node.Value, nil
	case NodeBinOp:
		lv, err := Eval(node.Left)
		if err != nil {
			return nil, err
		}
		rv, err := Eval(node.Right)
		if err != nil {
			return nil, err
		}
		return apply(node.Op, lv, rv)
	}
	return nil, ErrUnknownNode
}

func apply(op rune, lv, rv interface{}) (interface{}, error) {
	lf, lok := toFloat(lv)
	rf, rok := toFloat(rv)
	if !lok || !rok {
		return nil, ErrUnknownNode
	}
	li, lint := lv.(int64)
	ri, rint := rv.(int64)
	both := lint && rint

	switch op {
	case '+':
		if both {
			return li + ri, nil
		}
		return lf + rf, nil
	case '-':
		if both {
			return li - ri, nil
		}
		return lf - rf, nil
	case '*':
		if both {
			return li * ri, nil
		}
		return lf * rf, nil
	case '/':
		if rf == 0 {
			return nil, ErrDivisionByZero
		}
		return lf / rf, nil
	case '^':
		return math.Pow(lf, rf), nil
	}
	return nil, ErrUnknownNode
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
