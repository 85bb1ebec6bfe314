package Expressions

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	lin "github.com/g-m-twostay/go-linear"
	"github.com/g-m-twostay/go-linear/Stacks"
)

// precedence of the binary operators InfixToPostfix knows. Anything else that is not an operand
// or a parenthesis is treated as an operator of precedence 0.
var precedence = map[rune]int{'+': 1, '-': 1, '*': 2, '/': 2, '^': 3}

// InfixToPostfix converts expr to postfix notation with the shunting-yard algorithm. Whitespace
// is dropped and every letter or digit is a single operand.
//
// Popping is left-associative for every operator, ^ included, so "2^3^2" becomes "23^2^".
// An unmatched ) drains the operators above it; an unmatched ( is emitted as is when the
// operators are drained at the end.
// Time: O(n); Space: O(n)
func InfixToPostfix(expr string) string {
	ops := Stacks.MakeLinkedStack[rune]()
	var out strings.Builder
	out.Grow(len(expr))
	for _, r := range expr {
		switch {
		case unicode.IsSpace(r):
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			out.WriteRune(r)
		case r == '(':
			ops.Push(r)
		case r == ')':
			for top, err := ops.Peek(); err == nil && top != '('; top, err = ops.Peek() {
				out.WriteRune(top)
				_, _ = ops.Pop()
			}
			if top, err := ops.Peek(); err == nil && top == '(' {
				_, _ = ops.Pop()
			}
		default:
			for top, err := ops.Peek(); err == nil && top != '('; top, err = ops.Peek() {
				if p, known := precedence[top]; known && precedence[r] > p {
					break
				}
				out.WriteRune(top)
				_, _ = ops.Pop()
			}
			ops.Push(r)
		}
	}
	for !ops.Empty() {
		top, _ := ops.Pop()
		out.WriteRune(top)
	}
	return out.String()
}

// EvaluatePostfix evaluates a postfix expression of single digit operands and the operators
// + - * / ^. Division is exact, not integer. Characters that are neither digits nor operators,
// such as spaces, are skipped.
// It fails with *InvalidExpressionError when an operator finds fewer than two operands, when a
// division by zero happens, or when the scan does not end with exactly one value.
// Time: O(n); Space: O(n)
func EvaluatePostfix(expr string) (float64, error) {
	st := Stacks.MakeArrayStack[float64](0)
	for i, r := range expr {
		switch r {
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			st.Push(float64(r - '0'))
		case '+', '-', '*', '/', '^':
			if st.Size() < 2 {
				return 0, &lin.InvalidExpressionError{Expr: expr, Pos: i,
					Reason: "operator " + strconv.QuoteRune(r) + " needs two operands, found " + strconv.FormatUint(uint64(st.Size()), 10)}
			}
			b, _ := st.Pop()
			a, _ := st.Pop()
			v, err := apply(r, a, b)
			if err != nil {
				return 0, &lin.InvalidExpressionError{Expr: expr, Pos: i, Reason: err.Error()}
			}
			st.Push(v)
		}
	}
	if st.Size() != 1 {
		return 0, &lin.InvalidExpressionError{Expr: expr, Pos: len(expr),
			Reason: "expected exactly one value left, found " + strconv.FormatUint(uint64(st.Size()), 10)}
	}
	v, _ := st.Pop()
	return v, nil
}

// Evaluate converts an infix expression with InfixToPostfix and evaluates the result.
func Evaluate(infix string) (float64, error) {
	return EvaluatePostfix(InfixToPostfix(infix))
}

type reason string

func (r reason) Error() string { return string(r) }

const errDivisionByZero reason = "division by zero"

func apply(op rune, a, b float64) (float64, error) {
	switch op {
	case '+':
		return a + b, nil
	case '-':
		return a - b, nil
	case '*':
		return a * b, nil
	case '/':
		if b == 0 {
			return 0, errDivisionByZero
		}
		return a / b, nil
	default:
		return math.Pow(a, b), nil
	}
}
