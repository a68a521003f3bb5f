// Package token classifies the units of an infix expression: operands,
// which carry an opaque payload, and operators, which carry precedence and
// associativity.
package token

import "fmt"

// OperandPrecedence is the reserved precedence of operands. A token whose
// precedence is 0 never participates in operator-stack reordering.
const OperandPrecedence = 0

// Token is a single classified unit of an infix expression. Operands
// report precedence 0; operators report a positive precedence, higher
// values binding tighter. Associativity is consulted only when two
// operators of equal precedence meet.
type Token interface {
	Precedence() int
	Associativity() Assoc
}

// Kind enumerates the built-in arithmetic operators.
type Kind int

const (
	PLUS Kind = iota
	MINUS
	STAR
	SLASH
	CARET
)

func (k Kind) String() string {
	switch k {
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case STAR:
		return "*"
	case SLASH:
		return "/"
	case CARET:
		return "^"
	default:
		return "?"
	}
}

// Operand wraps a value of the caller's choosing. The conversion never
// inspects the payload.
type Operand[V any] struct {
	Value V
}

func (Operand[V]) Precedence() int {
	return OperandPrecedence
}

func (Operand[V]) Associativity() Assoc {
	return Left
}

func (o Operand[V]) String() string {
	return fmt.Sprint(o.Value)
}

// Operator is one of the built-in arithmetic operators.
type Operator struct {
	Kind Kind
}

// Precedence follows the conventional binding order: additive operators at
// 1, multiplicative at 2, exponentiation at 3.
func (o Operator) Precedence() int {
	switch o.Kind {
	case PLUS, MINUS:
		return 1
	case STAR, SLASH:
		return 2
	case CARET:
		return 3
	default:
		return OperandPrecedence
	}
}

// Associativity is Left for every kind except CARET: exponentiation chains
// group right to left.
func (o Operator) Associativity() Assoc {
	if o.Kind == CARET {
		return Right
	}
	return Left
}

func (o Operator) String() string {
	return o.Kind.String()
}
