// Package shuntyard reorders mathematical expressions from infix notation
// into Reverse Polish Notation with the shunting yard algorithm.
//
// The package consumes already-classified tokens (see the token package)
// and produces a queue for a downstream evaluator or printer; lexing raw
// text and evaluating the result are the caller's business.
//
// https://en.wikipedia.org/wiki/Shunting-yard_algorithm
package shuntyard

import (
	"log/slog"

	"github.com/DjordjeVuckovic/shuntyard/containers"
	"github.com/DjordjeVuckovic/shuntyard/token"
)

// Yard reorders infix token sequences into postfix. It holds no state
// between conversions; every ProducePostfix call allocates its own
// operator stack and output queue, so a single Yard is safe for
// concurrent use.
type Yard[T token.Token] struct {
	log *slog.Logger
}

// New builds a Yard. With no options the conversion runs silently.
func New[T token.Token](opts ...Option[T]) *Yard[T] {
	y := &Yard[T]{}
	for _, opt := range opts {
		opt(y)
	}
	return y
}

// ProducePostfix consumes tokens exactly once, left to right, and returns
// a queue holding every input token exactly once, reordered into postfix
// form.
//
// Operands (precedence 0) go straight to the output. An operator first
// resolves every stacked operator that outranks it, then stacks itself.
// Whatever remains on the stack after the last token drains to the output
// in LIFO order.
//
// Malformed input is not detected here; callers that need up-front
// rejection can run token.Validate first.
func (y *Yard[T]) ProducePostfix(tokens []T) *containers.Queue[T] {
	parsed := containers.NewQueue[T]()
	operators := containers.NewStack[T]()

	for _, tok := range tokens {
		if tok.Precedence() == token.OperandPrecedence {
			parsed.Enqueue(tok)
			y.trace("enqueue operand", tok)
			continue
		}

		// Resolve stacked operators that must be emitted before this
		// one can be stacked.
		for !operators.IsEmpty() && y.shouldStack(operators.Peek(), tok.Precedence()) {
			popped := operators.Pop()
			parsed.Enqueue(popped)
			y.trace("resolve operator", popped)
		}

		operators.Push(tok)
		y.trace("stack operator", tok)
	}

	// Drain the remaining operators.
	for !operators.IsEmpty() {
		popped := operators.Pop()
		parsed.Enqueue(popped)
		y.trace("drain operator", popped)
	}

	return parsed
}

// shouldStack reports whether the operator on top of the stack must be
// resolved before an incoming operator of precedence cur: the top outranks
// the incoming operator, or ranks equal and is left-associative.
func (y *Yard[T]) shouldStack(top T, cur int) bool {
	return top.Precedence() > cur ||
		top.Precedence() == cur && top.Associativity() == token.Left
}

func (y *Yard[T]) trace(msg string, tok T) {
	if y.log == nil {
		return
	}
	y.log.Debug(msg, "token", tok, "precedence", tok.Precedence())
}

// ProducePostfix converts tokens with a default Yard. See
// Yard.ProducePostfix.
func ProducePostfix[T token.Token](tokens []T) *containers.Queue[T] {
	return New[T]().ProducePostfix(tokens)
}
