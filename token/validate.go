package token

import (
	"fmt"

	"github.com/DjordjeVuckovic/shuntyard/apperr"
)

// Validate checks that tokens form a well-formed binary infix expression:
// non-empty, beginning and ending with an operand, operands and operators
// strictly alternating.
//
// The conversion itself never calls this. It is for callers that want
// malformed input rejected up front instead of trusting the producer of
// the token sequence.
func Validate[T Token](tokens []T) error {
	if len(tokens) == 0 {
		return apperr.NewValidation("expression is empty")
	}

	wantOperand := true
	for i, tok := range tokens {
		isOperand := tok.Precedence() == OperandPrecedence

		if wantOperand && !isOperand {
			if i == 0 {
				return apperr.NewValidation("expression cannot start with an operator")
			}
			return apperr.NewValidation(fmt.Sprintf("operator at position %d follows another operator", i))
		}
		if !wantOperand && isOperand {
			return apperr.NewValidation(fmt.Sprintf("missing operator before operand at position %d", i))
		}

		wantOperand = !wantOperand
	}

	if wantOperand {
		return apperr.NewValidation("expression ends with a dangling operator")
	}

	return nil
}
