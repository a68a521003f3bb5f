package shuntyard

import (
	"log/slog"

	"github.com/DjordjeVuckovic/shuntyard/token"
)

// Option configures a Yard.
type Option[T token.Token] func(*Yard[T])

// WithLogger makes the conversion emit its routing decisions at debug
// level. Useful when a downstream evaluator receives a surprising order.
func WithLogger[T token.Token](log *slog.Logger) Option[T] {
	return func(y *Yard[T]) {
		y.log = log
	}
}
