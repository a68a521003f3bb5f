package token

import (
	"fmt"
	"strings"
)

// Assoc is the associativity of an operator: the tie-break applied when two
// operators of equal precedence meet. Left is the zero value, so an
// operator kind that never states an associativity is left-associative.
type Assoc int

const (
	Left Assoc = iota
	Right
	None
)

// ParseAssoc maps a textual associativity to its value. The empty string
// maps to Left, mirroring the default.
func ParseAssoc(s string) (Assoc, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	case "none":
		return None, nil
	default:
		return Left, fmt.Errorf("invalid associativity: %q (must be 'left', 'right' or 'none')", s)
	}
}

func (a Assoc) String() string {
	switch a {
	case Left:
		return "left"
	case Right:
		return "right"
	case None:
		return "none"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Assoc) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so operator tables in
// YAML or JSON can spell associativity out directly.
func (a *Assoc) UnmarshalText(text []byte) error {
	parsed, err := ParseAssoc(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
