package shuntyard_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/DjordjeVuckovic/shuntyard"
	"github.com/DjordjeVuckovic/shuntyard/token"
)

type vectorFile struct {
	Arithmetic []vectorCase `yaml:"arithmetic"`
	Custom     []vectorCase `yaml:"custom"`
}

type vectorCase struct {
	Name      string         `yaml:"name"`
	Operators []vectorOpSpec `yaml:"operators"`
	Infix     string         `yaml:"infix"`
	Postfix   string         `yaml:"postfix"`
}

type vectorOpSpec struct {
	Symbol     string `yaml:"symbol"`
	Precedence int    `yaml:"precedence"`
	Assoc      string `yaml:"assoc"`
}

var arithmeticKinds = map[string]token.Kind{
	"+": token.PLUS,
	"-": token.MINUS,
	"*": token.STAR,
	"/": token.SLASH,
	"^": token.CARET,
}

// lexVector splits a whitespace-separated vector expression into tokens:
// known operator symbols become operators, everything else an operand.
func lexVector(t *testing.T, expr string, ops map[string]vectorOpSpec) []token.Token {
	t.Helper()

	var tokens []token.Token
	for _, sym := range strings.Fields(expr) {
		if spec, ok := ops[sym]; ok {
			assoc, err := token.ParseAssoc(spec.Assoc)
			require.NoError(t, err, "operator %q has an invalid associativity", spec.Symbol)

			tokens = append(tokens, fakeOp{sym: spec.Symbol, prec: spec.Precedence, assoc: assoc})
			continue
		}
		if kind, ok := arithmeticKinds[sym]; ok {
			tokens = append(tokens, token.Operator{Kind: kind})
			continue
		}
		tokens = append(tokens, token.Operand[string]{Value: sym})
	}
	return tokens
}

func loadVectors(t *testing.T) *vectorFile {
	t.Helper()

	data, err := os.ReadFile("testdata/postfix_vectors.yaml")
	require.NoError(t, err)

	var vf vectorFile
	require.NoError(t, yaml.Unmarshal(data, &vf))
	require.NotEmpty(t, vf.Arithmetic, "vector file has no arithmetic cases")
	return &vf
}

func TestProducePostfix_Vectors(t *testing.T) {
	vf := loadVectors(t)

	t.Run("arithmetic", func(t *testing.T) {
		for _, tc := range vf.Arithmetic {
			t.Run(tc.Name, func(t *testing.T) {
				tokens := lexVector(t, tc.Infix, nil)
				out := shuntyard.ProducePostfix(tokens)
				assert.Equal(t, tc.Postfix, strings.Join(drain(out), " "))
			})
		}
	})

	t.Run("custom operator tables", func(t *testing.T) {
		for _, tc := range vf.Custom {
			t.Run(tc.Name, func(t *testing.T) {
				require.NotEmpty(t, tc.Operators, "custom case %q has no operator table", tc.Name)

				ops := make(map[string]vectorOpSpec, len(tc.Operators))
				for _, spec := range tc.Operators {
					require.Positive(t, spec.Precedence, "operator %q must outrank operands", spec.Symbol)
					ops[spec.Symbol] = spec
				}

				tokens := lexVector(t, tc.Infix, ops)
				out := shuntyard.ProducePostfix(tokens)
				assert.Equal(t, tc.Postfix, strings.Join(drain(out), " "))
			})
		}
	})
}
