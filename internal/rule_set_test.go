package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineRules(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		rule     LineRule
		line     string
		match    bool
		expected string
		drop     bool
		outputs  []string
	}{
		{
			name:     "test directive",
			rule:     NewTestDirectiveRule(),
			line:     "# TEST 0101 1",
			match:    true,
			expected: ":test 0101 1",
		},
		{
			name:     "test directive with trailing fields",
			rule:     NewTestDirectiveRule(),
			line:     "# TEST 11 0 extra",
			match:    true,
			expected: ":test 11 0",
		},
		{
			name:  "test directive must be a prefix",
			rule:  NewTestDirectiveRule(),
			line:  "0 input x0 # TEST",
			match: false,
		},
		{
			name:  "nins declaration",
			rule:  NewDropNinsRule(),
			line:  ":nins 4",
			match: true,
			drop:  true,
		},
		{
			name:  "depth declaration",
			rule:  NewDropDepthRule(),
			line:  ":depth 3",
			match: true,
			drop:  true,
		},
		{
			name:     "variable input",
			rule:     NewVariableInputRule(),
			line:     "x1 input x3",
			match:    true,
			expected: "x1 input 3",
		},
		{
			name:     "variable input with numeric id",
			rule:     NewVariableInputRule(),
			line:     "12 input x12",
			match:    true,
			expected: "12 input 12",
		},
		{
			name:     "constant input",
			rule:     NewConstantInputRule(),
			line:     "2 input y0 5",
			match:    true,
			expected: "2 const 5",
		},
		{
			name:  "constant input does not match variable input",
			rule:  NewConstantInputRule(),
			line:  "0 input x0",
			match: false,
		},
		{
			name:     "gate drops the second field",
			rule:     NewGateRule(),
			line:     "3 gate ADD 0 1",
			match:    true,
			expected: "3 ADD 0 1",
		},
		{
			name:     "output keeps the remainder verbatim",
			rule:     NewOutputRule(),
			line:     "5 output SUB  4 1",
			match:    true,
			expected: "5 SUB  4 1",
			outputs:  []string{"5"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.match, tt.rule.Match(tt.line))
			if !tt.match {
				return
			}

			var outputs []string
			out, drop, err := tt.rule.Rewrite(tt.line, &outputs)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
			assert.Equal(t, tt.drop, drop)
			assert.Equal(t, tt.outputs, outputs)
		})
	}
}

func TestLineRules_Malformed(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		rule LineRule
		line string
	}{
		{"test directive", NewTestDirectiveRule(), "# TEST 01"},
		{"variable input without value", NewVariableInputRule(), "input x0"},
		{"variable input value without x", NewVariableInputRule(), "0 foo input x"},
		{"constant input", NewConstantInputRule(), "2 input y0"},
		{"gate", NewGateRule(), "3 gate ADD 0"},
		{"output", NewOutputRule(), ":outputs 5"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.True(t, tt.rule.Match(tt.line))

			var outputs []string
			_, _, err := tt.rule.Rewrite(tt.line, &outputs)
			assert.ErrorIs(t, err, ErrMalformedLine)
			assert.Empty(t, outputs)
		})
	}
}

func TestOutputsLine(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ":outputs ", outputsLine(nil))
	assert.Equal(t, ":outputs 5", outputsLine([]string{"5"}))
	assert.Equal(t, ":outputs 7 3 9", outputsLine([]string{"7", "3", "9"}))
}
