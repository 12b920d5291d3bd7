package internal

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine is returned when a recognized line lacks the fields its rule reads.
var ErrMalformedLine = errors.New("malformed line")

// LineRule defines the interface for all line conversion rules.
type LineRule interface {
	// Name returns the name of the rule.
	Name() string

	// Match reports whether the rule applies to the trimmed line.
	Match(line string) bool

	// Rewrite converts the line. When drop is true the line produces
	// no output and no later rule sees it.
	Rewrite(line string, outputs *[]string) (out string, drop bool, err error)
}

const (
	testMarker          = "# TEST"
	ninsMarker          = ":nins"
	depthMarker         = ":depth"
	variableInputMarker = "input x"
	constantInputMarker = "input y"
	gateMarker          = "gate"
	outputMarker        = "output"

	testDirective    = ":test"
	constKeyword     = "const"
	outputsDirective = ":outputs"
)

func malformed(rule string, want, got int) error {
	return fmt.Errorf("%w: %s needs %d fields, got %d", ErrMalformedLine, rule, want, got)
}

type TestDirectiveRule struct{}

func NewTestDirectiveRule() LineRule { return &TestDirectiveRule{} }

func (r *TestDirectiveRule) Name() string { return "test-directive" }

func (r *TestDirectiveRule) Match(line string) bool {
	return strings.HasPrefix(line, testMarker)
}

func (r *TestDirectiveRule) Rewrite(line string, _ *[]string) (string, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return "", false, malformed(r.Name(), 4, len(fields))
	}
	return strings.Join([]string{testDirective, fields[2], fields[3]}, " "), false, nil
}

// DropDeclarationRule discards header declarations the acirc format no longer carries.
type DropDeclarationRule struct {
	name   string
	marker string
}

func NewDropNinsRule() LineRule {
	return &DropDeclarationRule{name: "drop-nins", marker: ninsMarker}
}

func NewDropDepthRule() LineRule {
	return &DropDeclarationRule{name: "drop-depth", marker: depthMarker}
}

func (r *DropDeclarationRule) Name() string { return r.name }

func (r *DropDeclarationRule) Match(line string) bool {
	return strings.HasPrefix(line, r.marker)
}

func (r *DropDeclarationRule) Rewrite(string, *[]string) (string, bool, error) {
	return "", true, nil
}

type VariableInputRule struct{}

func NewVariableInputRule() LineRule { return &VariableInputRule{} }

func (r *VariableInputRule) Name() string { return "variable-input" }

func (r *VariableInputRule) Match(line string) bool {
	return strings.Contains(line, variableInputMarker)
}

// Rewrite keeps the id and keyword and replaces "x<n>" by "<n>".
func (r *VariableInputRule) Rewrite(line string, _ *[]string) (string, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return "", false, malformed(r.Name(), 3, len(fields))
	}
	parts := strings.Split(fields[2], "x")
	if len(parts) < 2 {
		return "", false, fmt.Errorf("%w: %s value %q has no x prefix", ErrMalformedLine, r.Name(), fields[2])
	}
	return strings.Join([]string{fields[0], fields[1], parts[1]}, " "), false, nil
}

type ConstantInputRule struct{}

func NewConstantInputRule() LineRule { return &ConstantInputRule{} }

func (r *ConstantInputRule) Name() string { return "constant-input" }

func (r *ConstantInputRule) Match(line string) bool {
	return strings.Contains(line, constantInputMarker)
}

func (r *ConstantInputRule) Rewrite(line string, _ *[]string) (string, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return "", false, malformed(r.Name(), 4, len(fields))
	}
	return strings.Join([]string{fields[0], constKeyword, fields[3]}, " "), false, nil
}

type GateRule struct{}

func NewGateRule() LineRule { return &GateRule{} }

func (r *GateRule) Name() string { return "gate" }

func (r *GateRule) Match(line string) bool {
	return strings.Contains(line, gateMarker)
}

func (r *GateRule) Rewrite(line string, _ *[]string) (string, bool, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return "", false, malformed(r.Name(), 5, len(fields))
	}
	return strings.Join([]string{fields[0], fields[2], fields[3], fields[4]}, " "), false, nil
}

// OutputRule records the output name and keeps the remainder of the line verbatim.
type OutputRule struct{}

func NewOutputRule() LineRule { return &OutputRule{} }

func (r *OutputRule) Name() string { return "output" }

func (r *OutputRule) Match(line string) bool {
	return strings.Contains(line, outputMarker)
}

func (r *OutputRule) Rewrite(line string, outputs *[]string) (string, bool, error) {
	// split on single spaces only, the remainder keeps its own spacing
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 {
		return "", false, malformed(r.Name(), 3, len(parts))
	}
	name, rest := parts[0], parts[2]
	*outputs = append(*outputs, name)
	return name + " " + rest, false, nil
}

// outputsLine renders the trailing summary directive.
func outputsLine(outputs []string) string {
	return outputsDirective + " " + strings.Join(outputs, " ")
}
