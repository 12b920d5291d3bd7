package internal

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	tt "github.com/gnoswap-labs/circconv/internal/types"
)

// Engine converts legacy circuit descriptions into the acirc line format.
type Engine struct {
	rules        []LineRule
	ignoredRules map[string]bool
	logger       *zap.Logger
}

type ruleConstructor func() LineRule

// Order matters: a line can match several rules and every match emits in this order.
var allRuleConstructors = []ruleConstructor{
	NewTestDirectiveRule,
	NewDropNinsRule,
	NewDropDepthRule,
	NewVariableInputRule,
	NewConstantInputRule,
	NewGateRule,
	NewOutputRule,
}

// NewEngine creates a new conversion engine with every default rule
// registered. Rules disabled in the configuration are ignored.
func NewEngine(rules map[string]tt.ConfigRule, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := &Engine{
		ignoredRules: make(map[string]bool),
		logger:       logger,
	}
	for _, newRule := range allRuleConstructors {
		engine.rules = append(engine.rules, newRule())
	}
	for name, rule := range rules {
		if engine.findRule(name) == nil {
			logger.Warn("unknown rule in configuration", zap.String("rule", name))
			continue
		}
		if rule.Disabled {
			engine.IgnoreRule(name)
		}
	}
	return engine
}

// RuleNames lists the registered rules in evaluation order.
func RuleNames() []string {
	names := make([]string, 0, len(allRuleConstructors))
	for _, newRule := range allRuleConstructors {
		names = append(names, newRule().Name())
	}
	return names
}

func (e *Engine) findRule(name string) LineRule {
	for _, rule := range e.rules {
		if rule.Name() == name {
			return rule
		}
	}
	return nil
}

func (e *Engine) IgnoreRule(rule string) {
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[rule] = true
}

// Run converts the file at filename. The file itself is not modified.
func (e *Engine) Run(ctx context.Context, filename string) (*tt.Result, error) {
	source, err := ReadSourceCode(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	result, err := e.convert(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	result.Filename = filename
	return result, nil
}

// RunSource converts the given content.
func (e *Engine) RunSource(ctx context.Context, content []byte) (*tt.Result, error) {
	return e.convert(ctx, NewSourceCode(content))
}

func (e *Engine) convert(ctx context.Context, source *SourceCode) (*tt.Result, error) {
	var (
		buf     bytes.Buffer
		outputs = []string{}
		result  = &tt.Result{Lines: len(source.Lines)}
	)

	for i, raw := range source.Lines {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lineNo := i + 1
		line := strings.TrimSpace(raw)

		for _, rule := range e.rules {
			if e.ignoredRules[rule.Name()] || !rule.Match(line) {
				continue
			}
			out, drop, err := rule.Rewrite(line, &outputs)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			result.Rewrites = append(result.Rewrites, tt.Rewrite{
				Rule:     rule.Name(),
				Line:     lineNo,
				Original: line,
				Output:   out,
				Drop:     drop,
			})
			if drop {
				result.Dropped++
				e.logger.Debug("line dropped", zap.Int("line", lineNo), zap.String("rule", rule.Name()))
				break
			}
			buf.WriteString(out)
			buf.WriteByte('\n')
		}
	}

	buf.WriteString(outputsLine(outputs))
	buf.WriteByte('\n')

	result.Content = buf.Bytes()
	result.Outputs = outputs
	return result, nil
}
