package plan

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// evalIf evaluates a target condition against env. An empty condition
// is true.
func evalIf(cond string, env map[string]any) (bool, error) {
	if cond == "" {
		return true, nil
	}
	prg, err := expr.Compile(cond, expr.Env(env), expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return false, fmt.Errorf("error compiling condition %q: %w", cond, err)
	}
	out, err := expr.Run(prg, env)
	if err != nil {
		return false, fmt.Errorf("error evaluating condition %q: %w", cond, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition %q: got %T, want bool", cond, out)
	}
	return b, nil
}
