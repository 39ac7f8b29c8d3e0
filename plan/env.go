package plan

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/alphalabs/pagepatch/debug"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

const (
	EnvEnv = "PAGEPATCH_ENV"
)

// LoadEnv reads $PAGEPATCH_ENV, a JSON merge patch for the plan env,
// e.g. '{"production": true}'. An unset variable yields a nil map.
func LoadEnv() (map[string]any, error) {
	envEnv := os.Getenv(EnvEnv)
	if envEnv == "" {
		return nil, nil
	}
	env := map[string]any{}
	if err := json.Unmarshal([]byte(envEnv), &env); err != nil {
		return nil, fmt.Errorf("error decoding env $%s: %w", EnvEnv, err)
	}
	if debug.Env() {
		debug.Logf("loaded env from env:\n%s\n", debug.JSON(env))
	}
	return env, nil
}

// MergeEnv applies overrides to defaults as a JSON merge patch and
// returns the merged env. Either argument may be nil.
func MergeEnv(defaults, overrides map[string]any) (map[string]any, error) {
	if len(overrides) == 0 {
		if defaults == nil {
			return map[string]any{}, nil
		}
		return defaults, nil
	}
	if defaults == nil {
		defaults = map[string]any{}
	}
	dj, err := json.Marshal(defaults)
	if err != nil {
		return nil, err
	}
	oj, err := json.Marshal(overrides)
	if err != nil {
		return nil, err
	}
	mj, err := jsonpatch.MergePatch(dj, oj)
	if err != nil {
		return nil, fmt.Errorf("error merging env: %w", err)
	}
	merged := map[string]any{}
	if err := json.Unmarshal(mj, &merged); err != nil {
		return nil, err
	}
	return merged, nil
}

// SetPath sets a dotted key path in env to a YAML-decoded value, for
// command line overrides of the form path=val.
func SetPath(env map[string]any, arg string) error {
	key, val, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("argument %q expected key=val", arg)
	}
	var v any
	if err := yaml.Unmarshal([]byte(val), &v); err != nil {
		return err
	}
	parts := strings.Split(key, ".")
	n := len(parts)
	tmpEnv := env
	for i, part := range parts {
		if i == n-1 {
			tmpEnv[part] = v
			break
		}
		next := tmpEnv[part]
		if next == nil {
			next = map[string]any{}
			tmpEnv[part] = next
		}
		nextEnv, ok := next.(map[string]any)
		if !ok {
			return fmt.Errorf("cannot access %s, list or scalar", strings.Join(parts[:i+1], "."))
		}
		tmpEnv = nextEnv
	}
	return nil
}
