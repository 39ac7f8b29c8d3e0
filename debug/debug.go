package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Locate bool
	Patch  bool
	Shell  bool
	Env    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Locate = boolEnv("PAGEPATCH_DEBUG_LOCATE")
	d.Patch = boolEnv("PAGEPATCH_DEBUG_PATCH")
	d.Shell = boolEnv("PAGEPATCH_DEBUG_SHELL")
	d.Env = boolEnv("PAGEPATCH_DEBUG_ENV")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Locate() bool {
	return d.Locate
}
func Patch() bool {
	return d.Patch
}
func Shell() bool {
	return d.Shell
}
func Env() bool {
	return d.Env
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}

func JSON(v any) string {
	b, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
