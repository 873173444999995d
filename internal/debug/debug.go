// Package debug gates parser tracing behind environment variables.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("CONFEDIT_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}
