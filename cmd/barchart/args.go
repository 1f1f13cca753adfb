package main

import (
	"strconv"
	"strings"
)

// multiValueFlags maps every spelling of a list flag to its long name. The
// single-dash forms of bar1..bar3 are accepted for compatibility.
var multiValueFlags = map[string]string{
	"-s":            "single-data",
	"--single-data": "single-data",
	"-bar1":         "bar1",
	"--bar1":        "bar1",
	"-bar2":         "bar2",
	"--bar2":        "bar2",
	"-bar3":         "bar3",
	"--bar3":        "bar3",
}

// normalizeArgs rewrites space separated list flags into the comma form
// pflag understands: "-bar1 1 -2 3" becomes "--bar1=1,-2,3". Values are
// consumed while they parse as numbers.
func normalizeArgs(args []string) []string {
	out := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			out = append(out, args[i:]...)
			break
		}

		name, inline, hasInline := strings.Cut(arg, "=")
		long, ok := multiValueFlags[name]
		if !ok {
			out = append(out, arg)
			continue
		}

		var values []string
		if hasInline {
			values = append(values, inline)
		}
		for i+1 < len(args) && isNumber(args[i+1]) {
			i++
			values = append(values, args[i])
		}

		if len(values) == 0 {
			// Leave the value (or its absence) for pflag to judge.
			out = append(out, "--"+long)
			continue
		}
		out = append(out, "--"+long+"="+strings.Join(values, ","))
	}

	return out
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
