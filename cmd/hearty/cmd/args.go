package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cast"
)

var (
	errMissingLayout = errors.New("--strftime needs a layout")
	errUnknownCheck  = errors.New("unknown check")

	// errCheckFalse is returned by "check --quiet" for a false answer
	errCheckFalse = errors.New("check answered false")
)

// dateArg returns the helper's current time for "now" and the argument
// itself otherwise
func dateArg(a *app, arg string) any {
	if strings.EqualFold(strings.TrimSpace(arg), "now") {
		return a.helper.Now()
	}
	return arg
}

// intArg converts a decimal argument
func intArg(op, name, arg string) (int, error) {
	n, err := cast.ToIntE(decimal(arg))
	if err != nil {
		return 0, inputError(op, name, err)
	}
	return n, nil
}

// int64Arg converts a decimal argument that may exceed 32 bits
func int64Arg(op, name, arg string) (int64, error) {
	n, err := cast.ToInt64E(decimal(arg))
	if err != nil {
		return 0, inputError(op, name, err)
	}
	return n, nil
}

// decimal strips leading zeros so cast does not read "08" as octal
func decimal(arg string) string {
	s := strings.TrimSpace(arg)
	sign := ""
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	s = strings.TrimLeft(s, "0")
	if s == "" {
		s = "0"
	}
	if sign == "-" {
		return sign + s
	}
	return s
}
