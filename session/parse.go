package session

import (
	"strconv"
	"strings"
)

type parseStatus uint8

const (
	parseOK parseStatus = iota
	tooManyArguments
	missingArgument
	invalidArgument
)

// parseArgs fills args in order from a comma-separated list of positive
// integers. An empty slot keeps the caller's default unless the
// arguments are mandatory. On invalidArgument the offending token comes
// back for the error message.
func parseArgs(line string, args []int, mandatory bool) (parseStatus, string) {
	next := 0

	for _, token := range strings.Split(line, ",") {
		if next >= len(args) {
			return tooManyArguments, token
		}

		if token == "" {
			if mandatory {
				return missingArgument, ""
			}
			next++
			continue
		}

		n, err := strconv.Atoi(token)
		if err != nil || n <= 0 {
			return invalidArgument, token
		}
		args[next] = n
		next++
	}

	if mandatory && next < len(args) {
		return missingArgument, ""
	}
	return parseOK, ""
}
