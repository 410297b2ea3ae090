package cli

import (
	"fmt"
	"strings"
)

// multiValueFlag describes a flag that accepts several space-separated
// values after a single occurrence, e.g. "-i cmd internal".
type multiValueFlag struct {
	longName   string
	shortName  string
	allowEmpty bool
}

func (flag multiValueFlag) matches(argument string) bool {
	return argument == "--"+flag.longName || argument == "-"+flag.shortName
}

// normalizeMultiValueArguments rewrites every occurrence of a multi-value
// flag followed by bare values into one "--name=value" argument per value,
// which pflag understands. Values end at the next argument starting with
// "-". A flag with no values is kept as-is so pflag reports the missing
// argument, unless the flag allows an empty list, in which case it is dropped.
func normalizeMultiValueArguments(arguments []string, flags []multiValueFlag) []string {
	if len(arguments) == 0 {
		return arguments
	}
	normalized := make([]string, 0, len(arguments))
	index := 0
	for index < len(arguments) {
		current := arguments[index]
		if current == "--" {
			normalized = append(normalized, arguments[index:]...)
			break
		}
		flag, isMultiValue := lookupMultiValueFlag(current, flags)
		if !isMultiValue {
			normalized = append(normalized, current)
			index++
			continue
		}
		valueIndex := index + 1
		for valueIndex < len(arguments) && !strings.HasPrefix(arguments[valueIndex], "-") {
			normalized = append(normalized, fmt.Sprintf("--%s=%s", flag.longName, arguments[valueIndex]))
			valueIndex++
		}
		if valueIndex == index+1 && !flag.allowEmpty {
			normalized = append(normalized, current)
		}
		index = valueIndex
	}
	return normalized
}

func lookupMultiValueFlag(argument string, flags []multiValueFlag) (multiValueFlag, bool) {
	for _, flag := range flags {
		if flag.matches(argument) {
			return flag, true
		}
	}
	return multiValueFlag{}, false
}
