package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func TestNormalizeMultiValueArguments(t *testing.T) {
	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{
			name:      "no_arguments",
			arguments: nil,
			expected:  nil,
		},
		{
			name:      "expands_short_input_values",
			arguments: []string{"-i", "cmd", "internal"},
			expected:  []string{"--input=cmd", "--input=internal"},
		},
		{
			name:      "values_stop_at_next_flag",
			arguments: []string{"--input", "a", "-o", "bundle", "-e", "vendor", "fixtures"},
			expected:  []string{"--input=a", "-o", "bundle", "--exclude=vendor", "--exclude=fixtures"},
		},
		{
			name:      "repeated_flags_accumulate",
			arguments: []string{"-i", "a", "-i", "b"},
			expected:  []string{"--input=a", "--input=b"},
		},
		{
			name:      "input_without_values_is_kept",
			arguments: []string{"-i", "--copy"},
			expected:  []string{"-i", "--copy"},
		},
		{
			name:      "exclude_without_values_is_dropped",
			arguments: []string{"-e", "-o", "bundle"},
			expected:  []string{"-o", "bundle"},
		},
		{
			name:      "double_dash_stops_processing",
			arguments: []string{"--", "-i", "a"},
			expected:  []string{"--", "-i", "a"},
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			normalized := normalizeMultiValueArguments(testCase.arguments, flattenMultiValueFlags)
			if !reflect.DeepEqual(normalized, testCase.expected) {
				t.Fatalf("expected %q, got %q", testCase.expected, normalized)
			}
		})
	}
}

func TestNormalizedArgumentsParseWithPflag(t *testing.T) {
	var inputs []string
	var excludes []string
	flagSet := pflag.NewFlagSet("multi-value", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringArrayVarP(&inputs, inputFlagName, inputFlagShorthand, nil, inputFlagDescription)
	flagSet.StringArrayVarP(&excludes, excludeFlagName, excludeFlagShorthand, nil, excludeFlagDescription)

	arguments := []string{"-i", "a,b", "c", "-e", "x.y"}
	if parseErr := flagSet.Parse(normalizeMultiValueArguments(arguments, flattenMultiValueFlags)); parseErr != nil {
		t.Fatalf("unexpected parse error: %v", parseErr)
	}
	if !reflect.DeepEqual(inputs, []string{"a,b", "c"}) {
		t.Fatalf("unexpected inputs %q", inputs)
	}
	if !reflect.DeepEqual(excludes, []string{"x.y"}) {
		t.Fatalf("unexpected excludes %q", excludes)
	}
}
