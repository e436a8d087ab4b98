package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want Invocation
	}{
		{name: "no args", args: nil, want: Invocation{Kind: KindHelp}},
		{name: "short help", args: []string{"-h"}, want: Invocation{Kind: KindHelp}},
		{name: "long help", args: []string{"--help"}, want: Invocation{Kind: KindHelp}},
		{name: "short version", args: []string{"-v"}, want: Invocation{Kind: KindVersion}},
		{name: "long version", args: []string{"--version"}, want: Invocation{Kind: KindVersion}},
		{
			name: "unknown option",
			args: []string{"--verbose"},
			want: Invocation{Kind: KindInvalid, Reason: ReasonUnexpectedOption, Option: "--verbose", Received: 1},
		},
		{
			name: "single dash",
			args: []string{"-"},
			want: Invocation{Kind: KindInvalid, Reason: ReasonUnexpectedOption, Option: "-", Received: 1},
		},
		{
			name: "single path",
			args: []string{"input.json"},
			want: Invocation{Kind: KindInvalid, Reason: ReasonArgCount, Received: 1},
		},
		{
			name: "two paths",
			args: []string{"input.json", ".env"},
			want: Invocation{Kind: KindRun, Input: "input.json", Output: ".env"},
		},
		{
			name: "extra args are ignored",
			args: []string{"input.json", ".env", "extra", "--help"},
			want: Invocation{Kind: KindRun, Input: "input.json", Output: ".env"},
		},
		{
			name: "options are paths when two args given",
			args: []string{"--help", "-v"},
			want: Invocation{Kind: KindRun, Input: "--help", Output: "-v"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseArgs(tt.args))
		})
	}
}

func TestPropertyTwoOrMoreArgsAlwaysRun(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		args := rapid.SliceOfN(rapid.String(), ExpectedArgs, 6).Draw(t, "args")

		got := ParseArgs(args)
		if got.Kind != KindRun {
			t.Fatalf("expected KindRun, got %v", got.Kind)
		}
		if got.Input != args[0] || got.Output != args[1] {
			t.Fatalf("expected %q -> %q, got %q -> %q", args[0], args[1], got.Input, got.Output)
		}
	})
}
