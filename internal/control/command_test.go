package control

import (
	"math"
	"testing"

	"github.com/markusressel/fanplate/internal/configuration"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	directives := []string{configuration.DirectivePrint, configuration.DirectiveStatus}

	tests := []struct {
		name     string
		raw      string
		expected Command
	}{
		{name: "empty read", raw: "", expected: NoCommand()},
		{name: "plain number", raw: "45", expected: Command{Kind: CommandCode, Code: 45, Text: "45"}},
		{name: "trailing line break", raw: "60\r\n", expected: Command{Kind: CommandCode, Code: 60, Text: "60"}},
		{name: "leading whitespace", raw: "  80", expected: Command{Kind: CommandCode, Code: 80, Text: "  80"}},
		{name: "trailing garbage", raw: "12abc", expected: Command{Kind: CommandCode, Code: 12, Text: "12abc"}},
		{name: "no digits", raw: "abc", expected: Command{Kind: CommandCode, Code: 0, Text: "abc"}},
		{name: "negative", raw: "-5", expected: Command{Kind: CommandCode, Code: -5, Text: "-5"}},
		{name: "explicit plus", raw: "+45", expected: Command{Kind: CommandCode, Code: 45, Text: "+45"}},
		{name: "terminated at NUL", raw: "4\x005", expected: Command{Kind: CommandCode, Code: 4, Text: "4"}},
		{name: "saturates", raw: "99999999999", expected: Command{Kind: CommandCode, Code: math.MaxInt32, Text: "99999999999"}},
		{name: "saturates negative", raw: "-99999999999", expected: Command{Kind: CommandCode, Code: -math.MaxInt32, Text: "-99999999999"}},
		{name: "print directive", raw: "print", expected: Command{Kind: CommandDirective, Text: "print"}},
		{name: "print directive with line break", raw: "print\n", expected: Command{Kind: CommandDirective, Text: "print"}},
		{name: "status directive", raw: "status\r\n", expected: Command{Kind: CommandDirective, Text: "status"}},
		{name: "directive is case sensitive", raw: "PRINT", expected: Command{Kind: CommandCode, Code: 0, Text: "PRINT"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			result := ParseCommand([]byte(tt.raw), directives)

			// THEN
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseCommand_UnknownDirectiveIsCode(t *testing.T) {
	// WHEN
	result := ParseCommand([]byte("status"), []string{configuration.DirectivePrint})

	// THEN
	assert.Equal(t, CommandCode, result.Kind)
	assert.Equal(t, 0, result.Code)
}

func TestCommandKind_String(t *testing.T) {
	assert.Equal(t, "none", CommandNone.String())
	assert.Equal(t, "directive", CommandDirective.String())
	assert.Equal(t, "code", CommandCode.String())
}
