package control

import (
	"math"
	"strings"

	"github.com/markusressel/fanplate/internal/util"
)

type CommandKind int

const (
	// CommandNone means no input arrived within the poll timeout
	CommandNone CommandKind = iota
	// CommandDirective is a literal textual command without duty implication
	CommandDirective
	// CommandCode is a numeric command code
	CommandCode
)

func (k CommandKind) String() string {
	switch k {
	case CommandNone:
		return "none"
	case CommandDirective:
		return "directive"
	case CommandCode:
		return "code"
	}
	return "unknown"
}

// Command is consumed once per control loop iteration
type Command struct {
	Kind CommandKind
	Code int
	Text string
}

func NoCommand() Command {
	return Command{Kind: CommandNone}
}

func CodeCommand(code int) Command {
	return Command{Kind: CommandCode, Code: code}
}

// ParseCommand interprets the bytes of a single read as one NUL-terminated
// command string. Text equal to one of the directives (ignoring trailing line
// breaks) yields a CommandDirective, anything else is parsed as an integer
// on a best-effort basis, where text without leading digits parses to 0.
func ParseCommand(raw []byte, directives []string) Command {
	if len(raw) == 0 {
		return NoCommand()
	}

	text := string(raw)
	if idx := strings.IndexByte(text, 0); idx >= 0 {
		text = text[:idx]
	}
	text = strings.TrimRight(text, "\r\n")

	if util.ContainsString(directives, text) {
		return Command{Kind: CommandDirective, Text: text}
	}

	return Command{
		Kind: CommandCode,
		Code: parseIntBestEffort(text),
		Text: text,
	}
}

// parseIntBestEffort skips leading whitespace, accepts an optional sign and
// consumes digits up to the first non-digit. Values beyond the int32 range saturate.
func parseIntBestEffort(text string) int {
	i := 0
	for i < len(text) && isSpace(text[i]) {
		i++
	}

	negative := false
	if i < len(text) && (text[i] == '+' || text[i] == '-') {
		negative = text[i] == '-'
		i++
	}

	var value int64
	for ; i < len(text) && text[i] >= '0' && text[i] <= '9'; i++ {
		value = value*10 + int64(text[i]-'0')
		if value > math.MaxInt32 {
			value = math.MaxInt32 + 1
		}
	}

	if negative {
		value = -value
	}
	if value > math.MaxInt32 {
		value = math.MaxInt32
	}
	return int(value)
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
