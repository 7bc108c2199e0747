package parser

import (
	"fmt"
	"strings"
)

// Usage holds the syntax of every command, keyed by its keyword.
var Usage = map[string]string{
	"start":    "start with: <name> [and: <name>]* [mode: classic|triple]",
	"score":    "score [by: <name>] [col: N] row: <row> value: <points|\"expression\">",
	"count":    "count [by: <name>] [col: N] row: <9|10|B|D|K|A> dice: <1-6>",
	"strike":   "strike [by: <name>] [col: N] row: <row>",
	"straight": "straight [by: <name>] [col: N] small|large [served]",
	"combo":    "combo [by: <name>] [col: N] row: <S|F|P|G> main: <face> [pair: <face>] [served]",
	"sheet":    "sheet",
	"rank":     "rank",
	"hint":     "hint",
	"reset":    "reset",
	"help":     "help [command]",
}

// Keywords lists the command keywords in help order.
var Keywords = []string{"start", "score", "count", "strike", "straight", "combo", "sheet", "rank", "hint", "reset", "help"}

// MapError takes a raw input and a participle error, and returns a human-friendly guidance message.
func MapError(input string, err error) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return fmt.Errorf("I wasn't able to understand your command")
	}

	cmd := strings.ToLower(strings.Fields(input)[0])
	if usage, ok := Usage[cmd]; ok {
		return fmt.Errorf("The command %s must be: %s", cmd, usage)
	}

	return fmt.Errorf("I wasn't able to understand your command")
}
