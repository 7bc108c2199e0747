package command

import (
	"fmt"
	"strings"

	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/parser"
)

var summaries = map[string]string{
	"start":    "Seats 2 to 5 players. Mode classic has one column, triple has three (×1, ×2, ×3).",
	"score":    "Writes points into a cell. The value may be a number or a quoted rule expression such as \"combo('P', false, 'A', 'K')\".",
	"count":    "Numeric rows: enter how many dice show the row's face.",
	"strike":   "Crosses a cell out with zero.",
	"straight": "Straight row: small scores 20, large 25, doubled when served.",
	"combo":    "Combination rows: declare the main face and, for F and P, the pair or kicker face.",
	"sheet":    "Shows the score sheet.",
	"rank":     "Shows the standings.",
	"hint":     "Tells whose turn it is and which cells are still open.",
	"reset":    "Abandons the table so a new game can start.",
	"help":     "Shows this help or details on one command.",
}

// ExecuteHelp lists the commands, or explains one of them.
func ExecuteHelp(cmd *parser.HelpCmd) ([]engine.Event, error) {
	if cmd.Topic != "" {
		topic := strings.ToLower(cmd.Topic)
		usage, ok := parser.Usage[topic]
		if !ok {
			return nil, fmt.Errorf("Unknown command: %s", cmd.Topic)
		}
		msg := fmt.Sprintf("Command: %s\nUsage: %s\nSummary: %s", topic, usage, summaries[topic])
		return []engine.Event{&engine.NoticeEvent{Text: msg}}, nil
	}

	var sb strings.Builder
	sb.WriteString("Available Commands:\n")
	for _, k := range parser.Keywords {
		sb.WriteString(fmt.Sprintf(" - %s: %s\n", k, parser.Usage[k]))
	}
	sb.WriteString("\nRows: 9 10 B D K A (numbers), S F P G (straight, full house, poker, grande).")
	return []engine.Event{&engine.NoticeEvent{Text: sb.String()}}, nil
}
