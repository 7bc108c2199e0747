package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/suderio/eskalero/internal/engine"
	"github.com/suderio/eskalero/internal/score"
	"github.com/suderio/eskalero/internal/session"
)

// RunPlain drives a session line by line, for terminals without full-screen
// support and for piping commands in.
func RunPlain(app *session.Session, in io.Reader, out io.Writer, seated []engine.Event) error {
	fmt.Fprintln(out, "Eskalero score table. Type 'help' for commands, 'exit' to leave.")
	printEvents(out, seated)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}

		events, err := app.Execute(line)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		printEvents(out, events)

		if recordsScore(events) {
			renderProgress(out, app.Game())
		}
	}
}

func printEvents(out io.Writer, events []engine.Event) {
	for _, evt := range events {
		if msg := evt.Message(); msg != "" {
			fmt.Fprintln(out, msg)
		}
	}
}

func recordsScore(events []engine.Event) bool {
	for _, evt := range events {
		if evt.Type() == engine.EventScoreRecorded {
			return true
		}
	}
	return false
}

// renderProgress draws how much of the table's sheet is filled.
func renderProgress(out io.Writer, game *engine.Game) {
	total, filled := sheetProgress(game)
	if total == 0 {
		return
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSetDescription("Sheet"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
	)
	bar.Set(filled)
	fmt.Fprintln(out)
	if game.IsComplete() {
		if w, ok := game.Winner(); ok {
			fmt.Fprintf(out, "The sheet is full. %s wins with %d points!\n", w.Name, w.Total)
		}
	}
}

func sheetProgress(game *engine.Game) (total, filled int) {
	for _, p := range game.Players() {
		cells := len(p.Columns) * len(score.Categories)
		total += cells
		filled += cells - p.Open()
	}
	return total, filled
}
